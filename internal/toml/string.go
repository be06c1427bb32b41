package toml

import "strings"

// formatString implements spec.md §4.5.
func (s *serializer) formatString(str string, fmt_ StringFormat, loc Location) (string, error) {
	switch fmt_.Style {
	case StringBasic:
		return `"` + s.escapeBasicString(str) + `"`, nil
	case StringLiteral:
		if strings.ContainsRune(str, '\n') {
			return "", newErr(ErrNewlineInLiteral, loc,
				"non-multiline literal string cannot have a newline")
		}
		return "'" + str + "'", nil
	case StringMLBasic:
		out := `"""`
		if fmt_.StartWithNewline {
			out += "\n"
		}
		out += s.escapeMLBasicString(str)
		out += `"""`
		return out, nil
	case StringMLLiteral:
		// A payload containing ''' produces invalid TOML here; this is
		// a documented caller obligation, not something this emitter
		// validates (spec.md §9).
		out := "'''"
		if fmt_.StartWithNewline {
			out += "\n"
		}
		out += str
		out += "'''"
		return out, nil
	default:
		return "", newErr(ErrInvalidStringFormat, loc, "invalid string format style %v", fmt_.Style)
	}
}
