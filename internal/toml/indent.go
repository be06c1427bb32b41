package toml

import "strings"

// formatIndent renders max(0, s.indent) copies of the indent character;
// IndentNone yields no indent at all. Implements spec.md §4.11.
func (s *serializer) formatIndent(ch IndentChar) string {
	n := s.indent
	if n < 0 {
		n = 0
	}
	switch ch {
	case IndentSpace:
		return strings.Repeat(" ", int(n))
	case IndentTab:
		return strings.Repeat("\t", int(n))
	default:
		return ""
	}
}

// formatComments renders preserved comments, one non-empty line per
// `<indent>#<line>\n`, inserting a leading '#' and trailing '\n' when
// absent. Discarded comments always render to the empty string.
// Implements spec.md §4.11.
func (s *serializer) formatComments(c Comments, ch IndentChar) string {
	if c == nil || !c.Preserved() {
		return ""
	}
	var b strings.Builder
	for _, line := range c.Lines() {
		if line == "" {
			continue
		}
		b.WriteString(s.formatIndent(ch))
		if line[0] != '#' {
			b.WriteByte('#')
		}
		b.WriteString(line)
		if line[len(line)-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
