package toml

import "strings"

// isControlEscapeTarget reports whether c falls in the control-character
// range spec.md §4.6 requires an escape for. The range also covers \b,
// \f, \n and \r; the escape functions' switches handle those first and
// consult this only for the remaining bytes.
func isControlEscapeTarget(c byte) bool {
	return (c <= 0x08) || (c >= 0x0A && c <= 0x1F) || c == 0x7F
}

// escapeControl renders one control byte per spec.md §4.6: \e if the
// extension is on and the byte is ESC, else \xHH if that extension is
// on, else \u00HH. Hex digits are uppercase in all cases.
func (s *serializer) escapeControl(c byte) string {
	if c == 0x1B && s.spec.V1_1_0AddEscapeSequenceE {
		return `\e`
	}
	hi, lo := c/16, c%16
	hex := string(hexDigitUpper(hi)) + string(hexDigitUpper(lo))
	if s.spec.V1_1_0AddEscapeSequenceX {
		return `\x` + hex
	}
	return `\u00` + hex
}

func hexDigitUpper(n byte) byte {
	if n < 10 {
		return '0' + n
	}
	return 'A' + (n - 10)
}

// escapeBasicString implements the basic-string half of spec.md §4.6.
func (s *serializer) escapeBasicString(str string) string {
	var b strings.Builder
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if isControlEscapeTarget(c) {
				b.WriteString(s.escapeControl(c))
			} else {
				b.WriteByte(c)
			}
		}
	}
	return b.String()
}

// escapeMLBasicString implements the multiline-basic half of spec.md
// §4.6: `\n` in the payload is intentional and passes through literally,
// and any run of three or more `"` produced after escaping is broken up
// so it cannot be mistaken for the closing delimiter.
func (s *serializer) escapeMLBasicString(str string) string {
	var b strings.Builder
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteByte('\n')
		case '\r':
			b.WriteString(`\r`)
		default:
			if isControlEscapeTarget(c) {
				b.WriteString(s.escapeControl(c))
			} else {
				b.WriteByte(c)
			}
		}
	}
	return breakTripleQuotes(b.String())
}

// breakTripleQuotes repeatedly rewrites the first `"""` run into `""\"`
// until no run of three or more consecutive `"` remains.
func breakTripleQuotes(s string) string {
	for {
		idx := strings.Index(s, `"""`)
		if idx < 0 {
			return s
		}
		s = s[:idx] + `""\"` + s[idx+3:]
	}
}

// escapeKey applies the same escape rules as escapeBasicString; keys
// that require quoting are always quoted in the basic style.
func (s *serializer) escapeKey(key string) string {
	return s.escapeBasicString(key)
}
