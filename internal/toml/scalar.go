package toml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatBoolean renders `true` / `false`. No format record is
// observable for booleans.
func (s *serializer) formatBoolean(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// insertSpacer applies underscore grouping to a formatted digit string,
// scanning right-to-left and skipping position 0, never leaving a
// trailing '_' adjacent to a sign. spacer == 0 disables grouping.
func insertSpacer(s string, spacer int) string {
	if spacer == 0 {
		return s
	}
	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign = s[:1]
		s = s[1:]
	}
	var b strings.Builder
	counter := 0
	for i := len(s) - 1; i >= 0; i-- {
		if counter != 0 && counter%spacer == 0 {
			b.WriteByte('_')
		}
		b.WriteByte(s[i])
		counter++
	}
	spaced := reverse(b.String())
	return sign + spaced
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// formatInteger implements spec.md §4.3.
func (s *serializer) formatInteger(i int64, fmt_ IntegerFormat, loc Location) (string, error) {
	if fmt_.Base == BaseDec {
		digits := strconv.FormatInt(i, 10)
		digits = zeroPadSigned(digits, fmt_.Width)
		retval := insertSpacer(digits, fmt_.Spacer)
		if s.spec.ExtNumSuffix && fmt_.Suffix != "" {
			retval += "_" + fmt_.Suffix
		}
		return retval, nil
	}

	if i < 0 {
		return "", newErr(ErrNegativeInNondecimal, loc,
			"binary, octal, hexadecimal integer does not allow negative value")
	}

	switch fmt_.Base {
	case BaseHex:
		digits := strconv.FormatUint(uint64(i), 16)
		if fmt_.Uppercase {
			digits = strings.ToUpper(digits)
		}
		digits = zeroPadUnsigned(digits, fmt_.Width)
		return "0x" + insertSpacer(digits, fmt_.Spacer), nil
	case BaseOct:
		digits := strconv.FormatUint(uint64(i), 8)
		digits = zeroPadUnsigned(digits, fmt_.Width)
		return "0o" + insertSpacer(digits, fmt_.Spacer), nil
	case BaseBin:
		return "0b" + formatBinaryGrouped(uint64(i), fmt_.Width, fmt_.Spacer), nil
	default:
		return "", newErr(ErrInvalidIntegerFormat, loc, "none of dec, hex, oct, bin: %v", fmt_.Base)
	}
}

// formatBinaryGrouped mirrors toml11's bit-by-bit construction: '_' is
// inserted inline while the digit string is built, not by a separate
// pass over the finished string, so grouping interacts with
// zero-padding the same way the reference implementation does.
func formatBinaryGrouped(x uint64, width int, spacer int) string {
	var tmp strings.Builder
	bits := 0
	if x == 0 && width == 0 {
		tmp.WriteByte('0')
		bits = 1
	}
	for x != 0 {
		if spacer != 0 && bits != 0 && bits%spacer == 0 {
			tmp.WriteByte('_')
		}
		if x%2 == 1 {
			tmp.WriteByte('1')
		} else {
			tmp.WriteByte('0')
		}
		x >>= 1
		bits++
	}
	for ; bits < width; bits++ {
		if spacer != 0 && bits != 0 && bits%spacer == 0 {
			tmp.WriteByte('_')
		}
		tmp.WriteByte('0')
	}
	return reverse(tmp.String())
}

func zeroPadUnsigned(digits string, width int) string {
	for len(digits) < width {
		digits = "0" + digits
	}
	return digits
}

func zeroPadSigned(digits string, width int) string {
	sign := ""
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		sign = digits[:1]
		digits = digits[1:]
	}
	for len(sign)+len(digits) < width {
		digits = "0" + digits
	}
	return sign + digits
}

// formatFloating implements spec.md §4.4.
func (s *serializer) formatFloating(f float64, fmt_ FloatingFormat) string {
	suffix := func(v string) string {
		if s.spec.ExtNumSuffix && fmt_.Suffix != "" {
			return v + "_" + fmt_.Suffix
		}
		return v
	}

	if math.IsNaN(f) {
		if math.Signbit(f) {
			return suffix("-nan")
		}
		return suffix("nan")
	}
	if math.IsInf(f, 0) {
		if math.Signbit(f) {
			return suffix("-inf")
		}
		return suffix("inf")
	}

	switch fmt_.Style {
	case FloatFixed:
		prec := fmt_.Precision
		if prec == 0 {
			prec = 6
		}
		return suffix(strconv.FormatFloat(f, 'f', prec, 64))
	case FloatScientific:
		prec := fmt_.Precision
		if prec == 0 {
			prec = 6
		}
		return suffix(formatScientific(f, prec))
	case FloatHex:
		if s.spec.ExtHexFloat {
			return strconv.FormatFloat(f, 'x', -1, 64)
		}
		return formatScientific(f, -1)
	default: // FloatDefault
		prec := -1
		if fmt_.Precision != 0 {
			prec = fmt_.Precision
		}
		str := strconv.FormatFloat(f, 'g', prec, 64)
		if !strings.ContainsAny(str, ".eE") {
			str += ".0"
		}
		return suffix(str)
	}
}

// formatScientific renders TOML-style exponent notation (lowercase 'e',
// explicit sign), matching Go's 'e' verb which already does this.
func formatScientific(f float64, prec int) string {
	return strconv.FormatFloat(f, 'e', prec, 64)
}

func pad2(n int) string { return fmt.Sprintf("%02d", n) }
func pad3(n int) string { return fmt.Sprintf("%03d", n) }

// formatLocalDate implements spec.md §4.7.
func (s *serializer) formatLocalDate(d LocalDate) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (s *serializer) formatTimeOfDay(t LocalTime, fmt_ DateTimeFormat) string {
	out := pad2(t.Hour) + ":" + pad2(t.Minute)
	if fmt_.HasSeconds {
		out += ":" + pad2(t.Second)
		if fmt_.SubsecondPrecision != 0 {
			nanos := t.Nanosecond
			millis := nanos / 1_000_000
			micros := (nanos / 1_000) % 1_000
			nanoRem := nanos % 1_000
			subsec := pad3(millis) + pad3(micros) + pad3(nanoRem)
			n := fmt_.SubsecondPrecision
			if n > len(subsec) {
				n = len(subsec)
			}
			out += "." + subsec[:n]
		}
	}
	return out
}

// formatLocalTime implements the LocalTime half of spec.md §4.7.
func (s *serializer) formatLocalTime(t LocalTime, fmt_ DateTimeFormat) string {
	return s.formatTimeOfDay(t, fmt_)
}

func (s *serializer) formatLocalDatetime(dt LocalDateTime, fmt_ DateTimeFormat) string {
	return s.formatLocalDate(dt.Date) + string(fmt_.Delimiter.rune()) + s.formatTimeOfDay(dt.Time, fmt_)
}

func (s *serializer) formatOffsetDatetime(dt OffsetDateTime, fmt_ DateTimeFormat) string {
	return s.formatLocalDate(dt.Date) + string(fmt_.Delimiter.rune()) + s.formatTimeOfDay(dt.Time, fmt_) + dt.Offset
}
