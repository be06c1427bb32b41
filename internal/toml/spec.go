package toml

// Version identifies the base TOML dialect a Spec targets.
type Version uint8

const (
	Version1_0_0 Version = iota
	Version1_1_0
)

// Spec is the TOML dialect configuration: a base version plus a set of
// independently toggleable extensions. It owns the three emit entry
// points; every call constructs its own serializer, so a single Spec
// value may be reused concurrently (see doc.go).
type Spec struct {
	Version Version

	// ExtNullValue renders KindEmpty as the bare token `null` instead
	// of failing with ErrInvalidType.
	ExtNullValue bool

	// ExtNumSuffix allows a trailing `_suffix` token after decimal
	// integers and (non-special) floats.
	ExtNumSuffix bool

	// ExtHexFloat allows hex-float output for FloatHex; without it,
	// FloatHex falls back to maximum-precision scientific notation.
	ExtHexFloat bool

	// V1_1_0AddEscapeSequenceE allows `\e` for 0x1B in escaped strings.
	V1_1_0AddEscapeSequenceE bool

	// V1_1_0AddEscapeSequenceX allows `\xHH` for other control
	// characters in escaped strings, in place of `\u00HH`.
	V1_1_0AddEscapeSequenceX bool
}

// DefaultSpec is TOML 1.0.0 with no extensions enabled.
func DefaultSpec() Spec { return Spec{Version: Version1_0_0} }

// V1_1_0 enables the two 1.1.0 escape-sequence extensions on top of the
// 1.1.0 base version; the null and suffix extensions remain opt-in.
func V1_1_0() Spec {
	return Spec{
		Version:                  Version1_1_0,
		V1_1_0AddEscapeSequenceE: true,
		V1_1_0AddEscapeSequenceX: true,
	}
}

// Format is the root emit entry point. For a root table, comments
// attached to the root are emitted (there is no [header] line to
// attach them to otherwise).
func (s Spec) Format(v *Value) (string, error) {
	ser := newSerializer(s)
	return ser.formatRoot(v)
}

// FormatKey emits v with a single-key prefix. Required for array-of-
// tables and dotted tables at the root, since those layouts need a key
// path to build their header/prefix from.
func (s Spec) FormatKey(key string, v *Value) (string, error) {
	ser := newSerializer(s)
	ser.keys = append(ser.keys, key)
	return ser.formatRoot(v)
}

// FormatPath emits v with an explicit key-path prefix.
func (s Spec) FormatPath(path []string, v *Value) (string, error) {
	ser := newSerializer(s)
	ser.keys = append(ser.keys, path...)
	return ser.formatRoot(v)
}
