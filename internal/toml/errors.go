package toml

import "fmt"

// ErrorKind enumerates the ways serialization can fail.
type ErrorKind uint8

const (
	ErrInvalidType ErrorKind = iota
	ErrNegativeInNondecimal
	ErrInvalidIntegerFormat
	ErrInvalidStringFormat
	ErrNewlineInLiteral
	ErrMissingKey
	ErrImplicitNonTable
	ErrImplicitNonMultiline
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidType:
		return "invalid_type"
	case ErrNegativeInNondecimal:
		return "negative_in_nondecimal"
	case ErrInvalidIntegerFormat:
		return "invalid_integer_format"
	case ErrInvalidStringFormat:
		return "invalid_string_format"
	case ErrNewlineInLiteral:
		return "newline_in_literal"
	case ErrMissingKey:
		return "missing_key"
	case ErrImplicitNonTable:
		return "implicit_non_table"
	case ErrImplicitNonMultiline:
		return "implicit_non_multiline"
	default:
		return "unknown"
	}
}

// SerializationError is the single error type the serializer produces.
// Every failure aborts the whole emit; nothing is recovered locally.
type SerializationError struct {
	Kind    ErrorKind
	Message string
	Loc     Location
}

func (e *SerializationError) Error() string {
	if e.Loc.Source == "" && e.Loc.Line == 0 {
		return fmt.Sprintf("toml: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("toml: %s:%d: %s: %s", e.Loc.Source, e.Loc.Line, e.Kind, e.Message)
}

func newErr(kind ErrorKind, loc Location, format string, args ...any) *SerializationError {
	return &SerializationError{Kind: kind, Message: fmt.Sprintf(format, args...), Loc: loc}
}
