// Package toml implements the in-memory TOML value tree and the
// formatting-aware serializer that turns it back into TOML text.
//
// Scope:
// - explicit AST (Table / Array / scalar Value) carrying per-node
//   format records
// - a recursive, stateful serializer that honours those format
//   records subject to TOML's grammar
//
// Non-goals (by design):
// - canonicalisation: two trees encoding the same value with different
//   format records may and will serialize to different text
// - round-trip byte-exactness with arbitrary TOML input
// - validation of non-TOML-representable values (NaN payloads,
//   non-UTF-8 strings)
//
// Parsing TOML text into this tree lives in a sibling package,
// internal/tomlparse; this package treats a fully-built tree as its
// only input.
package toml

// Kind identifies the tagged variant a Value holds.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindLocalDate
	KindLocalTime
	KindLocalDatetime
	KindOffsetDatetime
	KindArray
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindLocalDate:
		return "local_date"
	case KindLocalTime:
		return "local_time"
	case KindLocalDatetime:
		return "local_datetime"
	case KindOffsetDatetime:
		return "offset_datetime"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Location is an opaque source-location handle. The serializer never
// interprets it; it only threads it through to diagnostics.
type Location struct {
	Source string
	Line   int
	Column int
}

// Comments holds the comment lines attached to a node. Two observable
// modes exist: preserved (rendered where the grammar allows it) and
// discarded (never rendered, regardless of layout).
type Comments interface {
	Lines() []string
	Preserved() bool
}

// PreservedComments renders each of its lines where the layout permits.
type PreservedComments []string

func (c PreservedComments) Lines() []string { return []string(c) }
func (PreservedComments) Preserved() bool   { return true }

// DiscardedComments never renders, even when the layout has a slot for
// comments.
type DiscardedComments []string

func (c DiscardedComments) Lines() []string { return []string(c) }
func (DiscardedComments) Preserved() bool   { return false }

// NoComments is the zero-cost discarded-comments value used when a node
// carries no comment text at all.
var NoComments Comments = DiscardedComments(nil)

// LocalDate is a TOML local-date value (no time-of-day, no offset).
type LocalDate struct {
	Year  int
	Month int
	Day   int
}

// LocalTime is a TOML local-time value.
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// LocalDateTime combines a LocalDate and LocalTime with no offset.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

// OffsetDateTime combines a LocalDate and LocalTime with a stored
// offset suffix (e.g. "Z", "+09:00").
type OffsetDateTime struct {
	Date   LocalDate
	Time   LocalTime
	Offset string
}

// Value is a tagged variant over the TOML types. Exactly one payload
// field is meaningful for a given Kind; the rest are zero.
type Value struct {
	Kind Kind

	Bool    bool
	Int     int64
	Float   float64
	Str     string
	Date    LocalDate
	Time    LocalTime
	LocalDT LocalDateTime
	OffsDT  OffsetDateTime
	Arr     []*Value
	Tbl     *Table

	BoolFmt     BooleanFormat
	IntFmt      IntegerFormat
	FloatFmt    FloatingFormat
	StrFmt      StringFormat
	DateTimeFmt DateTimeFormat
	ArrFmt      ArrayFormat
	TblFmt      TableFormat

	Comments Comments
	Loc      Location
}

// Table is an ordered map of keys to child values. Keys records native
// iteration order; Items is the lookup index. Use Set to insert so the
// two stay consistent.
type Table struct {
	Keys  []string
	Items map[string]*Value
}

// NewTable returns an empty table ready for Set calls.
func NewTable() *Table {
	return &Table{Items: make(map[string]*Value)}
}

// Set inserts or replaces the child at key, appending to Keys only on
// first insertion so iteration order matches insertion order.
func (t *Table) Set(key string, v *Value) {
	if _, exists := t.Items[key]; !exists {
		t.Keys = append(t.Keys, key)
	}
	t.Items[key] = v
}

// Get returns the child at key, if any.
func (t *Table) Get(key string) (*Value, bool) {
	v, ok := t.Items[key]
	return v, ok
}

// Len returns the number of direct children.
func (t *Table) Len() int { return len(t.Keys) }

// Boolean, Integer, ... construct a Value of the matching kind with a
// zero-value (default) format record and no comments. Callers that
// need non-default formatting set the returned Value's *Fmt field
// directly.
func Boolean(b bool) *Value { return &Value{Kind: KindBoolean, Bool: b, Comments: NoComments} }

func Integer(i int64) *Value {
	return &Value{Kind: KindInteger, Int: i, Comments: NoComments}
}

func Floating(f float64) *Value {
	return &Value{Kind: KindFloat, Float: f, Comments: NoComments}
}

func String(s string) *Value {
	return &Value{Kind: KindString, Str: s, Comments: NoComments}
}

func TableValue(t *Table) *Value {
	return &Value{Kind: KindTable, Tbl: t, Comments: NoComments}
}

func ArrayValue(elems []*Value) *Value {
	return &Value{Kind: KindArray, Arr: elems, Comments: NoComments}
}

func Empty() *Value {
	return &Value{Kind: KindEmpty, Comments: NoComments}
}

func comments(v *Value) Comments {
	if v.Comments == nil {
		return NoComments
	}
	return v.Comments
}
