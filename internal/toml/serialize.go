package toml

// serializer is the recursive, stateful emitter described in doc.go. It
// is never exported: callers only ever reach it through Spec's Format*
// methods, each of which allocates a fresh instance.
type serializer struct {
	spec        Spec
	keys        []string
	indent      int32
	forceInline bool
}

func newSerializer(spec Spec) *serializer {
	return &serializer{spec: spec}
}

// formatRoot is the top-level driver: format(path, value) -> text from
// spec.md §4.1, plus the root-table comment special case from
// SPEC_FULL.md §5.
func (s *serializer) formatRoot(v *Value) (string, error) {
	if v.Kind == KindTable {
		var out string
		if len(s.keys) == 0 {
			out += s.formatComments(comments(v), v.TblFmt.IndentChar)
		}
		if out != "" {
			out += "\n"
		}
		body, err := s.formatTable(v.Tbl, v.TblFmt, comments(v), v.Loc)
		if err != nil {
			return "", err
		}
		return out + body, nil
	}
	return s.formatValue(v)
}

// formatValue dispatches on v.Kind exactly as spec.md §4.1 describes.
func (s *serializer) formatValue(v *Value) (string, error) {
	switch v.Kind {
	case KindBoolean:
		return s.formatBoolean(v.Bool), nil
	case KindInteger:
		return s.formatInteger(v.Int, v.IntFmt, v.Loc)
	case KindFloat:
		return s.formatFloating(v.Float, v.FloatFmt), nil
	case KindString:
		return s.formatString(v.Str, v.StrFmt, v.Loc)
	case KindLocalDate:
		return s.formatLocalDate(v.Date), nil
	case KindLocalTime:
		return s.formatLocalTime(v.Time, v.DateTimeFmt), nil
	case KindLocalDatetime:
		return s.formatLocalDatetime(v.LocalDT, v.DateTimeFmt), nil
	case KindOffsetDatetime:
		return s.formatOffsetDatetime(v.OffsDT, v.DateTimeFmt), nil
	case KindArray:
		return s.formatArray(v.Arr, v.ArrFmt, comments(v), v.Loc)
	case KindTable:
		return s.formatTable(v.Tbl, v.TblFmt, comments(v), v.Loc)
	case KindEmpty:
		if s.spec.ExtNullValue {
			return "null", nil
		}
		return "", newErr(ErrInvalidType, v.Loc, "empty value without the null extension")
	default:
		return "", newErr(ErrInvalidType, v.Loc, "unknown value kind %v", v.Kind)
	}
}
