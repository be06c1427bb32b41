package toml

// inlineLengthBudget is the approximate-inline-length threshold from
// spec.md §4.8 / §9: a heuristic budgeted against an 80-column target
// line width once key, " = ", and "[...]" framing are accounted for.
const inlineLengthBudget = 60

// resolveArrayStyle implements the style-choice half of spec.md §4.8.
func (s *serializer) resolveArrayStyle(elems []*Value, fmt_ ArrayFormat, com Comments) (ArrayStyle, error) {
	style := fmt_.Style
	if style == ArrayDefault {
		if len(s.keys) > 0 && len(elems) > 0 && commentsEmpty(com) && allTables(elems) {
			style = ArrayOfTables
		} else {
			style = ArrayOneline
			approxLen := 0
			for _, e := range elems {
				if !commentsEmpty(comments(e)) {
					style = ArrayMultiline
					break
				}
				switch e.Kind {
				case KindArray, KindTable, KindOffsetDatetime, KindLocalDatetime:
					style = ArrayMultiline
				case KindBoolean:
					approxLen += len(s.formatBoolean(e.Bool))
				case KindInteger:
					rendered, err := s.formatInteger(e.Int, e.IntFmt, e.Loc)
					if err != nil {
						return 0, err
					}
					approxLen += len(rendered)
				case KindFloat:
					approxLen += len(s.formatFloating(e.Float, e.FloatFmt))
				case KindString:
					if e.StrFmt.Style == StringMLBasic || e.StrFmt.Style == StringMLLiteral {
						style = ArrayMultiline
						break
					}
					rendered, err := s.formatString(e.Str, e.StrFmt, e.Loc)
					if err != nil {
						return 0, err
					}
					approxLen += 2 + len(rendered)
				case KindLocalDate:
					approxLen += 10
				case KindLocalTime:
					approxLen += 15
				}
				if style == ArrayMultiline {
					break
				}
				if approxLen > inlineLengthBudget {
					style = ArrayMultiline
					break
				}
				approxLen += 2 // ", "
			}
		}
	}

	if s.forceInline && style == ArrayOfTables {
		style = ArrayMultiline
	}
	return style, nil
}

// commentsEmpty reports whether c carries no renderable comment text:
// true for any discarded comment (it never renders, regardless of what
// lines it was constructed with) and for a preserved comment with no
// lines.
func commentsEmpty(c Comments) bool {
	if c == nil || !c.Preserved() {
		return true
	}
	return len(c.Lines()) == 0
}

func allTables(elems []*Value) bool {
	for _, e := range elems {
		if e.Kind != KindTable {
			return false
		}
	}
	return true
}

// formatArray implements spec.md §4.8.
func (s *serializer) formatArray(elems []*Value, fmt_ ArrayFormat, com Comments, loc Location) (string, error) {
	style, err := s.resolveArrayStyle(elems, fmt_, com)
	if err != nil {
		return "", err
	}

	switch style {
	case ArrayOfTables:
		if len(s.keys) == 0 {
			return "", newErr(ErrMissingKey, loc, "array of table must have its key; use FormatKey/FormatPath")
		}
		var out string
		path := s.formatKeyPath(s.keys)
		for _, e := range elems {
			restoreIndent := s.addIndent(e.TblFmt.NameIndent)
			out += s.formatComments(comments(e), e.TblFmt.IndentChar)
			out += s.formatIndent(e.TblFmt.IndentChar)
			restoreIndent()

			out += "[[" + path + "]]\n"

			body, err := s.formatMLTable(e.Tbl, e.TblFmt)
			if err != nil {
				return "", err
			}
			out += body
		}
		return out, nil

	case ArrayOneline:
		out := "["
		restoreInline := s.setForceInline(true)
		for i, e := range elems {
			rendered, err := s.formatValue(e)
			if err != nil {
				restoreInline()
				return "", err
			}
			out += rendered
			if i != len(elems)-1 {
				out += ", "
			}
		}
		restoreInline()
		out += "]"
		return out, nil

	default: // ArrayMultiline
		out := "[\n"
		restoreInline := s.setForceInline(true)
		for _, e := range elems {
			restoreIndent := s.addIndent(fmt_.BodyIndent)
			out += s.formatComments(comments(e), fmt_.IndentChar)
			out += s.formatIndent(fmt_.IndentChar)
			restoreIndent()

			rendered, err := s.formatValue(e)
			if err != nil {
				restoreInline()
				return "", err
			}
			out += rendered + ",\n"
		}
		restoreInline()

		restoreIndent := s.addIndent(fmt_.ClosingIndent)
		out += s.formatIndent(fmt_.IndentChar)
		restoreIndent()

		out += "]"
		return out, nil
	}
}
