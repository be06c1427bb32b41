package toml

// formatTable implements the layout dispatch of spec.md §4.9.
func (s *serializer) formatTable(t *Table, fmt_ TableFormat, com Comments, loc Location) (string, error) {
	if s.forceInline {
		if fmt_.Style == TableMultilineOneline {
			return s.formatMLInlineTable(t, fmt_)
		}
		return s.formatInlineTable(t, fmt_)
	}

	switch fmt_.Style {
	case TableMultiline:
		var out string
		if len(s.keys) > 0 {
			restoreIndent := s.addIndent(fmt_.NameIndent)
			out += s.formatComments(com, fmt_.IndentChar)
			out += s.formatIndent(fmt_.IndentChar)
			restoreIndent()
			out += "[" + s.formatKeyPath(s.keys) + "]\n"
		}
		body, err := s.formatMLTable(t, fmt_)
		if err != nil {
			return "", err
		}
		return out + body, nil

	case TableOneline:
		return s.formatInlineTable(t, fmt_)

	case TableMultilineOneline:
		return s.formatMLInlineTable(t, fmt_)

	case TableDotted:
		if len(s.keys) == 0 {
			return "", newErr(ErrMissingKey, loc, "dotted table must have its key; use FormatKey/FormatPath")
		}
		return s.formatDottedTable(t, fmt_, loc, []string{s.keys[len(s.keys)-1]})

	default: // TableImplicit
		return s.formatImplicitTable(t, fmt_)
	}
}

// formatLater reports whether a child must be deferred to format_ml_table's
// second pass: multiline sub-tables and arrays rendered with "[[path]]\n"
// headers, which the immediate pass's plain "key = value" rendering
// cannot produce. Those are arrays tagged ArrayOfTables and default-style
// arrays that resolveArrayStyle turns into one (non-empty, no comments,
// every element a table). Any other array stays in the immediate pass.
func formatLater(v *Value) bool {
	isMLTable := v.Kind == KindTable &&
		v.TblFmt.Style != TableOneline &&
		v.TblFmt.Style != TableMultilineOneline &&
		v.TblFmt.Style != TableDotted

	isMLArrayOfTables := v.Kind == KindArray && (v.ArrFmt.Style == ArrayOfTables ||
		(v.ArrFmt.Style == ArrayDefault && len(v.Arr) > 0 &&
			commentsEmpty(comments(v)) && allTables(v.Arr)))

	return isMLTable || isMLArrayOfTables
}

// formatMLTable implements spec.md §4.9's two-pass multiline body.
func (s *serializer) formatMLTable(t *Table, fmt_ TableFormat) (string, error) {
	var out string
	restoreIndent := s.addIndent(fmt_.BodyIndent)
	for _, key := range t.Keys {
		val := t.Items[key]
		if formatLater(val) {
			continue
		}

		restoreKey := s.pushKey(key)
		out += s.formatComments(comments(val), fmt_.IndentChar)
		out += s.formatIndent(fmt_.IndentChar)

		if val.Kind == KindTable && val.TblFmt.Style == TableDotted {
			rendered, err := s.formatValue(val)
			if err != nil {
				restoreKey()
				restoreIndent()
				return "", err
			}
			out += rendered
		} else {
			out += s.formatKey(key)
			out += " = "
			rendered, err := s.formatValue(val)
			if err != nil {
				restoreKey()
				restoreIndent()
				return "", err
			}
			out += rendered
			out += "\n"
		}
		restoreKey()
	}
	restoreIndent()

	var deferred string
	for _, key := range t.Keys {
		val := t.Items[key]
		if !formatLater(val) {
			continue
		}
		restoreKey := s.pushKey(key)
		rendered, err := s.formatValue(val)
		if err != nil {
			restoreKey()
			return "", err
		}
		deferred += rendered
		restoreKey()
	}

	if out != "" && deferred != "" {
		out += "\n" // blank line between immediates and deferred tables
	}
	return out + deferred, nil
}

// formatInlineTable implements the `{ k = v, k = v }` layout. Comments
// have no slot in inline syntax and are discarded.
func (s *serializer) formatInlineTable(t *Table, _ TableFormat) (string, error) {
	out := "{"
	if len(t.Keys) > 0 {
		out += " "
	}
	restoreInline := s.setForceInline(true)
	for i, key := range t.Keys {
		val := t.Items[key]
		out += s.formatKey(key) + " = "
		rendered, err := s.formatValue(val)
		if err != nil {
			restoreInline()
			return "", err
		}
		out += rendered
		if i != len(t.Keys)-1 {
			out += ", "
		}
	}
	restoreInline()
	if len(t.Keys) > 0 {
		out += " "
	}
	out += "}"
	return out, nil
}

// formatMLInlineTable implements the `{\n k = v,\n ... }` layout.
func (s *serializer) formatMLInlineTable(t *Table, fmt_ TableFormat) (string, error) {
	out := "{\n"
	restoreInline := s.setForceInline(true)
	restoreIndent := s.addIndent(fmt_.BodyIndent)
	for _, key := range t.Keys {
		val := t.Items[key]
		out += s.formatComments(comments(val), fmt_.IndentChar)
		out += s.formatIndent(fmt_.IndentChar)
		out += s.formatKey(key) + " = "
		rendered, err := s.formatValue(val)
		if err != nil {
			restoreIndent()
			restoreInline()
			return "", err
		}
		out += rendered
		out += ",\n"
	}
	if len(t.Keys) > 0 {
		out = out[:len(out)-2] // strip the last entry's trailing ",\n"
	}
	restoreIndent()
	restoreInline()

	restoreClosing := s.addIndent(fmt_.ClosingIndent)
	out += s.formatIndent(fmt_.IndentChar)
	restoreClosing()

	out += "}"
	return out, nil
}

// formatDottedTable implements spec.md §4.9's dotted layout, threading
// a local key list distinct from the serializer's own key stack
// (SPEC_FULL.md §5).
func (s *serializer) formatDottedTable(t *Table, fmt_ TableFormat, loc Location, keys []string) (string, error) {
	var out string
	for _, key := range t.Keys {
		val := t.Items[key]
		keys = append(keys, key)

		if val.Kind == KindTable &&
			val.TblFmt.Style != TableOneline &&
			val.TblFmt.Style != TableMultilineOneline {
			rendered, err := s.formatDottedTable(val.Tbl, val.TblFmt, val.Loc, keys)
			if err != nil {
				keys = keys[:len(keys)-1]
				return "", err
			}
			out += rendered
		} else {
			out += s.formatComments(comments(val), fmt_.IndentChar)
			out += s.formatIndent(fmt_.IndentChar)
			out += s.formatKeyPathLocal(keys)
			out += " = "
			restoreInline := s.setForceInline(true)
			rendered, err := s.formatValue(val)
			restoreInline()
			if err != nil {
				keys = keys[:len(keys)-1]
				return "", err
			}
			out += rendered + "\n"
		}
		keys = keys[:len(keys)-1]
	}
	return out, nil
}

// formatKeyPathLocal is formatKeyPath without touching s.keys, used by
// formatDottedTable's local accumulator.
func (s *serializer) formatKeyPathLocal(path []string) string {
	return s.formatKeyPath(path)
}

// formatImplicitTable implements spec.md §4.9's implicit layout: every
// child must be either a multiline/implicit table or an array whose
// every element is itself a multiline/implicit table, checked against
// each element's own format record (spec.md §9's fix-forward for the
// source's array-format bug).
func (s *serializer) formatImplicitTable(t *Table, _ TableFormat) (string, error) {
	var out string
	for _, key := range t.Keys {
		val := t.Items[key]

		if val.Kind != KindTable && val.Kind != KindArray {
			return "", newErr(ErrImplicitNonTable, val.Loc,
				"an implicit table cannot have a non-table value")
		}

		if val.Kind == KindTable {
			if val.TblFmt.Style != TableMultiline && val.TblFmt.Style != TableImplicit {
				return "", newErr(ErrImplicitNonMultiline, val.Loc,
					"an implicit table cannot have a non-multiline table")
			}
		} else {
			for _, e := range val.Arr {
				if e.Kind != KindTable {
					return "", newErr(ErrImplicitNonTable, e.Loc,
						"an implicit table's array elements must be tables")
				}
				if e.TblFmt.Style != TableMultiline && e.TblFmt.Style != TableImplicit {
					return "", newErr(ErrImplicitNonMultiline, e.Loc,
						"an implicit table cannot have a non-multiline table")
				}
			}
		}

		restoreKey := s.pushKey(key)
		rendered, err := s.formatValue(val)
		if err != nil {
			restoreKey()
			return "", err
		}
		out += rendered
		restoreKey()
	}
	return out, nil
}
