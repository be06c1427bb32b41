package toml

import "strings"

// isBareKeyRune reports whether r is legal in an unquoted TOML key:
// ASCII letters, digits, '-' and '_'. TOML 1.1.0 loosens this in the
// underlying grammar in ways this serializer does not need to track,
// since it only ever needs to decide bare-vs-quoted for keys it is
// given, not parse them.
func isBareKeyRune(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_'
}

func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !isBareKeyRune(r) {
			return false
		}
	}
	return true
}

// formatKey implements spec.md §4.10: bare when the key matches the
// unquoted-key grammar, otherwise basic-quoted using the §4.6 escape
// rules. An empty string becomes `""`.
func (s *serializer) formatKey(key string) string {
	if key == "" {
		return `""`
	}
	if isBareKey(key) {
		return key
	}
	return `"` + s.escapeKey(key) + `"`
}

// formatKeyPath joins a path's formatted keys with '.'.
func (s *serializer) formatKeyPath(path []string) string {
	formatted := make([]string, len(path))
	for i, k := range path {
		formatted[i] = s.formatKey(k)
	}
	return strings.Join(formatted, ".")
}
