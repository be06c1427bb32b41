package toml

// The helpers below implement the "scoped acquisition with guaranteed
// restore" discipline spec.md §5/§9 requires around every recursive
// call: push on entry, pop on any exit path (including errors). Each
// helper applies its change and returns the matching restore function,
// which callers invoke explicitly before every return.

func (s *serializer) pushKey(k string) func() {
	s.keys = append(s.keys, k)
	return func() { s.keys = s.keys[:len(s.keys)-1] }
}

func (s *serializer) pushKeys(ks []string) func() {
	n := len(s.keys)
	s.keys = append(s.keys, ks...)
	return func() { s.keys = s.keys[:n] }
}

func (s *serializer) addIndent(delta int32) func() {
	s.indent += delta
	return func() { s.indent -= delta }
}

func (s *serializer) setForceInline(v bool) func() {
	prev := s.forceInline
	s.forceInline = v
	return func() { s.forceInline = prev }
}
