package trick

// ScriptedSource replays a fixed sequence of values, each reduced modulo the
// requested bound. Once exhausted it returns 0.
type ScriptedSource struct {
	values []int
	next   int
}

// NewScriptedSource creates a source that yields values in order
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

func (s *ScriptedSource) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	if s.next >= len(s.values) {
		return 0
	}
	v := s.values[s.next] % n
	s.next++
	if v < 0 {
		v += n
	}
	return v
}
