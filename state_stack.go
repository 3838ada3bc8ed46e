package lightmgr

// StateStack scopes light states to the subtree being culled. The top entry
// is the state in effect; nil entries are never pushed.
type StateStack struct {
	states []*LightState
}

func (s *StateStack) Push(st *LightState) {
	s.states = append(s.states, st)
}

// Pop removes the top state. Popping an empty stack panics, it means a
// push/pop bracket was broken.
func (s *StateStack) Pop() *LightState {
	n := len(s.states)
	if n == 0 {
		panic("lightmgr: pop on empty state stack")
	}
	top := s.states[n-1]
	s.states[n-1] = nil
	s.states = s.states[:n-1]
	return top
}

// Top returns the state in effect, or nil.
func (s *StateStack) Top() *LightState {
	if len(s.states) == 0 {
		return nil
	}
	return s.states[len(s.states)-1]
}

func (s *StateStack) Depth() int { return len(s.states) }
