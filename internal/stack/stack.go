// Package stack provides the LIFO used by the tree builder. Besides the
// usual push/pop/peek operations it records every popped item, so that a
// reduction which pops an unknown-length run of homogeneous children can
// get them back as one slice in original push order.
package stack

type AnyItem interface{}

type Stack struct {
	live   []AnyItem
	popped []AnyItem
}

func (s *Stack) Push(i AnyItem) {
	s.live = append(s.live, i)
}

// Pop removes and returns the top item. The item is appended to the
// popped history. Returns false on an empty stack.
func (s *Stack) Pop() (AnyItem, bool) {
	l := len(s.live)
	if l == 0 {
		return nil, false
	}
	i := s.live[l-1]
	s.live = s.live[:l-1]
	s.popped = append(s.popped, i)
	return i, true
}

// Peek returns the top item without removing it.
func (s *Stack) Peek() (AnyItem, bool) {
	l := len(s.live)
	if l == 0 {
		return nil, false
	}
	return s.live[l-1], true
}

func (s *Stack) Len() int {
	return len(s.live)
}

func (s *Stack) IsEmpty() bool {
	return len(s.live) == 0
}

// PopLastAsArray returns the last n popped items, reordered so that the
// earliest-pushed item comes first, and consumes them from the history.
// n larger than the recorded history returns everything recorded.
func (s *Stack) PopLastAsArray(n int) []AnyItem {
	if n > len(s.popped) {
		n = len(s.popped)
	}
	out := make([]AnyItem, n)
	tail := s.popped[len(s.popped)-n:]
	for i, item := range tail {
		out[n-1-i] = item
	}
	s.popped = s.popped[:len(s.popped)-n]
	return out
}
