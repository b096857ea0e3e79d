package modeldesc

import (
	"github.com/fmukit/modeldesc/internal/debug"
	"github.com/fmukit/modeldesc/internal/stack"
)

type nodeStack struct {
	stack.Stack
}

func (s *nodeStack) Push(n Node) {
	if debug.Enabled {
		debug.Printf(" --> push %s", n.Kind())
	}
	s.Stack.Push(stack.AnyItem(n))
}

func (s *nodeStack) Pop() (Node, bool) {
	i, ok := s.Stack.Pop()
	if !ok {
		if debug.Enabled {
			debug.Printf(" <-- pop (EMPTY)")
		}
		return nil, false
	}
	n := i.(Node)
	if debug.Enabled {
		debug.Printf(" <-- pop %s", n.Kind())
	}
	return n, true
}

func (s *nodeStack) Peek() (Node, bool) {
	i, ok := s.Stack.Peek()
	if !ok {
		return nil, false
	}
	return i.(Node), true
}

func (s *nodeStack) PopLastAsArray(n int) []Node {
	items := s.Stack.PopLastAsArray(n)
	nodes := make([]Node, len(items))
	for i, item := range items {
		nodes[i] = item.(Node)
	}
	return nodes
}
