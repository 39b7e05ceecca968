package structure

import (
	"fmt"
	"slices"
)

// Stack is a LIFO sequence; index Len-1 is the top.
type Stack struct {
	items []int
}

// NewStack builds a Stack with values pushed in order (last value on top).
func NewStack(values ...int) *Stack {
	return &Stack{items: slices.Clone(values)}
}

// Kind implements Structure.
func (s *Stack) Kind() Kind { return KindStack }

// Len returns the number of elements.
func (s *Stack) Len() int { return len(s.items) }

// Values returns a copy of the elements bottom to top.
func (s *Stack) Values() []int { return slices.Clone(s.items) }

// Push appends v on top.
func (s *Stack) Push(v int) { s.items = append(s.items, v) }

// Pop removes and returns the top element.
func (s *Stack) Pop() int {
	mustNotEmpty("stack", len(s.items))
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return top
}

// Peek returns the top element and whether one exists.
func (s *Stack) Peek() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}

	return s.items[len(s.items)-1], true
}

// Clone implements Structure.
func (s *Stack) Clone() Structure { return NewStack(s.items...) }

// Equal implements Structure.
func (s *Stack) Equal(other Structure) bool {
	o, ok := other.(*Stack)

	return ok && equalInts(s.items, o.items)
}

func (s *Stack) String() string { return fmt.Sprint(s.items) }
