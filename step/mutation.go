package step

import (
	"fmt"

	"github.com/katalvlaran/stepviz/structure"
)

// as asserts the concrete structure a mutation expects.
func as[T structure.Structure](m Mutation, s structure.Structure) T {
	v, ok := s.(T)
	if !ok {
		panic(fmt.Sprintf("step: %s cannot apply to %s", m, s.Kind()))
	}

	return v
}

// ArrayInsert inserts Value at Index.
type ArrayInsert struct{ Index, Value int }

func (m ArrayInsert) Apply(s structure.Structure) {
	as[*structure.Array](m, s).Insert(m.Index, m.Value)
}

func (m ArrayInsert) String() string {
	return fmt.Sprintf("insert %d at %d", m.Value, m.Index)
}

// ArrayDelete removes the element at Index.
type ArrayDelete struct{ Index int }

func (m ArrayDelete) Apply(s structure.Structure) {
	as[*structure.Array](m, s).Delete(m.Index)
}

func (m ArrayDelete) String() string {
	return fmt.Sprintf("delete at %d", m.Index)
}

// ArraySet overwrites the element at Index.
type ArraySet struct{ Index, Value int }

func (m ArraySet) Apply(s structure.Structure) {
	as[*structure.Array](m, s).Set(m.Index, m.Value)
}

func (m ArraySet) String() string {
	return fmt.Sprintf("set [%d] = %d", m.Index, m.Value)
}

// TextInsert inserts Char before Index.
type TextInsert struct {
	Index int
	Char  rune
}

func (m TextInsert) Apply(s structure.Structure) {
	as[*structure.Text](m, s).Insert(m.Index, m.Char)
}

func (m TextInsert) String() string {
	return fmt.Sprintf("insert %q at %d", m.Char, m.Index)
}

// TextDelete removes the character at Index.
type TextDelete struct{ Index int }

func (m TextDelete) Apply(s structure.Structure) {
	as[*structure.Text](m, s).Delete(m.Index)
}

func (m TextDelete) String() string {
	return fmt.Sprintf("delete at %d", m.Index)
}

// TextReplace swaps the character at Index for Char.
type TextReplace struct {
	Index int
	Char  rune
}

func (m TextReplace) Apply(s structure.Structure) {
	as[*structure.Text](m, s).Replace(m.Index, m.Char)
}

func (m TextReplace) String() string {
	return fmt.Sprintf("replace [%d] with %q", m.Index, m.Char)
}

// CellSet overwrites matrix cell (Row, Col).
type CellSet struct{ Row, Col, Value int }

func (m CellSet) Apply(s structure.Structure) {
	as[*structure.Matrix](m, s).Set(m.Row, m.Col, m.Value)
}

func (m CellSet) String() string {
	return fmt.Sprintf("set (%d,%d) = %d", m.Row, m.Col, m.Value)
}

// ListPushFront links a new head node holding Value.
type ListPushFront struct{ Value int }

func (m ListPushFront) Apply(s structure.Structure) {
	as[*structure.LinkedList](m, s).PushFront(m.Value)
}

func (m ListPushFront) String() string {
	return fmt.Sprintf("link %d at head", m.Value)
}

// ListPushBack links a new tail node holding Value.
type ListPushBack struct{ Value int }

func (m ListPushBack) Apply(s structure.Structure) {
	as[*structure.LinkedList](m, s).PushBack(m.Value)
}

func (m ListPushBack) String() string {
	return fmt.Sprintf("link %d at tail", m.Value)
}

// ListDelete unlinks the node at position Index.
type ListDelete struct{ Index int }

func (m ListDelete) Apply(s structure.Structure) {
	as[*structure.LinkedList](m, s).DeleteAt(m.Index)
}

func (m ListDelete) String() string {
	return fmt.Sprintf("unlink node at %d", m.Index)
}

// StackPush pushes Value.
type StackPush struct{ Value int }

func (m StackPush) Apply(s structure.Structure) {
	as[*structure.Stack](m, s).Push(m.Value)
}

func (m StackPush) String() string {
	return fmt.Sprintf("push %d", m.Value)
}

// StackPop removes the top element.
type StackPop struct{}

func (m StackPop) Apply(s structure.Structure) {
	as[*structure.Stack](m, s).Pop()
}

func (m StackPop) String() string {
	return "pop"
}

// QueueEnqueue appends Value at the rear.
type QueueEnqueue struct{ Value int }

func (m QueueEnqueue) Apply(s structure.Structure) {
	as[*structure.Queue](m, s).Enqueue(m.Value)
}

func (m QueueEnqueue) String() string {
	return fmt.Sprintf("enqueue %d", m.Value)
}

// QueueDequeue removes the front element.
type QueueDequeue struct{}

func (m QueueDequeue) Apply(s structure.Structure) {
	as[*structure.Queue](m, s).Dequeue()
}

func (m QueueDequeue) String() string {
	return "dequeue"
}

// TreeInsert attaches Value as a new search-tree leaf.
type TreeInsert struct{ Value int }

func (m TreeInsert) Apply(s structure.Structure) {
	as[*structure.Tree](m, s).Insert(m.Value)
}

func (m TreeInsert) String() string {
	return fmt.Sprintf("attach %d", m.Value)
}

// HashPut stores Key→Value, updating in place or chaining.
type HashPut struct{ Key, Value string }

func (m HashPut) Apply(s structure.Structure) {
	as[*structure.HashTable](m, s).Put(m.Key, m.Value)
}

func (m HashPut) String() string {
	return fmt.Sprintf("put %q -> %q", m.Key, m.Value)
}

// HashDelete removes Key from its bucket.
type HashDelete struct{ Key string }

func (m HashDelete) Apply(s structure.Structure) {
	as[*structure.HashTable](m, s).Delete(m.Key)
}

func (m HashDelete) String() string {
	return fmt.Sprintf("remove %q", m.Key)
}
