package structure

import (
	"fmt"
	"slices"
)

// Queue is a FIFO sequence; index 0 is the front.
type Queue struct {
	items []int
}

// NewQueue builds a Queue with values enqueued in order.
func NewQueue(values ...int) *Queue {
	return &Queue{items: slices.Clone(values)}
}

// Kind implements Structure.
func (q *Queue) Kind() Kind { return KindQueue }

// Len returns the number of elements.
func (q *Queue) Len() int { return len(q.items) }

// Values returns a copy of the elements front to rear.
func (q *Queue) Values() []int { return slices.Clone(q.items) }

// Enqueue appends v at the rear.
func (q *Queue) Enqueue(v int) { q.items = append(q.items, v) }

// Dequeue removes and returns the front element.
func (q *Queue) Dequeue() int {
	mustNotEmpty("queue", len(q.items))
	front := q.items[0]
	q.items = slices.Delete(q.items, 0, 1)

	return front
}

// Front returns the front element and whether one exists.
func (q *Queue) Front() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}

	return q.items[0], true
}

// Rear returns the rear element and whether one exists.
func (q *Queue) Rear() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}

	return q.items[len(q.items)-1], true
}

// Clone implements Structure.
func (q *Queue) Clone() Structure { return NewQueue(q.items...) }

// Equal implements Structure.
func (q *Queue) Equal(other Structure) bool {
	o, ok := other.(*Queue)

	return ok && equalInts(q.items, o.items)
}

func (q *Queue) String() string { return fmt.Sprint(q.items) }
