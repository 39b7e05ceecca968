package structure

import (
	"fmt"
	"slices"
)

// Array is an ordered sequence of integers with 0-based contiguous indices.
type Array struct {
	items []int
}

// NewArray builds an Array holding a copy of values.
func NewArray(values ...int) *Array {
	return &Array{items: slices.Clone(values)}
}

// Kind implements Structure.
func (a *Array) Kind() Kind { return KindArray }

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.items) }

// At returns the element at index i.
func (a *Array) At(i int) int {
	mustIndex("array", i, len(a.items))

	return a.items[i]
}

// Values returns a copy of the elements in storage order.
func (a *Array) Values() []int { return slices.Clone(a.items) }

// Insert places v at index i, shifting later elements right. i may equal Len.
func (a *Array) Insert(i, v int) {
	mustInsertIndex("array", i, len(a.items))
	a.items = slices.Insert(a.items, i, v)
}

// Delete removes and returns the element at index i.
func (a *Array) Delete(i int) int {
	mustIndex("array", i, len(a.items))
	v := a.items[i]
	a.items = slices.Delete(a.items, i, i+1)

	return v
}

// Set overwrites the element at index i.
func (a *Array) Set(i, v int) {
	mustIndex("array", i, len(a.items))
	a.items[i] = v
}

// Clone implements Structure.
func (a *Array) Clone() Structure { return NewArray(a.items...) }

// Equal implements Structure.
func (a *Array) Equal(other Structure) bool {
	o, ok := other.(*Array)

	return ok && equalInts(a.items, o.items)
}

func (a *Array) String() string { return fmt.Sprint(a.items) }
