package structure

import (
	"fmt"
	"strings"
)

// NoNode is the Next value of the tail node.
const NoNode = 0

// ListNode is one node of a LinkedList. ID is stable for the node's lifetime
// and is what a renderer highlights.
type ListNode struct {
	ID    int
	Value int
	Next  int // successor ID or NoNode
}

// LinkedList is a singly linked list addressed by node ids.
type LinkedList struct {
	nodes map[int]*ListNode
	head  int
	size  int
}

// NewLinkedList links values in order, assigning ids 1..n.
func NewLinkedList(values ...int) *LinkedList {
	l := &LinkedList{nodes: make(map[int]*ListNode, len(values))}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Kind implements Structure.
func (l *LinkedList) Kind() Kind { return KindLinkedList }

// Len returns the number of reachable nodes.
func (l *LinkedList) Len() int { return l.size }

// Head returns the head node id, or NoNode for an empty list.
func (l *LinkedList) Head() int { return l.head }

// Nodes returns the nodes in list order, walking from the head.
func (l *LinkedList) Nodes() []ListNode {
	out := make([]ListNode, 0, l.size)
	for id := l.head; id != NoNode; id = l.nodes[id].Next {
		out = append(out, *l.nodes[id])
	}

	return out
}

// Values returns the node values in list order.
func (l *LinkedList) Values() []int {
	out := make([]int, 0, l.size)
	for _, n := range l.Nodes() {
		out = append(out, n.Value)
	}

	return out
}

// NodeAt returns the node at position i.
func (l *LinkedList) NodeAt(i int) ListNode {
	mustIndex("linked list", i, l.size)
	id := l.head
	for ; i > 0; i-- {
		id = l.nodes[id].Next
	}

	return *l.nodes[id]
}

// Tail returns the last node. The list must not be empty.
func (l *LinkedList) Tail() ListNode {
	mustNotEmpty("linked list", l.size)

	return l.NodeAt(l.size - 1)
}

// NextID is the id the next pushed node receives: one more than the
// largest id in use, or 1 for an empty list.
func (l *LinkedList) NextID() int {
	top := 0
	for id := range l.nodes {
		top = max(top, id)
	}

	return top + 1
}

// PushFront links a new node before the current head and returns it.
func (l *LinkedList) PushFront(v int) ListNode {
	n := &ListNode{ID: l.NextID(), Value: v, Next: l.head}
	l.nodes[n.ID] = n
	l.head = n.ID
	l.size++

	return *n
}

// PushBack links a new node after the current tail and returns it.
func (l *LinkedList) PushBack(v int) ListNode {
	n := &ListNode{ID: l.NextID(), Value: v, Next: NoNode}
	if l.size == 0 {
		l.head = n.ID
	} else {
		l.nodes[l.Tail().ID].Next = n.ID
	}
	l.nodes[n.ID] = n
	l.size++

	return *n
}

// DeleteAt unlinks the node at position i, relinking its predecessor (if
// any) to its successor, and returns the removed node.
func (l *LinkedList) DeleteAt(i int) ListNode {
	mustIndex("linked list", i, l.size)
	victim := l.NodeAt(i)
	if i == 0 {
		l.head = victim.Next
	} else {
		prev := l.NodeAt(i - 1)
		l.nodes[prev.ID].Next = victim.Next
	}
	delete(l.nodes, victim.ID)
	l.size--

	return victim
}

// Clone implements Structure.
func (l *LinkedList) Clone() Structure {
	c := &LinkedList{nodes: make(map[int]*ListNode, len(l.nodes)), head: l.head, size: l.size}
	for id, n := range l.nodes {
		cp := *n
		c.nodes[id] = &cp
	}

	return c
}

// Equal implements Structure. Node ids take part in the comparison.
func (l *LinkedList) Equal(other Structure) bool {
	o, ok := other.(*LinkedList)
	if !ok || o.size != l.size {
		return false
	}
	a, b := l.Nodes(), o.Nodes()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func (l *LinkedList) String() string {
	var b strings.Builder
	for _, n := range l.Nodes() {
		fmt.Fprintf(&b, "%d -> ", n.Value)
	}
	b.WriteString("null")

	return b.String()
}
