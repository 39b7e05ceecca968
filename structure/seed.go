package structure

import "fmt"

// Seed returns a fresh instance of the fixed seed state for kind.
func Seed(kind Kind) Structure {
	switch kind {
	case KindArray:
		return NewArray(5, 2, 8, 1, 9, 3)
	case KindString:
		return NewText("HELLO")
	case KindLinkedList:
		return NewLinkedList(10, 20, 30)
	case KindStack:
		return NewStack(1, 2, 3, 4)
	case KindQueue:
		return NewQueue(1, 2, 3, 4)
	case KindMatrix:
		return NewMatrix([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	case KindTree:
		return NewTree(50, 30, 70, 20, 40, 60, 80)
	case KindGraph:
		return seedGraph()
	case KindHashTable:
		return seedHashTable()
	default:
		panic(fmt.Sprintf("structure: no seed for kind %q", kind))
	}
}

func seedGraph() *Graph {
	g := NewGraph()
	for _, n := range []GraphNode{
		{ID: "A", X: 100, Y: 100},
		{ID: "B", X: 200, Y: 50},
		{ID: "C", X: 300, Y: 100},
		{ID: "D", X: 150, Y: 200},
		{ID: "E", X: 250, Y: 200},
	} {
		must(g.AddNode(n.ID, n.X, n.Y))
	}
	for _, e := range []Edge{
		{"A", "B"}, {"A", "D"}, {"B", "C"}, {"B", "E"}, {"C", "E"}, {"D", "E"},
	} {
		must(g.AddEdge(e.From, e.To))
	}

	return g
}

func seedHashTable() *HashTable {
	h := NewHashTable()
	h.Put("apple", "🍎")
	h.Put("banana", "🍌")
	h.Put("orange", "🍊")

	return h
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
