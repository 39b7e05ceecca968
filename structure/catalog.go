package structure

// Info describes a kind for menus and listings.
type Info struct {
	Kind        Kind
	Name        string
	Description string
	Complexity  string
}

var catalog = map[Kind]Info{
	KindArray:      {KindArray, "Arrays", "Linear structure with indexed elements", "O(1) access, O(n) search"},
	KindString:     {KindString, "Strings", "Character sequence manipulation", "O(n) basic operations"},
	KindLinkedList: {KindLinkedList, "Linked Lists", "Dynamic structure of nodes joined by references", "O(1) insert at head, O(n) search"},
	KindStack:      {KindStack, "Stacks", "LIFO (last in, first out)", "O(1) push/pop"},
	KindQueue:      {KindQueue, "Queues", "FIFO (first in, first out)", "O(1) enqueue/dequeue"},
	KindMatrix:     {KindMatrix, "Matrices", "Two-dimensional grid of elements", "O(1) access, O(n²) search"},
	KindTree:       {KindTree, "Trees", "Hierarchy of parent and child nodes", "O(log n) search when balanced"},
	KindGraph:      {KindGraph, "Graphs", "Vertices joined by edges", "O(V + E) traversal"},
	KindHashTable:  {KindHashTable, "Hash Tables", "Key-value mapping with chained buckets", "O(1) average access"},
}

// Catalog lists every kind's description in catalog order.
func Catalog() []Info {
	out := make([]Info, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, catalog[k])
	}

	return out
}

// Describe returns the catalog entry for k.
func Describe(k Kind) (Info, bool) {
	info, ok := catalog[k]

	return info, ok
}
