package structure

import "fmt"

// Kind identifies one of the nine supported data-structure families.
type Kind string

// Supported kinds, in catalog order.
const (
	KindArray      Kind = "array"
	KindString     Kind = "string"
	KindLinkedList Kind = "linkedlist"
	KindStack      Kind = "stack"
	KindQueue      Kind = "queue"
	KindMatrix     Kind = "matrix"
	KindTree       Kind = "tree"
	KindGraph      Kind = "graph"
	KindHashTable  Kind = "hashtable"
)

var kinds = []Kind{
	KindArray, KindString, KindLinkedList, KindStack, KindQueue,
	KindMatrix, KindTree, KindGraph, KindHashTable,
}

// Kinds returns every supported kind in catalog order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)

	return out
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}

	return false
}

// ParseKind resolves a user-supplied name to a Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if !k.Valid() {
		return "", fmt.Errorf("structure: unknown kind %q", name)
	}

	return k, nil
}

// Structure is the common surface of every model in this package.
type Structure interface {
	// Kind reports the family of the structure.
	Kind() Kind

	// Clone returns a deep copy sharing no mutable storage with the receiver.
	Clone() Structure

	// Equal reports whether other has the same kind and the same observable content.
	Equal(other Structure) bool

	// String renders the content in a compact single-line form.
	String() string
}

// mustIndex panics unless 0 <= i < n.
func mustIndex(what string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("structure: %s index %d out of range [0,%d)", what, i, n))
	}
}

// mustInsertIndex panics unless 0 <= i <= n.
func mustInsertIndex(what string, i, n int) {
	if i < 0 || i > n {
		panic(fmt.Sprintf("structure: %s insert index %d out of range [0,%d]", what, i, n))
	}
}

// mustNotEmpty panics when a removal is attempted on an empty container.
func mustNotEmpty(what string, n int) {
	if n == 0 {
		panic(fmt.Sprintf("structure: %s is empty", what))
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
