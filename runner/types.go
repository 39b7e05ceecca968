package runner

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/structure"
)

var (
	// ErrUnsupportedOperation indicates the operation is not defined for the
	// requested structure kind.
	ErrUnsupportedOperation = errors.New("runner: operation not supported")

	// ErrKindMismatch indicates the structure handed to Run is not of the
	// kind named by the request.
	ErrKindMismatch = errors.New("runner: structure kind mismatch")
)

// Op names an operation.
type Op string

const (
	OpSearch     Op = "search"
	OpInsert     Op = "insert"
	OpDelete     Op = "delete"
	OpUpdate     Op = "update"
	OpInsertHead Op = "insert-head"
	OpInsertTail Op = "insert-tail"
	OpPush       Op = "push"
	OpPop        Op = "pop"
	OpEnqueue    Op = "enqueue"
	OpDequeue    Op = "dequeue"
	OpInOrder    Op = "inorder"
	OpPreOrder   Op = "preorder"
	OpPostOrder  Op = "postorder"
	OpDFS        Op = "dfs"
	OpBFS        Op = "bfs"
)

var supported = map[structure.Kind][]Op{
	structure.KindArray:      {OpSearch, OpInsert, OpDelete, OpUpdate},
	structure.KindString:     {OpSearch, OpInsert, OpDelete, OpUpdate},
	structure.KindMatrix:     {OpSearch, OpUpdate},
	structure.KindLinkedList: {OpInsertHead, OpInsertTail, OpDelete},
	structure.KindStack:      {OpPush, OpPop},
	structure.KindQueue:      {OpEnqueue, OpDequeue},
	structure.KindTree:       {OpSearch, OpInsert, OpInOrder, OpPreOrder, OpPostOrder},
	structure.KindGraph:      {OpDFS, OpBFS},
	structure.KindHashTable:  {OpInsert, OpSearch, OpDelete},
}

// Operations lists the operations kind supports, in display order.
func Operations(kind structure.Kind) []Op {
	return slices.Clone(supported[kind])
}

// Supports reports whether kind defines op.
func Supports(kind structure.Kind, op Op) bool {
	return slices.Contains(supported[kind], op)
}

// Mutating reports whether op may change the structure it runs on.
func (op Op) Mutating() bool {
	switch op {
	case OpInsert, OpDelete, OpUpdate, OpInsertHead, OpInsertTail,
		OpPush, OpPop, OpEnqueue, OpDequeue:
		return true
	default:
		return false
	}
}

// Params carries the pre-validated operands of a request. Each operation
// reads only the fields it needs.
type Params struct {
	Value int    // numeric operand: search target, inserted or new value
	Index int    // position for array, string and linked-list edits
	Row   int    // matrix row
	Col   int    // matrix column
	Char  rune   // string operand
	Key   string // hash-table key
	Entry string // hash-table value for insert
	Start string // graph start node; empty means the first declared node
	Depth int    // graph walk depth limit in edges; 0 means unlimited
}

// Request asks for op to be run on a structure of Kind.
type Request struct {
	Kind   structure.Kind
	Op     Op
	Params Params
}

func (r Request) String() string { return fmt.Sprintf("%s %s", r.Kind, r.Op) }
