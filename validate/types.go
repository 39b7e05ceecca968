package validate

import "errors"

var (
	// ErrNotANumber indicates a numeric field could not be parsed.
	ErrNotANumber = errors.New("validate: not a number")

	// ErrIndexOutOfRange indicates a position outside the structure.
	ErrIndexOutOfRange = errors.New("validate: index out of range")

	// ErrEmptyKey indicates a hash-table key was missing.
	ErrEmptyKey = errors.New("validate: key is empty")

	// ErrEmptyValue indicates a required operand was missing.
	ErrEmptyValue = errors.New("validate: value is empty")

	// ErrEmptyStructure indicates an operation that needs an element was
	// requested on an empty structure.
	ErrEmptyStructure = errors.New("validate: structure is empty")

	// ErrUnknownNode indicates a graph start node that is not declared.
	ErrUnknownNode = errors.New("validate: unknown node")

	// ErrBadDepth indicates a graph depth limit below one.
	ErrBadDepth = errors.New("validate: depth must be positive")

	// ErrUnknownOperation indicates an operation the kind does not support.
	ErrUnknownOperation = errors.New("validate: unknown operation")

	// ErrKindMismatch indicates the input names a different kind than the
	// structure it targets, or no known kind at all.
	ErrKindMismatch = errors.New("validate: structure kind mismatch")
)

// Input is an operation request in raw text form. Fields an operation
// does not use are ignored.
type Input struct {
	Kind  string
	Op    string
	Value string // number, or a character for strings
	Index string
	Row   string
	Col   string
	Key   string
	Entry string // hash-table value
	Start string // graph start node
	Depth string // graph depth limit; empty means none
}
