// Package structure holds the in-memory models of the nine teaching data
// structures and the pure query/mutation primitives on them.
//
// What:
//
//   - Array      ordered ints, 0-based contiguous indices, duplicates allowed
//   - Text       immutable-per-step rune sequence (every mutation builds a new slice)
//   - LinkedList singly linked nodes with stable ids, one head, no cycles
//   - Stack      LIFO sequence, mutation at the top only
//   - Queue      FIFO sequence, enqueue at the tail, dequeue at the head
//   - Matrix     rectangular int grid with extents fixed at construction
//   - Tree       binary search tree (left < node < right)
//   - Graph      named nodes with layout coordinates, undirected edge list
//   - HashTable  BucketCount chained buckets addressed by Hash
//
// Contract:
//
// Nothing here knows about timing or highlighting. Mutations are confined
// to the receiving instance; Clone returns a deep copy that shares no
// backing storage. Inputs are assumed to be pre-validated by package
// validate: an out-of-domain argument (index beyond length, unknown graph
// node) is a programming error and panics with a "structure:" message.
//
// Seeds:
//
// Seed(kind) returns a fresh instance of the fixed seed state for a kind.
// Seeds are rebuilt on every call, so callers may mutate them freely.
package structure
