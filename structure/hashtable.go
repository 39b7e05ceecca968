package structure

import (
	"fmt"
	"slices"
	"strings"
)

// BucketCount is the fixed number of buckets in every HashTable.
const BucketCount = 7

// Hash sums the code points of key and reduces the sum modulo BucketCount.
// Placement depends on it, so the formula is part of the observable contract.
func Hash(key string) int {
	sum := 0
	for _, r := range key {
		sum += int(r)
	}

	return sum % BucketCount
}

// Entry is one key/value pair stored in a bucket.
type Entry struct {
	Key   string
	Value string
}

// HashTable maps string keys to string values using separate chaining.
type HashTable struct {
	buckets [BucketCount][]Entry
}

// NewHashTable returns a table with BucketCount empty buckets.
func NewHashTable() *HashTable { return &HashTable{} }

// Kind implements Structure.
func (h *HashTable) Kind() Kind { return KindHashTable }

// Bucket returns a copy of the chain at index i.
func (h *HashTable) Bucket(i int) []Entry {
	mustIndex("bucket", i, BucketCount)

	return slices.Clone(h.buckets[i])
}

// Len returns the number of stored entries.
func (h *HashTable) Len() int {
	n := 0
	for _, b := range h.buckets {
		n += len(b)
	}

	return n
}

// find returns the chain position of key inside its bucket, or -1.
func (h *HashTable) find(key string) (bucket, pos int) {
	bucket = Hash(key)
	for i, e := range h.buckets[bucket] {
		if e.Key == key {
			return bucket, i
		}
	}

	return bucket, -1
}

// Put stores value under key. An existing equal key is updated in place;
// otherwise the pair is appended to the chain. It reports whether an
// existing entry was updated.
func (h *HashTable) Put(key, value string) bool {
	b, pos := h.find(key)
	if pos >= 0 {
		h.buckets[b][pos].Value = value
		return true
	}
	h.buckets[b] = append(h.buckets[b], Entry{Key: key, Value: value})

	return false
}

// Get looks key up in its bucket only.
func (h *HashTable) Get(key string) (string, bool) {
	b, pos := h.find(key)
	if pos < 0 {
		return "", false
	}

	return h.buckets[b][pos].Value, true
}

// Delete removes key from its bucket and reports whether it was present.
func (h *HashTable) Delete(key string) bool {
	b, pos := h.find(key)
	if pos < 0 {
		return false
	}
	h.buckets[b] = slices.Delete(h.buckets[b], pos, pos+1)

	return true
}

// Clone implements Structure.
func (h *HashTable) Clone() Structure {
	c := &HashTable{}
	for i, b := range h.buckets {
		c.buckets[i] = slices.Clone(b)
	}

	return c
}

// Equal implements Structure. Chain order takes part in the comparison.
func (h *HashTable) Equal(other Structure) bool {
	o, ok := other.(*HashTable)
	if !ok {
		return false
	}
	for i := range h.buckets {
		if !slices.Equal(h.buckets[i], o.buckets[i]) {
			return false
		}
	}

	return true
}

func (h *HashTable) String() string {
	parts := make([]string, 0, BucketCount)
	for i, b := range h.buckets {
		chain := make([]string, len(b))
		for j, e := range b {
			chain[j] = e.Key + ":" + e.Value
		}
		parts = append(parts, fmt.Sprintf("%d[%s]", i, strings.Join(chain, ",")))
	}

	return strings.Join(parts, " ")
}
