package hashkv

import (
	"fmt"
	"slices"
	"strings"
)

// ChainedTable resolves collisions by separate chaining: each of its fixed
// buckets is a slice of entries in insertion order. It never resizes and
// inserts always succeed.
//
// A ChainedTable is not safe for concurrent use without external locking.
type ChainedTable[V any] struct {
	hasher  Hasher
	buckets [][]Entry[V]
	count   int
}

// NewChained creates a chained table with size buckets
func NewChained[V any](size int, opts ...Option) (*ChainedTable[V], error) {
	c, err := newConfig(size, opts)
	if err != nil {
		return nil, err
	}
	return &ChainedTable[V]{
		hasher:  c.hasher,
		buckets: make([][]Entry[V], size),
	}, nil
}

// Insert stores value under key. An existing key has its value replaced in
// place, keeping its position in the bucket; a new key is appended.
func (t *ChainedTable[V]) Insert(key string, value V) Outcome {
	b := t.HomeIndex(key)
	if i := lookup(key, t.buckets[b]); i >= 0 {
		t.buckets[b][i].Value = value
		return Updated
	}

	outcome := Inserted
	if len(t.buckets[b]) > 0 {
		outcome = Collided
	}
	t.buckets[b] = append(t.buckets[b], Entry[V]{Key: key, Value: value})
	t.count++
	return outcome
}

// Get retrieves the value stored under key
func (t *ChainedTable[V]) Get(key string) (V, bool) {
	b := t.HomeIndex(key)
	if i := lookup(key, t.buckets[b]); i >= 0 {
		return t.buckets[b][i].Value, true
	}
	var v V
	return v, false
}

// Delete removes key, keeping the order of the rest of its bucket. It
// reports whether anything was removed.
func (t *ChainedTable[V]) Delete(key string) bool {
	b := t.HomeIndex(key)
	items := t.buckets[b]
	i := lookup(key, items)
	if i < 0 {
		return false
	}
	if len(items) == 1 {
		t.buckets[b] = nil
	} else {
		t.buckets[b] = slices.Delete(items, i, i+1)
	}
	t.count--
	return true
}

// BucketInfo returns key's home index and the current length of that bucket.
func (t *ChainedTable[V]) BucketInfo(key string) (index, length int) {
	index = t.HomeIndex(key)
	return index, len(t.buckets[index])
}

// HomeIndex is the bucket key hashes to.
func (t *ChainedTable[V]) HomeIndex(key string) int {
	return t.hasher.Hash(key).index(len(t.buckets))
}

// Bucket returns a copy of the entries in bucket i, or nil if i is out of
// range.
func (t *ChainedTable[V]) Bucket(i int) []Entry[V] {
	if i < 0 || i >= len(t.buckets) {
		return nil
	}
	return slices.Clone(t.buckets[i])
}

// Range calls fn for every entry, bucket by bucket in insertion order, until
// fn returns false.
func (t *ChainedTable[V]) Range(fn func(key string, value V) bool) {
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			if !fn(e.Key, e.Value) {
				return
			}
		}
	}
}

func (t *ChainedTable[V]) Len() int  { return t.count }
func (t *ChainedTable[V]) Size() int { return len(t.buckets) }

func (t *ChainedTable[V]) Stats() Stats {
	s := Stats{Size: len(t.buckets), Entries: t.count}
	for _, bucket := range t.buckets {
		n := len(bucket)
		if n == 0 {
			continue
		}
		s.Used++
		s.Collisions += n - 1
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	s.LoadFactor = loadFactor(t.count, len(t.buckets))
	return s
}

// String dumps the table one bucket per line:
//
//	0: []
//	1: [("Ana", valor_Ana)]
func (t *ChainedTable[V]) String() string {
	var sb strings.Builder
	for i, bucket := range t.buckets {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d: [", i)
		for j, e := range bucket {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

func lookup[V any](key string, items []Entry[V]) int {
	for i, item := range items {
		if item.Key == key {
			return i
		}
	}
	return -1
}
