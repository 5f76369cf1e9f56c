package hashkv

import (
	"fmt"
	"strings"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotDeleted // tombstone
)

type slot[V any] struct {
	state slotState
	entry Entry[V]
}

// ProbingTable resolves collisions by linear probing over a fixed array of
// single-entry slots, wrapping at the end. It never resizes; once every slot
// holds a live entry new keys are rejected with ErrTableFull.
//
// Inserting a key that is already present updates it in place wherever the
// probe sequence finds it. Deleted slots become tombstones so later lookups
// keep walking past them; inserts reuse the first tombstone on the path.
//
// A ProbingTable is not safe for concurrent use without external locking.
type ProbingTable[V any] struct {
	hasher     Hasher
	slots      []slot[V]
	count      int
	tombstones int
}

// NewProbing creates a linear probing table with size slots
func NewProbing[V any](size int, opts ...Option) (*ProbingTable[V], error) {
	c, err := newConfig(size, opts)
	if err != nil {
		return nil, err
	}
	return &ProbingTable[V]{
		hasher: c.hasher,
		slots:  make([]slot[V], size),
	}, nil
}

// probe walks the probe sequence for key starting at its home slot. If key
// is present pos is its slot and found is true. Otherwise pos is the first
// reusable slot on the path, or -1 when a full cycle found none. steps is the
// number of slots visited.
func (t *ProbingTable[V]) probe(key string) (home, pos int, found bool, steps int) {
	n := len(t.slots)
	home = t.HomeIndex(key)
	free := -1

	for i := 0; i < n; i++ {
		idx := (home + i) % n
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			if free < 0 {
				free = idx
			}
			return home, free, false, i + 1
		case slotDeleted:
			if free < 0 {
				free = idx
			}
		case slotOccupied:
			if s.entry.Key == key {
				return home, idx, true, i + 1
			}
		}
	}

	return home, free, false, n
}

// Insert stores value under key. It returns Rejected and an error wrapping
// ErrTableFull, leaving the table untouched, when key is absent and no slot
// is free.
func (t *ProbingTable[V]) Insert(key string, value V) (Outcome, error) {
	home, pos, found, _ := t.probe(key)
	if found {
		t.slots[pos].entry.Value = value
		return Updated, nil
	}
	if pos < 0 {
		return Rejected, fmt.Errorf("insert %q: %w", key, ErrTableFull)
	}

	if t.slots[pos].state == slotDeleted {
		t.tombstones--
	}
	t.slots[pos] = slot[V]{
		state: slotOccupied,
		entry: Entry[V]{Key: key, Value: value},
	}
	t.count++

	if pos != home {
		return Collided, nil
	}
	return Inserted, nil
}

// Get retrieves the value stored under key
func (t *ProbingTable[V]) Get(key string) (V, bool) {
	_, pos, found, _ := t.probe(key)
	if !found {
		var v V
		return v, false
	}
	return t.slots[pos].entry.Value, true
}

// Delete removes key, leaving a tombstone in its slot. It reports whether
// anything was removed.
func (t *ProbingTable[V]) Delete(key string) bool {
	_, pos, found, _ := t.probe(key)
	if !found {
		return false
	}

	t.slots[pos] = slot[V]{state: slotDeleted}
	t.count--
	t.tombstones++

	// With no live entries left no probe chain needs the tombstones.
	if t.count == 0 {
		for i := range t.slots {
			t.slots[i].state = slotEmpty
		}
		t.tombstones = 0
	}
	return true
}

// Location describes where a key sits in a ProbingTable.
type Location struct {
	Home   int // slot the key hashes to
	Slot   int // slot the key is stored in
	Probes int // slots visited to reach it, including Slot
}

// Locate finds the slot holding key
func (t *ProbingTable[V]) Locate(key string) (Location, bool) {
	home, pos, found, steps := t.probe(key)
	if !found {
		return Location{Home: home, Slot: -1, Probes: steps}, false
	}
	return Location{Home: home, Slot: pos, Probes: steps}, true
}

// HomeIndex is the slot key hashes to, before probing.
func (t *ProbingTable[V]) HomeIndex(key string) int {
	return t.hasher.Hash(key).index(len(t.slots))
}

// Slot returns the entry in slot i. ok is false for empty slots, tombstones
// and out-of-range indexes.
func (t *ProbingTable[V]) Slot(i int) (e Entry[V], ok bool) {
	if i < 0 || i >= len(t.slots) || t.slots[i].state != slotOccupied {
		return e, false
	}
	return t.slots[i].entry, true
}

// Range calls fn for every live entry in slot order until fn returns false.
func (t *ProbingTable[V]) Range(fn func(key string, value V) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotOccupied {
			continue
		}
		if !fn(s.entry.Key, s.entry.Value) {
			return
		}
	}
}

func (t *ProbingTable[V]) Len() int  { return t.count }
func (t *ProbingTable[V]) Size() int { return len(t.slots) }

// Full reports whether every slot holds a live entry.
func (t *ProbingTable[V]) Full() bool {
	return t.count == len(t.slots)
}

func (t *ProbingTable[V]) Stats() Stats {
	n := len(t.slots)
	s := Stats{
		Size:       n,
		Entries:    t.count,
		Used:       t.count,
		Tombstones: t.tombstones,
	}
	for i := range t.slots {
		if t.slots[i].state != slotOccupied {
			continue
		}
		home := t.HomeIndex(t.slots[i].entry.Key)
		dist := (i - home + n) % n
		if dist > 0 {
			s.Collisions++
		}
		if dist+1 > s.MaxProbes {
			s.MaxProbes = dist + 1
		}
	}
	s.LoadFactor = loadFactor(t.count, n)
	return s
}

// String dumps the table one slot per line:
//
//	0: <empty>
//	1: ("Ana", valor_Ana)
//	2: <deleted>
func (t *ProbingTable[V]) String() string {
	var sb strings.Builder
	for i := range t.slots {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch s := &t.slots[i]; s.state {
		case slotOccupied:
			fmt.Fprintf(&sb, "%d: %s", i, s.entry)
		case slotDeleted:
			fmt.Fprintf(&sb, "%d: <deleted>", i)
		default:
			fmt.Fprintf(&sb, "%d: <empty>", i)
		}
	}
	return sb.String()
}
