package hashkv

import "fmt"

// Entry is a stored key/value pair. Tables hold entries by value.
type Entry[V any] struct {
	Key   string
	Value V
}

func (e Entry[V]) String() string {
	return fmt.Sprintf("(%q, %v)", e.Key, e.Value)
}

// Outcome tags the result of an insert.
type Outcome int

const (
	// Rejected means nothing was stored. It accompanies ErrTableFull.
	Rejected Outcome = iota
	// Inserted means a new entry went into an empty bucket or its home slot.
	Inserted
	// Collided means a new entry was stored but its home bucket or slot was
	// already taken.
	Collided
	// Updated means the key was present and its value was replaced in place.
	Updated
)

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Inserted:
		return "inserted"
	case Collided:
		return "collided"
	case Updated:
		return "updated"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Stored reports whether the insert left the value in the table.
func (o Outcome) Stored() bool {
	return o != Rejected
}

// Stats summarizes how entries are spread over a table.
type Stats struct {
	Size    int // buckets or slots
	Entries int
	Used    int // non-empty buckets, or occupied slots

	// Collisions counts entries not alone in their bucket beyond the first
	// (chained) or stored away from their home slot (probing).
	Collisions int

	LongestChain int // chained only
	MaxProbes    int // probing only: slots visited to reach the farthest entry
	Tombstones   int // probing only

	LoadFactor float64
}

func loadFactor(entries, size int) float64 {
	return float64(entries) / float64(size)
}

type config struct {
	hasher Hasher
}

// Option configures a table at construction.
type Option func(*config)

// WithHasher sets the strategy a table hashes keys with. A nil Hasher keeps
// the default SimpleHash.
func WithHasher(h Hasher) Option {
	return func(c *config) {
		if h != nil {
			c.hasher = h
		}
	}
}

func newConfig(size int, opts []Option) (config, error) {
	if size <= 0 {
		return config{}, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	c := config{hasher: SimpleHash()}
	for _, opt := range opts {
		opt(&c)
	}
	return c, nil
}
