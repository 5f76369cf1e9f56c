package hashkv

import (
	"fmt"
	"sort"
)

// Distribution records how one strategy spreads a key set over a chained
// table.
type Distribution struct {
	Strategy     string
	Size         int
	Buckets      []int // chain length per bucket
	Collisions   int
	LongestChain int
	Used         int
}

// Distribute inserts keys into a fresh chained table of size buckets hashed
// with h and reports the resulting bucket lengths. Duplicate keys count once.
func Distribute(h Hasher, size int, keys []string) (Distribution, error) {
	t, err := NewChained[struct{}](size, WithHasher(h))
	if err != nil {
		return Distribution{}, err
	}
	for _, k := range keys {
		t.Insert(k, struct{}{})
	}

	st := t.Stats()
	d := Distribution{
		Size:         size,
		Buckets:      make([]int, size),
		Collisions:   st.Collisions,
		LongestChain: st.LongestChain,
		Used:         st.Used,
	}
	for i := range t.buckets {
		d.Buckets[i] = len(t.buckets[i])
	}
	return d, nil
}

// Compare runs Distribute for every named strategy, returning results sorted
// by name.
func Compare(size int, keys []string, strategies map[string]Hasher) ([]Distribution, error) {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Distribution, 0, len(names))
	for _, name := range names {
		d, err := Distribute(strategies[name], size, keys)
		if err != nil {
			return nil, fmt.Errorf("strategy %s: %w", name, err)
		}
		d.Strategy = name
		out = append(out, d)
	}
	return out, nil
}

// DefaultStrategies pairs the weak first-character hash with stronger mixes
// for side-by-side comparison.
func DefaultStrategies() map[string]Hasher {
	return map[string]Hasher{
		"first-char": FirstChar(),
		"djb2":       DJB2{},
		"polynomial": SimpleHash(),
		"xxhash":     XXHash{},
	}
}
