/*
Package hashkv provides small fixed-size key-value tables built on pluggable
string hash functions, with two collision strategies: separate chaining and
linear probing.

Basic usage:

	import "github.com/theflywheel/hashkv"

	// Chained table with 7 buckets and the default base-31 polynomial hash
	open, err := hashkv.NewChained[string](7)
	if err != nil {
		log.Fatal(err)
	}
	open.Insert("Ana", "valor_Ana")
	v, ok := open.Get("Ana")

	// Linear probing table with a bounded hash
	closed, err := hashkv.NewProbing[int](7, hashkv.WithHasher(hashkv.CollisionResistant()))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := closed.Insert("Ana", 1); errors.Is(err, hashkv.ErrTableFull) {
		// every slot is taken
	}

Hash strategies:

  - Polynomial: unbounded Σ code(key[i]) * p^i, arbitrary precision
  - ModPolynomial: h = (h*p + code) mod M at every step; M = 0 wraps at 2^64
  - PrefixSum: sum of the first N codes, weak on purpose for collision demos
  - DJB2: h = h*33 ^ code seeded at 5381
  - XXHash: xxHash64 over the key bytes

Every strategy returns a Digest, which reduces to an index in [0, size) with
a Euclidean modulus, so negative or oversized digests always land in range.

Implementation Details:

ChainedTable keeps one slice of entries per bucket in insertion order.
Inserting an existing key replaces its value in place. Buckets grow without
bound and the table never resizes.

ProbingTable keeps one entry per slot with a status of empty, occupied or
deleted. Inserts walk from the home slot to the first free slot, wrapping at
the end, and fail with ErrTableFull after a full cycle. An existing key found
on the way is updated instead. Deletes leave tombstones so lookups only stop
at never-used slots.

Neither table is safe for concurrent use.
*/
package hashkv
