package hashkv_test

import "github.com/theflywheel/hashkv"

// constHasher sends every key to the same digest so collisions are forced.
func constHasher(v int64) hashkv.Hasher {
	return hashkv.HasherFunc(func(string) hashkv.Digest {
		return hashkv.DigestFromInt64(v)
	})
}

// mapHasher hashes known keys to fixed digests and everything else to 0.
func mapHasher(m map[string]int64) hashkv.Hasher {
	return hashkv.HasherFunc(func(key string) hashkv.Digest {
		return hashkv.DigestFromInt64(m[key])
	})
}
