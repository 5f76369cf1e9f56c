package hashkv

import (
	"math/big"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

const (
	// DefaultBase is the polynomial base used when a strategy leaves Base unset.
	DefaultBase = 31

	// ResistantBase and ResistantModulus parameterize CollisionResistant.
	ResistantBase    = 257
	ResistantModulus = 1_000_000_007

	djb2Seed = 5381
)

// Hasher maps a key to a Digest. Character codes are the Unicode code points
// of the key's runes; invalid UTF-8 bytes count as U+FFFD.
type Hasher interface {
	Hash(key string) Digest
}

// HasherFunc adapts a plain function to the Hasher interface.
type HasherFunc func(key string) Digest

func (f HasherFunc) Hash(key string) Digest {
	return f(key)
}

// Polynomial is the unbounded power-weighted sum
//
//	digest = Σ code(key[i]) * Base^i
//
// computed left to right with a running power. Nothing is reduced along the
// way, so the digest of a long key can be very large.
type Polynomial struct {
	Base uint64
}

func (p Polynomial) Hash(key string) Digest {
	base := p.Base
	if base == 0 {
		base = DefaultBase
	}

	var (
		h     = new(big.Int)
		power = big.NewInt(1)
		b     = new(big.Int).SetUint64(base)
		term  = new(big.Int)
	)
	for _, r := range key {
		term.SetInt64(int64(r))
		term.Mul(term, power)
		h.Add(h, term)
		power.Mul(power, b)
	}
	return Digest{n: h}
}

// ModPolynomial accumulates h = (h*Base + code) mod Modulus at every step, so
// the digest stays bounded. A zero Modulus reduces modulo 2^64, which is the
// 64-bit masked form of the same accumulation.
type ModPolynomial struct {
	Base    uint64
	Modulus uint64
}

func (p ModPolynomial) Hash(key string) Digest {
	base := p.Base
	if base == 0 {
		base = DefaultBase
	}

	var h uint64
	for _, r := range key {
		h = mulAddMod(h, base, uint64(r), p.Modulus)
	}
	return DigestFromUint64(h)
}

// mulAddMod returns (h*base + c) mod m without overflow. m == 0 means 2^64.
func mulAddMod(h, base, c, m uint64) uint64 {
	if m == 0 {
		return h*base + c
	}
	hi, lo := bits.Mul64(h, base)
	_, r := bits.Div64(hi%m, lo, m)
	s, carry := bits.Add64(r, c%m, 0)
	if carry != 0 || s >= m {
		s -= m
	}
	return s
}

// PrefixSum is a deliberately weak strategy: the sum of the first N character
// codes, optionally reduced by Modulus. Keys shorter than N sum what they
// have and the empty key hashes to 0. N <= 0 is treated as 1.
type PrefixSum struct {
	N       int
	Modulus uint64
}

func (p PrefixSum) Hash(key string) Digest {
	n := p.N
	if n <= 0 {
		n = 1
	}

	var sum uint64
	for _, r := range key {
		if n == 0 {
			break
		}
		sum += uint64(r)
		n--
	}
	if p.Modulus != 0 {
		sum %= p.Modulus
	}
	return DigestFromUint64(sum)
}

// DJB2 is the multiplicative XOR mix h = h*33 ^ code seeded at 5381.
type DJB2 struct{}

func (DJB2) Hash(key string) Digest {
	h := uint64(djb2Seed)
	for _, r := range key {
		h = h*33 ^ uint64(r)
	}
	return DigestFromUint64(h)
}

// XXHash hashes the key's bytes with xxHash64.
type XXHash struct{}

func (XXHash) Hash(key string) Digest {
	return DigestFromUint64(xxhash.Sum64String(key))
}

// SimpleHash is the default table hasher: Polynomial with base 31.
func SimpleHash() Hasher {
	return Polynomial{Base: DefaultBase}
}

// CollisionResistant is the bounded base-257 accumulation modulo 1e9+7.
func CollisionResistant() Hasher {
	return ModPolynomial{Base: ResistantBase, Modulus: ResistantModulus}
}

// CollideHash sums the first two character codes modulo 50. Keys sharing
// their first two characters always collide.
func CollideHash() Hasher {
	return PrefixSum{N: 2, Modulus: 50}
}

// FirstChar hashes a key to the code of its first character (0 when empty).
func FirstChar() Hasher {
	return PrefixSum{N: 1}
}
