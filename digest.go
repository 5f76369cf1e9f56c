package hashkv

import (
	"fmt"
	"math/big"
)

var mask64 = new(big.Int).SetUint64(^uint64(0))

// Digest is the raw output of a Hasher before it is reduced to a table index.
// It is arbitrary precision, so unbounded accumulation never overflows.
// The zero value is a digest of 0.
type Digest struct {
	n *big.Int
}

// DigestFromUint64 returns the digest with value v
func DigestFromUint64(v uint64) Digest {
	return Digest{n: new(big.Int).SetUint64(v)}
}

// DigestFromInt64 returns the digest with value v, which may be negative
func DigestFromInt64(v int64) Digest {
	return Digest{n: big.NewInt(v)}
}

// DigestFromBig returns a digest holding a copy of v
func DigestFromBig(v *big.Int) Digest {
	return Digest{n: new(big.Int).Set(v)}
}

func (d Digest) value() *big.Int {
	if d.n == nil {
		return new(big.Int)
	}
	return d.n
}

// Index reduces the digest into [0, size). Negative and oversized digests
// are normalized with a Euclidean modulus.
func (d Digest) Index(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return d.index(size), nil
}

// index assumes size > 0
func (d Digest) index(size int) int {
	v := d.value()
	if v.IsUint64() {
		return int(v.Uint64() % uint64(size))
	}
	return int(new(big.Int).Mod(v, big.NewInt(int64(size))).Int64())
}

// Uint64 returns the low 64 bits of the digest in two's complement.
func (d Digest) Uint64() uint64 {
	v := d.value()
	if v.IsUint64() {
		return v.Uint64()
	}
	return new(big.Int).And(v, mask64).Uint64()
}

// Hex is the 64-bit masked view of the digest as 16 lowercase hex digits.
func (d Digest) Hex() string {
	return fmt.Sprintf("%016x", d.Uint64())
}

// String returns the full digest in decimal.
func (d Digest) String() string {
	return d.value().String()
}

// Big returns a copy of the digest as a big.Int.
func (d Digest) Big() *big.Int {
	return new(big.Int).Set(d.value())
}

func (d Digest) Sign() int {
	return d.value().Sign()
}

// Cmp compares two digests numerically and returns -1, 0 or +1.
func (d Digest) Cmp(o Digest) int {
	return d.value().Cmp(o.value())
}

// Fingerprint is everything a caller needs to show or record about where a
// key lands in a table of a given size.
type Fingerprint struct {
	RawHash   string `json:"raw_hash"`
	HexHash   string `json:"hex_hash"`
	Index     int    `json:"index"`
	TableSize int    `json:"table_size"`
}

// FingerprintOf hashes key with h and reduces it for a table of size slots.
func FingerprintOf(h Hasher, key string, size int) (Fingerprint, error) {
	d := h.Hash(key)
	idx, err := d.Index(size)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint{
		RawHash:   d.String(),
		HexHash:   d.Hex(),
		Index:     idx,
		TableSize: size,
	}, nil
}
