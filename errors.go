package hashkv

import "errors"

var (
	// ErrInvalidSize is returned when a table is constructed, or a digest
	// reduced, with a non-positive size.
	ErrInvalidSize = errors.New("invalid table size")

	// ErrTableFull is returned by ProbingTable.Insert when a full probe cycle
	// finds no free slot. The table is left unchanged.
	ErrTableFull = errors.New("hash table full")
)
