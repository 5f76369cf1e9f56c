package hashkv_test

import (
	"errors"
	"fmt"

	"github.com/theflywheel/hashkv"
)

func ExampleChainedTable() {
	tbl, _ := hashkv.NewChained[string](7)
	tbl.Insert("Ana", "valor_Ana")
	tbl.Insert("Ana", "otro")

	v, ok := tbl.Get("Ana")
	fmt.Println(v, ok, tbl.Len())
	// Output: otro true 1
}

func ExampleProbingTable() {
	tbl, _ := hashkv.NewProbing[int](2, hashkv.WithHasher(hashkv.FirstChar()))
	fmt.Println(tbl.Insert("Ana", 1))
	fmt.Println(tbl.Insert("Bea", 2))

	_, err := tbl.Insert("Carla", 3)
	fmt.Println(errors.Is(err, hashkv.ErrTableFull))
	// Output:
	// inserted <nil>
	// inserted <nil>
	// true
}

func ExampleFingerprintOf() {
	fp, _ := hashkv.FingerprintOf(hashkv.SimpleHash(), "Ana", 7)
	fmt.Println(fp.RawHash, fp.HexHash, fp.Index)
	// Output: 96692 00000000000179b4 1
}
