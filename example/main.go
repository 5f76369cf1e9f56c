package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/theflywheel/hashkv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}

	var (
		sizeFlag  = flag.Int("size", atoiDefault(os.Getenv("HASHKV_TABLE_SIZE"), 7), "table size")
		outFlag   = flag.String("out", getEnv("HASHKV_OUTPUT", "hash_result.json"), "where to write the user record")
		nameFlag  = flag.String("name", "", "name for the user demo")
		emailFlag = flag.String("email", "", "email for the user demo")
		demoFlag  = flag.String("demo", "all", "demo to run: collisions, user, compare or all")
	)
	flag.Parse()

	run := func(name string) bool { return *demoFlag == "all" || *demoFlag == name }

	if run("collisions") {
		if err := demoCollisions(*sizeFlag); err != nil {
			log.Fatalf("Collision demo failed: %v", err)
		}
	}

	if run("user") && *nameFlag != "" {
		rec, err := NewRecord(*nameFlag, *emailFlag, *sizeFlag)
		if err != nil {
			log.Fatalf("Invalid user input: %v", err)
		}
		fmt.Printf("\nHash generated: %s (hex %s)\n", rec.RawHash, rec.HexHash)
		fmt.Printf("Index %d in a table of size %d\n", rec.Index, rec.TableSize)
		if err := rec.Save(*outFlag); err != nil {
			log.Fatalf("Failed to save record: %v", err)
		}
		log.Printf("Record written to %s", *outFlag)
	}

	if run("compare") {
		if err := demoCompare(*sizeFlag); err != nil {
			log.Fatalf("Compare demo failed: %v", err)
		}
	}

	conclusions()
}

func demoCollisions(size int) error {
	fmt.Println("\n=== Collisions ===")

	keys := []string{"Ana", "Aña", "Anb"}
	h := hashkv.ModPolynomial{Base: hashkv.DefaultBase}

	open, err := hashkv.NewChained[string](size, hashkv.WithHasher(h))
	if err != nil {
		return err
	}
	closed, err := hashkv.NewProbing[string](size, hashkv.WithHasher(h))
	if err != nil {
		return err
	}

	for _, k := range keys {
		open.Insert(k, "valor_"+k)
		if _, err := closed.Insert(k, "valor_"+k); err != nil {
			log.Printf("Probing table rejected %s: %v", k, err)
		}
	}

	fmt.Println("\nOpen hashing (chaining):")
	fmt.Println(open)
	fmt.Println("\nClosed hashing (linear probing):")
	fmt.Println(closed)

	c := hashkv.CollideHash()
	fmt.Printf("\ncollide(cama) = %s, collide(casa) = %s\n", c.Hash("cama"), c.Hash("casa"))
	return nil
}

func demoCompare(size int) error {
	fmt.Println("\n=== Hash quality ===")

	keys := []string{"apple", "avocado", "apricot", "almond", "banana", "blueberry", "cherry", "cranberry"}
	results, err := hashkv.Compare(size, keys, hashkv.DefaultStrategies())
	if err != nil {
		return err
	}
	for _, d := range results {
		fmt.Printf("%-10s buckets=%v used=%d collisions=%d longest=%d\n",
			d.Strategy, d.Buckets, d.Used, d.Collisions, d.LongestChain)
	}
	return nil
}

func conclusions() {
	fmt.Println("\n=== Conclusions ===")
	fmt.Println("- Open hashing keeps colliding keys together in per-bucket lists.")
	fmt.Println("- Closed hashing moves on to the next free slot.")
	fmt.Println("- A good hash function reduces collisions.")
	fmt.Println("- Average cost of both is O(1); many collisions degrade to O(n).")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func atoiDefault(s string, defaultValue int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return defaultValue
}
