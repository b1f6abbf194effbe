// Command csstree-bench builds a Cache-Sensitive Search Tree and a
// conventional pointer-based red-black tree over the same sorted key set
// and compares their lookup throughput, the way Rao & Ross's original paper
// frames a CSS-Tree: not as a replacement algorithm in isolation, but as a
// cache-conscious alternative to the pointer-chasing search structures
// already in wide use.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"slices"
	"sync/atomic"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"

	"csstree/pkg/csstree"
	"csstree/pkg/util"
)

func main() {
	n := flag.Int("n", 1_000_000, "number of keys to build the trees with")
	nodeSize := flag.Int("node-size", 64, "CSS-Tree node size in bytes (e.g. a cache line)")
	lookups := flag.Int("lookups", 200_000, "number of lookups to time per structure")
	flag.Parse()

	keys := generateSortedKeys(*n)
	fmt.Printf("built %d unique sorted uint32 keys\n", len(keys))

	tree, err := csstree.New(keys, *nodeSize)
	util.PanicIfErr(err)
	fmt.Printf(
		"css-tree: height=%d internal_bytes=%d fanout_node_size=%d\n",
		tree.Height(), tree.SizeInBytes(), *nodeSize,
	)

	rb := redblacktree.NewWith(func(a, b any) int {
		x, y := a.(uint32), b.(uint32)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	})
	for _, k := range keys {
		rb.Put(k, struct{}{})
	}
	fmt.Printf("red-black tree: size=%d\n", rb.Size())

	probe := make([]uint32, *lookups)
	for i := range probe {
		probe[i] = keys[rand.Intn(len(keys))]
	}

	cssElapsed := timeLookups(len(probe), "css-tree", func(done *atomic.Uint64) {
		for _, k := range probe {
			if tree.Find(k) == tree.End() {
				panic("css-tree: expected key not found")
			}
			done.Add(1)
		}
	})

	rbElapsed := timeLookups(len(probe), "red-black tree", func(done *atomic.Uint64) {
		for _, k := range probe {
			if _, found := rb.Get(k); !found {
				panic("red-black tree: expected key not found")
			}
			done.Add(1)
		}
	})

	fmt.Printf(
		"css-tree: %d lookups in %s (%.0f lookups/sec)\n",
		len(probe), cssElapsed, float64(len(probe))/cssElapsed.Seconds(),
	)
	fmt.Printf(
		"red-black tree: %d lookups in %s (%.0f lookups/sec)\n",
		len(probe), rbElapsed, float64(len(probe))/rbElapsed.Seconds(),
	)
}

// generateSortedKeys returns n unique random uint32 keys in sorted order,
// matching scenario S5 of the spec ("random-then-sorted keys").
func generateSortedKeys(n int) []uint32 {
	seen := make(map[uint32]struct{}, n)
	keys := make([]uint32, 0, n)
	for len(keys) < n {
		k := rand.Uint32()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// timeLookups runs work, printing throughput once a second via
// util.SetInterval, and returns the total elapsed time.
func timeLookups(total int, label string, work func(done *atomic.Uint64)) time.Duration {
	var done atomic.Uint64
	stop := util.SetInterval(func(start, now time.Time) {
		sec := now.Sub(start).Seconds()
		if sec == 0 {
			return
		}
		fmt.Printf("%s: %d/%d lookups, %.0f lookups/sec\n", label, done.Load(), total, float64(done.Load())/sec)
	}, time.Second)

	start := time.Now()
	work(&done)
	elapsed := time.Since(start)
	stop()
	return elapsed
}
