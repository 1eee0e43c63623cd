package config

import (
	"math/rand"
	"path/filepath"
)

import (
	"github.com/timtadh/tarm/stats"
	"github.com/timtadh/tarm/stores/ints_ints"
)

type Config struct {
	// Cache holds scratch stores. Empty means they are anonymous mappings.
	Cache  string
	Output string
	// Store is where partitions are saved. Unlike Output it is never
	// cleared.
	Store string
	// Save names the partition the mined state is saved as. Empty means
	// nothing is saved.
	Save string

	MinConf float64
	MaxSize int
	Seed    int64

	// Days is the width of a time bucket.
	Days        int
	WindowLen   int
	Granularity int
	MinSupport  int
}

// Rand is seeded with Seed, or from /dev/urandom when Seed is 0.
func (c *Config) Rand() *rand.Rand {
	return stats.NewRand(c.Seed)
}

func (c *Config) Randstr() string {
	runes := make([]rune, 0, 10)
	for i := 0; i < 10; i++ {
		runes = append(runes, rune(97+rand.Intn(26)))
	}
	return string(runes)
}

func (c *Config) CacheFile(name string) string {
	return filepath.Join(c.Cache, name)
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}

// PartitionFile names the file holding one part (occurrence, rules,
// windows) of a saved partition.
func (c *Config) PartitionFile(partition, part string) string {
	return filepath.Join(c.Store, partition+"-"+part+".bptree")
}

// IntsIntsMultiMap is a scratch store: anonymous when there is no cache
// directory, a uniquely named file in it otherwise.
func (c *Config) IntsIntsMultiMap(name string) (ints_ints.MultiMap, error) {
	if c.Cache == "" {
		return ints_ints.AnonBpTree()
	} else {
		return ints_ints.NewBpTree(c.CacheFile(name + "-" + c.Randstr() + ".bptree"))
	}
}
