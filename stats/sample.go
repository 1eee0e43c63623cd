package stats

import (
	"encoding/binary"
	"math/rand"
	"os"
)

// NewRand returns a generator for the given seed. A zero seed draws one
// from /dev/urandom.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = urandomSeed()
	}
	return rand.New(rand.NewSource(seed))
}

func urandomSeed() int64 {
	urandom, err := os.Open("/dev/urandom")
	if err != nil {
		return 1
	}
	defer urandom.Close()
	seed := make([]byte, 8)
	if _, err := urandom.Read(seed); err != nil {
		return 1
	}
	return int64(binary.BigEndian.Uint64(seed))
}

func Srange(size int) []int {
	sample := make([]int, 0, size)
	for i := 0; i < size; i++ {
		sample = append(sample, i)
	}
	return sample
}

// Sample draws size distinct indices from [0, populationSize) without
// replacement. Asking for more than the population returns all of it.
func Sample(rng *rand.Rand, size, populationSize int) (sample []int) {
	if size >= populationSize {
		return Srange(populationSize)
	}
	pop := func(items []int) ([]int, int) {
		i := rng.Intn(len(items))
		item := items[i]
		copy(items[i:], items[i+1:])
		return items[:len(items)-1], item
	}
	items := Srange(populationSize)
	sample = make([]int, 0, size)
	for i := 0; i < size; i++ {
		var item int
		items, item = pop(items)
		sample = append(sample, item)
	}
	return sample
}
