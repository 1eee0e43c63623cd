package stats

import "testing"
import "github.com/stretchr/testify/assert"

func TestSeededRandRepeats(x *testing.T) {
	t := assert.New(x)
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 10; i++ {
		t.Equal(a.Intn(1000), b.Intn(1000))
	}
	t.NotNil(NewRand(0))
}

func TestSample(x *testing.T) {
	t := assert.New(x)
	rng := NewRand(7)
	s := Sample(rng, 5, 20)
	t.Len(s, 5)
	seen := make(map[int]bool)
	for _, i := range s {
		t.False(seen[i], "%d sampled twice", i)
		seen[i] = true
		t.True(i >= 0 && i < 20)
	}
	t.Equal([]int{0, 1, 2}, Sample(rng, 10, 3))
	t.Equal(Sample(NewRand(3), 4, 50), Sample(NewRand(3), 4, 50))
}
