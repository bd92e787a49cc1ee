package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestRNGSeedRestartsSequence(t *testing.T) {
	r := NewRNG(3)
	first := []int{r.IntN(1 << 20), r.IntN(1 << 20), r.IntN(1 << 20)}
	r.Seed(3)
	for i, want := range first {
		if got := r.IntN(1 << 20); got != want {
			t.Fatalf("draw %d after reseed = %d, want %d", i, got, want)
		}
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if got := r.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := r.IntN(-5); got != 0 {
		t.Fatalf("IntN(-5) = %d, want 0", got)
	}
}

func TestNewSeed(t *testing.T) {
	if _, err := NewSeed(); err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
}
