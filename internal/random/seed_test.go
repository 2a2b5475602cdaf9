package random

import "testing"

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	if a == b {
		t.Errorf("two seeds are equal: %d", a)
	}
}

func TestNewSameSeedSameStream(t *testing.T) {
	r1, r2 := New(42), New(42)
	for i := 0; i < 100; i++ {
		if x, y := r1.Uint64(), r2.Uint64(); x != y {
			t.Fatalf("streams diverge at %d: %d != %d", i, x, y)
		}
	}
}
