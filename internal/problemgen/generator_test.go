package problemgen

import (
	"math/rand/v2"
	"testing"
)

func seeded() rand.Source { return rand.NewPCG(7, 11) }

func TestGenerator_BasicRange(t *testing.T) {
	g := NewGenerator(Config{MaxFactor: 10}, seeded())
	seen := make(map[int]bool)
	for range 2000 {
		f := g.Next(nil)
		for _, n := range []int{f.A, f.B} {
			if n < 1 || n > 10 {
				t.Fatalf("operand %d outside 1..10 in %v", n, f)
			}
			seen[n] = true
		}
	}
	if len(seen) != 10 {
		t.Errorf("expected every number 1..10 to appear, got %d distinct", len(seen))
	}
}

func TestGenerator_StruggleBiasAlways(t *testing.T) {
	g := NewGenerator(Config{MaxFactor: 10, StruggleBias: 1}, seeded())
	for range 200 {
		f := g.Next([]int{7, 8})
		if !f.Involves(7) && !f.Involves(8) {
			t.Fatalf("fact %v does not involve a struggling number", f)
		}
	}
}

func TestGenerator_StruggleBiasNever(t *testing.T) {
	g := NewGenerator(Config{MaxFactor: 3, StruggleBias: 0}, seeded())
	for range 200 {
		f := g.Next([]int{9})
		if f.Involves(9) {
			t.Fatalf("fact %v drew a struggling number with zero bias", f)
		}
	}
}

func TestGenerator_StrugglingTwoDigitNumber(t *testing.T) {
	g := NewGenerator(Config{MaxFactor: 10, StruggleBias: 1}, seeded())
	f := g.Next([]int{47})
	if f.Key() != (Fact{A: 11, B: 47}) {
		t.Errorf("got %v, want 11 × 47 in either order", f)
	}
}

func TestGenerator_Advanced(t *testing.T) {
	g := NewGenerator(Config{MaxFactor: 10, Advanced: true}, seeded())
	elevens := 0
	for range 1000 {
		f := g.Next(nil)
		if f.Key().B <= 10 {
			continue
		}
		other := f.Product() / 11
		if !f.Involves(11) || other < 10 || other > 99 {
			t.Fatalf("unexpected advanced fact %v", f)
		}
		elevens++
	}
	if elevens == 0 {
		t.Error("advanced mode never drew a two-digit elevens fact")
	}
}

func TestGenerator_AvoidsImmediateRepeats(t *testing.T) {
	g := NewGenerator(DefaultConfig(), seeded())
	prev := g.Next(nil)
	for range 300 {
		f := g.Next(nil)
		if f.Key() == prev.Key() {
			t.Fatalf("fact %v repeated immediately", f)
		}
		prev = f
	}
}

func TestGenerator_SmallRangeStillDraws(t *testing.T) {
	g := NewGenerator(Config{MaxFactor: 1, RecentWindow: 4}, seeded())
	for range 5 {
		if f := g.Next(nil); f != (Fact{A: 1, B: 1}) {
			t.Fatalf("got %v, want 1 × 1", f)
		}
	}
}

func TestConfig_Normalized(t *testing.T) {
	c := Config{MaxFactor: 0, StruggleBias: 1.5, RecentWindow: -1}.normalized()
	if c.MaxFactor != DefaultMaxFactor || c.StruggleBias != 1 || c.RecentWindow != 0 {
		t.Errorf("normalized = %+v", c)
	}
}
