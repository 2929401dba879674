package problemgen

import (
	"math/rand/v2"
	"slices"
)

// maxRedraws bounds the attempts to avoid a recently seen fact.
const maxRedraws = 5

// Generator draws facts. It is not safe for concurrent use.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	recent []Fact
}

// NewGenerator creates a generator. A nil src seeds from the runtime's
// random source.
func NewGenerator(cfg Config, src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{cfg: cfg.normalized(), rng: rand.New(src)}
}

// Next draws the next fact. struggling lists the numbers the learner is
// struggling with; a share of draws set by StruggleBias involves one of
// them. Facts in the recent window are redrawn a few times before being
// accepted anyway, since small ranges may have nothing else to offer.
func (g *Generator) Next(struggling []int) Fact {
	var f Fact
	for range maxRedraws + 1 {
		f = g.draw(struggling)
		if !g.seenRecently(f) {
			break
		}
	}
	g.remember(f)
	return f
}

func (g *Generator) draw(struggling []int) Fact {
	if g.cfg.Advanced && g.rng.Float64() < advancedShare {
		return g.orient(11, g.between(10, 99))
	}
	if len(struggling) > 0 && g.rng.Float64() < g.cfg.StruggleBias {
		n := struggling[g.rng.IntN(len(struggling))]
		if n > g.cfg.MaxFactor && n >= 10 && n <= 99 {
			return g.orient(11, n)
		}
		return g.orient(n, g.between(1, g.cfg.MaxFactor))
	}
	return Fact{A: g.between(1, g.cfg.MaxFactor), B: g.between(1, g.cfg.MaxFactor)}
}

// orient puts n on a random side.
func (g *Generator) orient(n, other int) Fact {
	if g.rng.IntN(2) == 0 {
		return Fact{A: n, B: other}
	}
	return Fact{A: other, B: n}
}

// between returns a uniform integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) seenRecently(f Fact) bool {
	return slices.Contains(g.recent, f.Key())
}

func (g *Generator) remember(f Fact) {
	if g.cfg.RecentWindow == 0 {
		return
	}
	g.recent = append(g.recent, f.Key())
	if len(g.recent) > g.cfg.RecentWindow {
		g.recent = g.recent[len(g.recent)-g.cfg.RecentWindow:]
	}
}
