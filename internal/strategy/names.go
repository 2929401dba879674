package strategy

// Name is the canonical identifier of a teaching strategy.
type Name string

const (
	Ones               Name = "ones"
	Tens               Name = "tens"
	Twos               Name = "twos"
	Fives              Name = "fives"
	PureDoubles        Name = "pure_doubles"
	ElevensSimple      Name = "elevens_simple"
	Squares            Name = "squares"
	Nines              Name = "nines"
	NinesDigitSum      Name = "nines_digit_sum"
	NinesFingerTrick   Name = "nines_finger_trick"
	NearDoubles        Name = "near_doubles"
	MemoryTrick        Name = "memory_trick"
	BenchmarkNumbers   Name = "benchmark_numbers"
	BuildingKnownFacts Name = "building_known_facts"
	ElevensAdvanced    Name = "elevens_advanced"

	// Not part of the candidate table.
	VisualArray   Name = "visual_array"
	SkipCounting  Name = "skip_counting"
	Decomposition Name = "decomposition"
)

// Ranks of the strategies that sit outside the candidate table.
const (
	visualArrayRank   = 0
	skipCountingRank  = 11
	decompositionRank = 12
)

// Info describes one entry of the strategy vocabulary.
type Info struct {
	Name     Name
	Rank     int
	Category Category
}

// Vocabulary lists every strategy the engine can return: the candidate
// table in declaration order, then the override and the two fallbacks.
func Vocabulary() []Info {
	out := make([]Info, 0, len(rules)+3)
	for _, r := range rules {
		out = append(out, Info{Name: r.name, Rank: r.rank, Category: Classify(r.name)})
	}
	for _, r := range []rule{visualArrayRule, skipCountingRule, decompositionRule} {
		out = append(out, Info{Name: r.name, Rank: r.rank, Category: Classify(r.name)})
	}
	return out
}

// IsKnown reports whether name is part of the vocabulary.
func IsKnown(name Name) bool {
	for _, info := range Vocabulary() {
		if info.Name == name {
			return true
		}
	}
	return false
}

func displayNameKey(name Name) string {
	return "strategy_name_" + string(name)
}
