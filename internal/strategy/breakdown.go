package strategy

func explainPureDoubles(w *writer, f fact) *Explanation {
	half := f.a / 2
	w.set("half", half).set("part", half*f.b)
	return &Explanation{
		Strategy:  PureDoubles,
		Concept:   w.text("pure_doubles_concept"),
		Steps:     w.steps("pure_doubles_step1", "pure_doubles_step2", "pure_doubles_step3"),
		Pattern:   w.text("pure_doubles_pattern"),
		Mnemonic:  w.text("pure_doubles_mnemonic"),
		RealWorld: w.text("pure_doubles_real_world"),
	}
}

func explainNearDoubles(w *writer, f fact) *Explanation {
	w.set("square", f.a*f.a)
	return &Explanation{
		Strategy: NearDoubles,
		Concept:  w.text("near_doubles_concept"),
		Steps:    w.steps("near_doubles_step1", "near_doubles_step2"),
		Pattern:  w.text("near_doubles_pattern"),
		Mnemonic: w.text("near_doubles_mnemonic"),
	}
}

// explainBenchmarkNumbers steps up from 5 for sixes and sevens and down
// from 10 for eights.
func explainBenchmarkNumbers(w *writer, f fact) *Explanation {
	bench, suffix := 5, "_up"
	if f.a == 8 {
		bench, suffix = 10, "_down"
	}
	diff := f.a - bench
	if diff < 0 {
		diff = -diff
	}
	w.set("bench", bench).
		set("diff", diff).
		set("base", bench*f.b).
		set("extra", diff*f.b)

	return &Explanation{
		Strategy: BenchmarkNumbers,
		Concept:  w.text("benchmark_numbers_concept" + suffix),
		Steps: w.steps(
			"benchmark_numbers_step1",
			"benchmark_numbers_step2"+suffix,
			"benchmark_numbers_step3"+suffix,
		),
		Pattern:   w.text("benchmark_numbers_pattern"),
		RealWorld: w.text("benchmark_numbers_real_world"),
	}
}

// knownFactSplit rewrites a factor as first ± second, where both parts
// have their own simple strategy.
type knownFactSplit struct {
	first, second         int
	firstName, secondName Name
	subtract              bool
}

var knownFactSplits = map[int]knownFactSplit{
	3: {first: 2, second: 1, firstName: Twos, secondName: Ones},
	4: {first: 2, second: 2, firstName: Twos, secondName: Twos},
	6: {first: 5, second: 1, firstName: Fives, secondName: Ones},
	7: {first: 5, second: 2, firstName: Fives, secondName: Twos},
	8: {first: 10, second: 2, firstName: Tens, secondName: Twos, subtract: true},
}

func explainBuildingKnownFacts(w *writer, f fact) *Explanation {
	split := knownFactSplits[f.a]
	w.set("first", split.first).
		set("second", split.second).
		set("first_product", split.first*f.b).
		set("second_product", split.second*f.b).
		set("first_name", w.displayName(split.firstName)).
		set("second_name", w.displayName(split.secondName))

	op := "_plus"
	if split.subtract {
		op = "_minus"
	}
	return &Explanation{
		Strategy: BuildingKnownFacts,
		Concept:  w.text("building_known_facts_concept"),
		Steps: w.steps(
			"building_known_facts_step1"+op,
			"building_known_facts_step2",
			"building_known_facts_step3",
			"building_known_facts_step4"+op,
		),
		Pattern: w.text("building_known_facts_pattern"),
	}
}
