package strategy

func explainElevensSimple(w *writer, f fact) *Explanation {
	w.set("n", f.other(11))
	return &Explanation{
		Strategy:  ElevensSimple,
		Concept:   w.text("elevens_simple_concept"),
		Steps:     w.steps("elevens_simple_step1", "elevens_simple_step2"),
		Pattern:   w.text("elevens_simple_pattern"),
		Mnemonic:  w.text("elevens_simple_mnemonic"),
		RealWorld: w.text("elevens_simple_real_world"),
	}
}

// explainElevensAdvanced covers 11 × n for two-digit n: the digit sum goes
// between the digits, carrying into the front digit when it reaches 10.
func explainElevensAdvanced(w *writer, f fact) *Explanation {
	n := f.other(11)
	first, last := n/10, n%10
	sum := first + last
	w.set("n", n).
		set("first_digit", first).
		set("last_digit", last).
		set("sum", sum)

	steps := []string{"elevens_advanced_step1", "elevens_advanced_step2"}
	if sum < 10 {
		steps = append(steps, "elevens_advanced_step3")
	} else {
		w.set("middle", sum-10).set("carried", first+1)
		steps = append(steps, "elevens_advanced_step3_carry", "elevens_advanced_step4_carry")
	}

	return &Explanation{
		Strategy: ElevensAdvanced,
		Concept:  w.text("elevens_advanced_concept"),
		Steps:    w.steps(steps...),
		Pattern:  w.text("elevens_advanced_pattern"),
		Mnemonic: w.text("elevens_advanced_mnemonic"),
	}
}
