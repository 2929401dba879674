package strategy

func explainOnes(w *writer, f fact) *Explanation {
	w.set("n", f.other(1))
	return &Explanation{
		Strategy:  Ones,
		Concept:   w.text("ones_concept"),
		Steps:     w.steps("ones_step1"),
		Pattern:   w.text("ones_pattern"),
		Mnemonic:  w.text("ones_mnemonic"),
		RealWorld: w.text("ones_real_world"),
	}
}

func explainTens(w *writer, f fact) *Explanation {
	w.set("n", f.other(10))
	return &Explanation{
		Strategy:  Tens,
		Concept:   w.text("tens_concept"),
		Steps:     w.steps("tens_step1", "tens_step2"),
		Pattern:   w.text("tens_pattern"),
		Mnemonic:  w.text("tens_mnemonic"),
		RealWorld: w.text("tens_real_world"),
	}
}

func explainTwos(w *writer, f fact) *Explanation {
	w.set("n", f.other(2))
	return &Explanation{
		Strategy:  Twos,
		Concept:   w.text("twos_concept"),
		Steps:     w.steps("twos_step1", "twos_step2"),
		Pattern:   w.text("twos_pattern"),
		Mnemonic:  w.text("twos_mnemonic"),
		RealWorld: w.text("twos_real_world"),
	}
}

func explainFives(w *writer, f fact) *Explanation {
	n := f.other(5)
	w.set("n", n).set("tens", n*10)
	return &Explanation{
		Strategy:  Fives,
		Concept:   w.text("fives_concept"),
		Steps:     w.steps("fives_step1", "fives_step2"),
		Pattern:   w.text("fives_pattern"),
		Mnemonic:  w.text("fives_mnemonic"),
		RealWorld: w.text("fives_real_world"),
	}
}

func explainSquares(w *writer, _ fact) *Explanation {
	return &Explanation{
		Strategy:  Squares,
		Concept:   w.text("squares_concept"),
		Steps:     w.steps("squares_step1", "squares_step2"),
		Pattern:   w.text("squares_pattern"),
		Mnemonic:  w.text("squares_mnemonic"),
		RealWorld: w.text("squares_real_world"),
	}
}

func explainMemoryTrick(w *writer, f fact) *Explanation {
	rhyme := w.text(memoryTricks[[2]int{f.a, f.b}])
	return &Explanation{
		Strategy: MemoryTrick,
		Concept:  w.text("memory_trick_concept"),
		Steps:    append([]string{rhyme}, w.steps("memory_trick_step2")...),
		Mnemonic: rhyme,
	}
}

// hasMemoryTrick reports whether the fact has a rhyme in the fixed table
// and the active locale provides it.
func (s *Selector) hasMemoryTrick(f fact) bool {
	key, ok := memoryTricks[[2]int{f.a, f.b}]
	if !ok {
		return false
	}
	if s.formatter == nil {
		return true
	}
	_, ok = s.formatter.Format(key, nil)
	return ok
}
