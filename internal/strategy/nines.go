package strategy

func explainNines(w *writer, f fact) *Explanation {
	n := f.other(9)
	w.set("n", n).set("tens", n*10)
	return &Explanation{
		Strategy:  Nines,
		Concept:   w.text("nines_concept"),
		Steps:     w.steps("nines_step1", "nines_step2"),
		Pattern:   w.text("nines_pattern"),
		Mnemonic:  w.text("nines_mnemonic"),
		RealWorld: w.text("nines_real_world"),
	}
}

// explainNinesDigitSum covers 9 × n for n < 10: the tens digit is n-1 and
// the digits sum to 9.
func explainNinesDigitSum(w *writer, f fact) *Explanation {
	n := f.other(9)
	tensDigit := n - 1
	w.set("n", n).set("tens_digit", tensDigit).set("ones_digit", 9-tensDigit)
	return &Explanation{
		Strategy: NinesDigitSum,
		Concept:  w.text("nines_digit_sum_concept"),
		Steps:    w.steps("nines_digit_sum_step1", "nines_digit_sum_step2", "nines_digit_sum_step3"),
		Pattern:  w.text("nines_digit_sum_pattern"),
		Mnemonic: w.text("nines_digit_sum_mnemonic"),
	}
}

func explainNinesFingerTrick(w *writer, f fact) *Explanation {
	n := f.other(9)
	w.set("n", n).set("left", n-1).set("right", 10-n)
	return &Explanation{
		Strategy: NinesFingerTrick,
		Concept:  w.text("nines_finger_trick_concept"),
		Steps: w.steps(
			"nines_finger_trick_step1",
			"nines_finger_trick_step2",
			"nines_finger_trick_step3",
			"nines_finger_trick_step4",
			"nines_finger_trick_step5",
		),
		Mnemonic: w.text("nines_finger_trick_mnemonic"),
	}
}
