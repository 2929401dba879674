package strategy

import (
	"fmt"
	"strings"
	"testing"
)

func render(fn func(*writer, fact) *Explanation, x, y int) *Explanation {
	f := newFact(x, y)
	return fn(newWriter(nil, f), f)
}

func assertSteps(t *testing.T, got *Explanation, want ...string) {
	t.Helper()
	if fmt.Sprint(got.Steps) != fmt.Sprint(want) {
		t.Errorf("%s steps:\n got  %q\n want %q", got.Strategy, got.Steps, want)
	}
}

func TestExplainNinesDigitSum(t *testing.T) {
	assertSteps(t, render(explainNinesDigitSum, 9, 7),
		"Tens digit: 7 − 1 = 6.",
		"Ones digit: 9 − 6 = 3.",
		"Put them together: 63.",
		"So 9 × 7 = 63.",
	)
}

func TestExplainNinesFingerTrick(t *testing.T) {
	exp := render(explainNinesFingerTrick, 4, 9)
	if len(exp.Steps) != 6 {
		t.Fatalf("got %d steps, want 6", len(exp.Steps))
	}
	if exp.Steps[4] != "3 tens and 6 ones make 36." {
		t.Errorf("step 5 = %q", exp.Steps[4])
	}
	if exp.Steps[5] != "So 4 × 9 = 36." {
		t.Errorf("last step = %q", exp.Steps[5])
	}
}

func TestExplainElevensAdvanced(t *testing.T) {
	t.Run("no carry", func(t *testing.T) {
		assertSteps(t, render(explainElevensAdvanced, 23, 11),
			"Split 23 into its digits 2 and 3.",
			"Add them: 2 + 3 = 5.",
			"Put 5 between 2 and 3: 253.",
			"So 23 × 11 = 253.",
		)
	})
	t.Run("carry", func(t *testing.T) {
		assertSteps(t, render(explainElevensAdvanced, 11, 57),
			"Split 57 into its digits 5 and 7.",
			"Add them: 5 + 7 = 12.",
			"12 is 10 or more: keep 2 in the middle and add the 1 to 5 to get 6.",
			"Put it together: 6, 2, 7 makes 627.",
			"So 11 × 57 = 627.",
		)
	})
}

func TestExplainElevensSimple(t *testing.T) {
	assertSteps(t, render(explainElevensSimple, 11, 6),
		"Take the digit 6.",
		"Write it twice: 66.",
		"So 11 × 6 = 66.",
	)
}

func TestExplainPureDoubles(t *testing.T) {
	assertSteps(t, render(explainPureDoubles, 7, 6),
		"6 is 3 + 3.",
		"3 × 7 = 21.",
		"Double it: 21 + 21 = 42.",
		"So 7 × 6 = 42.",
	)
}

func TestExplainNearDoubles(t *testing.T) {
	assertSteps(t, render(explainNearDoubles, 8, 7),
		"7 × 7 = 49.",
		"Add one more 7: 49 + 7 = 56.",
		"So 8 × 7 = 56.",
	)
}

func TestExplainBenchmarkNumbers(t *testing.T) {
	t.Run("up from five", func(t *testing.T) {
		assertSteps(t, render(explainBenchmarkNumbers, 7, 8),
			"Benchmark fact: 5 × 8 = 40.",
			"7 is 2 more than 5, so add 2 × 8 = 16.",
			"40 + 16 = 56.",
			"So 7 × 8 = 56.",
		)
	})
	t.Run("down from ten", func(t *testing.T) {
		assertSteps(t, render(explainBenchmarkNumbers, 9, 8),
			"Benchmark fact: 10 × 9 = 90.",
			"8 is 2 less than 10, so take away 2 × 9 = 18.",
			"90 − 18 = 72.",
			"So 9 × 8 = 72.",
		)
	})
}

func TestExplainBuildingKnownFacts(t *testing.T) {
	t.Run("addition", func(t *testing.T) {
		assertSteps(t, render(explainBuildingKnownFacts, 6, 8),
			"Split 6 into 5 + 1.",
			"5 × 8 = 40 (use the Fives Strategy).",
			"1 × 8 = 8 (use the Ones Rule).",
			"Add them: 40 + 8 = 48.",
			"So 6 × 8 = 48.",
		)
	})
	t.Run("subtraction", func(t *testing.T) {
		assertSteps(t, render(explainBuildingKnownFacts, 8, 9),
			"Think of 8 as 10 − 2.",
			"10 × 9 = 90 (use the Tens Rule).",
			"2 × 9 = 18 (use the Doubles Strategy).",
			"Subtract: 90 − 18 = 72.",
			"So 8 × 9 = 72.",
		)
	})
	t.Run("localized names", func(t *testing.T) {
		f := newFact(4, 7)
		w := newWriter(mapFormatter{"strategy_name_twos": "Dobles"}, f)
		exp := explainBuildingKnownFacts(w, f)
		if exp.Steps[1] != "2 × 7 = 14 (use the Dobles)." {
			t.Errorf("step 2 = %q, want localized name", exp.Steps[1])
		}
	})
}

func TestKnownFactSplits_AddUp(t *testing.T) {
	for n, s := range knownFactSplits {
		got := s.first + s.second
		if s.subtract {
			got = s.first - s.second
		}
		if got != n {
			t.Errorf("split of %d evaluates to %d", n, got)
		}
	}
}

func TestExplainSkipCounting(t *testing.T) {
	assertSteps(t, render(explainSkipCounting, 4, 3),
		"Count by 3: 3, 6, 9, 12.",
		"After 4 counts you reach 12.",
		"So 4 × 3 = 12.",
	)
}

func TestExplainDecomposition(t *testing.T) {
	t.Run("tens and ones", func(t *testing.T) {
		assertSteps(t, render(explainDecomposition, 15, 13),
			"13 = 10 + 3.",
			"10 × 15 = 150.",
			"3 × 15 = 45.",
			"150 + 45 = 195.",
			"So 15 × 13 = 195.",
		)
	})
	t.Run("plain", func(t *testing.T) {
		exp := render(explainDecomposition, 3, 14)
		if exp.Concept != "3 × 14 means 14 groups of 3." {
			t.Errorf("concept = %q", exp.Concept)
		}
		assertSteps(t, exp, "So 3 × 14 = 42.")
	})
}

func TestFallbackRule(t *testing.T) {
	tests := []struct {
		a, b int
		want Name
	}{
		{3, 7, SkipCounting},
		{10, 10, SkipCounting},
		{13, 15, Decomposition},
		{3, 14, Decomposition},
	}
	for _, tt := range tests {
		if got := fallbackRule(newFact(tt.a, tt.b)).name; got != tt.want {
			t.Errorf("fallbackRule(%d, %d) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDotGrid(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want string
	}{
		{"small", 3, 2, "● ● ●\n● ● ●"},
		{"single", 1, 1, "●"},
		{"capped rows", 2, 8, strings.Repeat("● ●\n", 6) + "..."},
		{"capped columns", 12, 1, strings.TrimSpace(strings.Repeat("● ", 10)) + " ..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dotGrid(tt.a, tt.b); got != tt.want {
				t.Errorf("dotGrid(%d, %d) =\n%s\nwant\n%s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestExplainVisualArray(t *testing.T) {
	exp := render(explainVisualArray, 8, 3)
	if exp.Concept != "Let's draw it! 8 groups of 3 dots." {
		t.Errorf("concept = %q", exp.Concept)
	}
	rows := strings.Split(exp.Visual, "\n")
	if len(rows) != 7 || rows[6] != "..." {
		t.Errorf("visual rows = %q, want 6 dot rows and an ellipsis", rows)
	}
	if exp.Steps[len(exp.Steps)-1] != "So 8 × 3 = 24." {
		t.Errorf("last step = %q", exp.Steps[len(exp.Steps)-1])
	}
}
