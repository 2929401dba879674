package diagnosis

import "testing"

func TestSpeedRushClassifier(t *testing.T) {
	tests := []struct {
		ms   int64
		want ErrorCategory
	}{
		{800, CategorySpeedRush},
		{1499, CategorySpeedRush},
		{1500, ""},
		{4000, ""},
	}
	c := &SpeedRushClassifier{}
	for _, tt := range tests {
		cat, _ := c.Classify(&ClassifyInput{ResponseTimeMs: tt.ms})
		if cat != tt.want {
			t.Errorf("%dms: got category %q, want %q", tt.ms, cat, tt.want)
		}
	}
}

func TestCarelessClassifier(t *testing.T) {
	c := &CarelessClassifier{}
	cat, conf := c.Classify(&ClassifyInput{Accuracy: 0.85})
	if cat != CategoryCareless {
		t.Errorf("got category %q, want %q", cat, CategoryCareless)
	}
	if conf != 0.8 {
		t.Errorf("got confidence %f, want 0.8", conf)
	}
	if cat, _ := c.Classify(&ClassifyInput{Accuracy: 0.80}); cat != "" {
		t.Errorf("got category %q at threshold, want empty", cat)
	}
}

func TestArithmeticClassifiers(t *testing.T) {
	tests := []struct {
		name      string
		c         Classifier
		a, b, ans int
		want      ErrorCategory
	}{
		{"added", &AddedInsteadClassifier{}, 6, 7, 13, CategoryAddedInstead},
		{"not added", &AddedInsteadClassifier{}, 6, 7, 41, ""},
		// 2 + 2 is also the product.
		{"two twos", &AddedInsteadClassifier{}, 2, 2, 4, ""},
		{"one group short", &OffByOneGroupClassifier{}, 7, 8, 49, CategoryOffByOneGroup},
		{"one group over", &OffByOneGroupClassifier{}, 7, 8, 63, CategoryOffByOneGroup},
		{"other operand", &OffByOneGroupClassifier{}, 7, 8, 48, CategoryOffByOneGroup},
		{"not a group", &OffByOneGroupClassifier{}, 7, 8, 50, ""},
		{"zero groups", &OffByOneGroupClassifier{}, 1, 3, 0, ""},
		{"swapped", &DigitSwapClassifier{}, 8, 9, 27, CategoryDigitSwap},
		{"single digit product", &DigitSwapClassifier{}, 2, 3, 6, ""},
		{"palindrome", &DigitSwapClassifier{}, 11, 4, 44, ""},
		{"trailing zero", &DigitSwapClassifier{}, 5, 6, 3, ""},
		{"three digits", &DigitSwapClassifier{}, 11, 12, 231, CategoryDigitSwap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, _ := tt.c.Classify(&ClassifyInput{A: tt.a, B: tt.b, Answer: tt.ans})
			if cat != tt.want {
				t.Errorf("%d × %d answered %d: got %q, want %q", tt.a, tt.b, tt.ans, cat, tt.want)
			}
		})
	}
}

func TestRunClassifiers_SpeedRushPriority(t *testing.T) {
	// A fast sum is still a rush.
	input := &ClassifyInput{A: 6, B: 7, Answer: 13, ResponseTimeMs: 1000, Accuracy: 0.9}
	cat, _, name := RunClassifiers(DefaultClassifiers(), input)
	if cat != CategorySpeedRush {
		t.Errorf("got category %q, want %q", cat, CategorySpeedRush)
	}
	if name != "speed-rush" {
		t.Errorf("got classifier %q, want %q", name, "speed-rush")
	}
}

func TestRunClassifiers_PatternBeforeCareless(t *testing.T) {
	input := &ClassifyInput{A: 6, B: 7, Answer: 13, ResponseTimeMs: 5000, Accuracy: 0.95}
	cat, _, _ := RunClassifiers(DefaultClassifiers(), input)
	if cat != CategoryAddedInstead {
		t.Errorf("got category %q, want %q", cat, CategoryAddedInstead)
	}
}

func TestDiagnose(t *testing.T) {
	got := Diagnose(&ClassifyInput{A: 6, B: 7, Answer: 40, ResponseTimeMs: 5000, Accuracy: 0.95})
	if got.Category != CategoryCareless || got.ClassifierName != "careless" {
		t.Errorf("got %+v, want careless", got)
	}

	got = Diagnose(&ClassifyInput{A: 6, B: 7, Answer: 40, ResponseTimeMs: 5000, Accuracy: 0.5})
	if got.Category != CategoryUnclassified {
		t.Errorf("got %q, want unclassified", got.Category)
	}
	if got.Confidence != 0 {
		t.Errorf("got confidence %f, want 0", got.Confidence)
	}
}

func TestCountsAsMiss(t *testing.T) {
	counted := map[ErrorCategory]bool{
		CategorySpeedRush:     false,
		CategoryCareless:      false,
		CategoryAddedInstead:  true,
		CategoryOffByOneGroup: true,
		CategoryDigitSwap:     true,
		CategoryUnclassified:  true,
	}
	for cat, want := range counted {
		if got := cat.CountsAsMiss(); got != want {
			t.Errorf("%s.CountsAsMiss() = %v, want %v", cat, got, want)
		}
	}
}
