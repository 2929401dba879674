package strategy

import (
	"strconv"
	"strings"
)

const (
	// ForceVisualAfter is the attempt count above which the visual array
	// is forced, outside discovery mode.
	ForceVisualAfter = 10

	visualMaxRows = 6
	visualMaxCols = 10
	dot           = "●"
)

func explainVisualArray(w *writer, f fact) *Explanation {
	return &Explanation{
		Strategy:  VisualArray,
		Concept:   w.text("visual_array_concept"),
		Steps:     w.steps("visual_array_step1", "visual_array_step2", "visual_array_step3"),
		RealWorld: w.text("visual_array_real_world"),
		Visual:    dotGrid(f.a, f.b),
	}
}

// dotGrid draws b rows of a dots, capped at 6 rows and 10 dots per row.
func dotGrid(a, b int) string {
	row := strings.TrimSpace(strings.Repeat(dot+" ", min(a, visualMaxCols)))
	if a > visualMaxCols {
		row += " ..."
	}
	lines := make([]string, 0, visualMaxRows+1)
	for range min(b, visualMaxRows) {
		lines = append(lines, row)
	}
	if b > visualMaxRows {
		lines = append(lines, "...")
	}
	return strings.Join(lines, "\n")
}

// fallbackRule picks the generic strategy for a fact no candidate matched.
func fallbackRule(f fact) rule {
	if f.a <= 10 && f.b <= 10 {
		return skipCountingRule
	}
	return decompositionRule
}

func explainSkipCounting(w *writer, f fact) *Explanation {
	seq := make([]string, 0, f.b)
	for i := 1; i <= f.b; i++ {
		seq = append(seq, strconv.Itoa(i*f.a))
	}
	w.set("sequence", strings.Join(seq, ", "))
	return &Explanation{
		Strategy: SkipCounting,
		Concept:  w.text("skip_counting_concept"),
		Steps:    w.steps("skip_counting_step1", "skip_counting_step2"),
		Pattern:  w.text("skip_counting_pattern"),
		Mnemonic: w.text("skip_counting_mnemonic"),
	}
}

// explainDecomposition splits a into tens and ones. When a has no tens
// part it degrades to a plain statement of the product.
func explainDecomposition(w *writer, f fact) *Explanation {
	if f.a <= 10 {
		return &Explanation{
			Strategy: Decomposition,
			Concept:  w.text("decomposition_plain_concept"),
			Steps:    w.steps(),
		}
	}
	ones := f.a % 10
	tens := f.a - ones
	w.set("tens", tens).
		set("ones", ones).
		set("tens_product", tens*f.b).
		set("ones_product", ones*f.b)
	return &Explanation{
		Strategy: Decomposition,
		Concept:  w.text("decomposition_concept"),
		Steps:    w.steps("decomposition_step1", "decomposition_step2", "decomposition_step3", "decomposition_step4"),
		Pattern:  w.text("decomposition_pattern"),
	}
}
