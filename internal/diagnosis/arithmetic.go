package diagnosis

import "strconv"

// AddedInsteadClassifier catches a + b given for a × b.
type AddedInsteadClassifier struct{}

func (c *AddedInsteadClassifier) Name() string { return "added-instead" }

func (c *AddedInsteadClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	if input.Answer == input.A+input.B && input.Answer != input.product() {
		return CategoryAddedInstead, 0.85
	}
	return "", 0
}

// OffByOneGroupClassifier catches an answer one group too many or too few,
// for example 7 × 7 or 7 × 9 given for 7 × 8.
type OffByOneGroupClassifier struct{}

func (c *OffByOneGroupClassifier) Name() string { return "off-by-one-group" }

func (c *OffByOneGroupClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	a, b, ans := input.A, input.B, input.Answer
	for _, near := range []int{a * (b - 1), a * (b + 1), (a - 1) * b, (a + 1) * b} {
		if ans == near && near > 0 {
			return CategoryOffByOneGroup, 0.8
		}
	}
	return "", 0
}

// DigitSwapClassifier catches the product written with its digits
// reversed, such as 27 for 72. Palindromes and products ending in zero
// have no distinct reversal.
type DigitSwapClassifier struct{}

func (c *DigitSwapClassifier) Name() string { return "digit-swap" }

func (c *DigitSwapClassifier) Classify(input *ClassifyInput) (ErrorCategory, float64) {
	p := input.product()
	if p < 10 || p%10 == 0 {
		return "", 0
	}
	rev := reverseDigits(p)
	if rev == p {
		return "", 0
	}
	if input.Answer == rev {
		return CategoryDigitSwap, 0.7
	}
	return "", 0
}

func reverseDigits(n int) int {
	s := []byte(strconv.Itoa(n))
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	out, _ := strconv.Atoi(string(s))
	return out
}
