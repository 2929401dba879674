package problemgen

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotANumber is returned by ParseAnswer for input that is not a
// whole number.
var ErrNotANumber = errors.New("answer is not a whole number")

// ParseAnswer reads the learner's input as a whole number.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros are ignored (e.g., "042" is 42)
// - Thousands separators are removed (e.g., "1,089" is 1089)
func ParseAnswer(input string) (int, error) {
	s := strings.ReplaceAll(strings.TrimSpace(input), ",", "")
	if s == "" {
		return 0, ErrNotANumber
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// CheckAnswer compares the learner's input against the fact's product.
// Input that does not parse is wrong.
func CheckAnswer(input string, f Fact) bool {
	n, err := ParseAnswer(input)
	return err == nil && n == f.Product()
}
