package problemgen

import (
	"errors"
	"testing"
)

func TestCheckAnswer(t *testing.T) {
	f := Fact{A: 6, B: 7}

	tests := []struct {
		input string
		want  bool
	}{
		{"42", true},
		{" 42 ", true},
		{"042", true},
		{"43", false},
		{"", false},
		{"abc", false},
		{"4 2", false},
		{"42.0", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, f)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 6 × 7) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseAnswer(t *testing.T) {
	n, err := ParseAnswer("1,089")
	if err != nil || n != 1089 {
		t.Errorf("ParseAnswer(1,089) = %d, %v", n, err)
	}
	if _, err := ParseAnswer("  "); !errors.Is(err, ErrNotANumber) {
		t.Errorf("blank input: got %v, want ErrNotANumber", err)
	}
	if _, err := ParseAnswer("seven"); !errors.Is(err, ErrNotANumber) {
		t.Errorf("word input: got %v, want ErrNotANumber", err)
	}
}

func TestFact(t *testing.T) {
	f := Fact{A: 9, B: 4}
	if f.Product() != 36 {
		t.Errorf("Product = %d", f.Product())
	}
	if f.String() != "9 × 4" {
		t.Errorf("String = %q", f.String())
	}
	if f.Key() != (Fact{A: 4, B: 9}) {
		t.Errorf("Key = %v", f.Key())
	}
	if !f.Involves(4) || f.Involves(5) {
		t.Error("Involves mismatch")
	}
}
