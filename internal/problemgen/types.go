// Package problemgen draws multiplication facts for drills and checks
// the learner's answers.
package problemgen

import "fmt"

// Fact is one multiplication question, in the order it is shown.
type Fact struct {
	A, B int
}

// Product returns A × B.
func (f Fact) Product() int { return f.A * f.B }

func (f Fact) String() string { return fmt.Sprintf("%d × %d", f.A, f.B) }

// Key identifies the fact regardless of operand order.
func (f Fact) Key() Fact {
	if f.A > f.B {
		return Fact{A: f.B, B: f.A}
	}
	return f
}

// Involves reports whether n is one of the operands.
func (f Fact) Involves(n int) bool { return f.A == n || f.B == n }
