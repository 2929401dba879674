package strategy

// fact is a multiplication fact as presented (x, y) and normalized so
// that a <= b.
type fact struct {
	x, y    int
	a, b    int
	product int
}

func newFact(x, y int) fact {
	a, b := x, y
	if b < a {
		a, b = b, a
	}
	return fact{x: x, y: y, a: a, b: b, product: x * y}
}

// has reports whether either factor is k.
func (f fact) has(k int) bool {
	return f.a == k || f.b == k
}

// other returns the factor paired with k. When both factors are k it returns k.
func (f fact) other(k int) int {
	if f.a == k {
		return f.b
	}
	return f.a
}

// rule is one row of the candidate table.
type rule struct {
	name    Name
	rank    int
	applies func(s *Selector, f fact) bool
	explain func(w *writer, f fact) *Explanation
}

// rules is the candidate table in declaration order. The order is the
// final tie-break when success counts and ranks are equal.
var rules = []rule{
	{Ones, 1, func(_ *Selector, f fact) bool { return f.has(1) }, explainOnes},
	{Tens, 2, func(_ *Selector, f fact) bool { return f.has(10) }, explainTens},
	{Twos, 3, func(_ *Selector, f fact) bool { return f.has(2) }, explainTwos},
	{Fives, 4, func(_ *Selector, f fact) bool { return f.has(5) }, explainFives},
	{PureDoubles, 5, func(_ *Selector, f fact) bool { return f.a%2 == 0 && f.a > 2 }, explainPureDoubles},
	{ElevensSimple, 5, func(_ *Selector, f fact) bool { return f.has(11) && f.other(11) < 10 }, explainElevensSimple},
	{Squares, 6, func(_ *Selector, f fact) bool { return f.a == f.b }, explainSquares},
	{Nines, 7, func(_ *Selector, f fact) bool { return f.has(9) }, explainNines},
	{NinesDigitSum, 7, func(_ *Selector, f fact) bool { return f.has(9) && f.other(9) < 10 }, explainNinesDigitSum},
	{NinesFingerTrick, 7, func(_ *Selector, f fact) bool {
		n := f.other(9)
		return f.has(9) && n > 1 && n < 10
	}, explainNinesFingerTrick},
	{NearDoubles, 8, func(_ *Selector, f fact) bool { return f.b == f.a+1 }, explainNearDoubles},
	{MemoryTrick, 8, func(s *Selector, f fact) bool { return s.hasMemoryTrick(f) }, explainMemoryTrick},
	{BenchmarkNumbers, 8, func(_ *Selector, f fact) bool {
		return (f.a == 6 || f.a == 7 || f.a == 8) && f.b > 5
	}, explainBenchmarkNumbers},
	{BuildingKnownFacts, 9, func(_ *Selector, f fact) bool {
		_, ok := knownFactSplits[f.a]
		return ok
	}, explainBuildingKnownFacts},
	{ElevensAdvanced, 10, func(_ *Selector, f fact) bool {
		n := f.other(11)
		return f.has(11) && n >= 10 && n < 100
	}, explainElevensAdvanced},
}

var (
	visualArrayRule   = rule{name: VisualArray, rank: visualArrayRank, explain: explainVisualArray}
	skipCountingRule  = rule{name: SkipCounting, rank: skipCountingRank, explain: explainSkipCounting}
	decompositionRule = rule{name: Decomposition, rank: decompositionRank, explain: explainDecomposition}
)
