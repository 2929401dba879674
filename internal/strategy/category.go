package strategy

// Category is the learning style a strategy appeals to.
type Category string

const (
	CategoryVisual      Category = "visual"
	CategoryPattern     Category = "pattern"
	CategoryCounting    Category = "counting"
	CategoryBreakdown   Category = "breakdown"
	CategoryKinesthetic Category = "kinesthetic"
	CategoryAuditory    Category = "auditory"
	CategoryDefault     Category = "default"
)

// categoryOrder is the canonical category order. It breaks ties when two
// learning styles have the same success count.
var categoryOrder = []Category{
	CategoryVisual,
	CategoryPattern,
	CategoryCounting,
	CategoryBreakdown,
	CategoryKinesthetic,
	CategoryAuditory,
	CategoryDefault,
}

var categoryOf = map[Name]Category{
	VisualArray:        CategoryVisual,
	Squares:            CategoryVisual,
	Ones:               CategoryPattern,
	Tens:               CategoryPattern,
	Nines:              CategoryPattern,
	NinesDigitSum:      CategoryPattern,
	ElevensSimple:      CategoryPattern,
	ElevensAdvanced:    CategoryPattern,
	Twos:               CategoryCounting,
	Fives:              CategoryCounting,
	SkipCounting:       CategoryCounting,
	PureDoubles:        CategoryBreakdown,
	NearDoubles:        CategoryBreakdown,
	BenchmarkNumbers:   CategoryBreakdown,
	BuildingKnownFacts: CategoryBreakdown,
	Decomposition:      CategoryBreakdown,
	NinesFingerTrick:   CategoryKinesthetic,
	MemoryTrick:        CategoryAuditory,
}

// Classify maps a strategy to its learning-style category.
// Unknown names map to CategoryDefault.
func Classify(name Name) Category {
	if c, ok := categoryOf[name]; ok {
		return c
	}
	return CategoryDefault
}

// Categories returns every category in canonical order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// preferredStyle returns the category with the highest positive success
// count. Ties go to the category listed first in categoryOrder.
func preferredStyle(success map[Category]int) (Category, bool) {
	var best Category
	bestCount := 0
	for _, c := range categoryOrder {
		if n := success[c]; n > bestCount {
			best, bestCount = c, n
		}
	}
	return best, bestCount > 0
}
