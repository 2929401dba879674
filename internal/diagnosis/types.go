// Package diagnosis classifies wrong answers so that slips are not mistaken
// for gaps in a learner's knowledge.
package diagnosis

// ErrorCategory classifies a wrong answer.
type ErrorCategory string

const (
	CategorySpeedRush     ErrorCategory = "speed-rush"
	CategoryAddedInstead  ErrorCategory = "added-instead"
	CategoryOffByOneGroup ErrorCategory = "off-by-one-group"
	CategoryDigitSwap     ErrorCategory = "digit-swap"
	CategoryCareless      ErrorCategory = "careless"
	CategoryUnclassified  ErrorCategory = "unclassified"
)

// CountsAsMiss reports whether a wrong answer of this category should
// count towards marking a number as struggling. Rushed and careless
// answers say little about what the learner knows.
func (c ErrorCategory) CountsAsMiss() bool {
	return c != CategorySpeedRush && c != CategoryCareless
}

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	A, B           int
	Answer         int
	ResponseTimeMs int64
	// Accuracy is the learner's historical accuracy (0.0–1.0) on facts
	// involving the weaker of the two numbers.
	Accuracy float64
}

func (in *ClassifyInput) product() int { return in.A * in.B }

// Result is the output of classifying a wrong answer.
type Result struct {
	Category       ErrorCategory `json:"category"`
	Confidence     float64       `json:"confidence"`
	ClassifierName string        `json:"classifier"`
}
