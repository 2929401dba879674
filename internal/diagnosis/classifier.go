package diagnosis

// Classifier is a rule-based error classifier.
// Returns a category and confidence (0.0–1.0), or ("", 0) if the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(input *ClassifyInput) (ErrorCategory, float64)
}

// DefaultClassifiers returns classifiers in priority order.
// Speed-rush comes first: a fast wrong answer is a rush even when it also
// happens to look like a sum or a swapped product.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&SpeedRushClassifier{},
		&AddedInsteadClassifier{},
		&OffByOneGroupClassifier{},
		&DigitSwapClassifier{},
		&CarelessClassifier{},
	}
}

// RunClassifiers executes rule-based classifiers in order.
// Returns the first match, or ("", 0, "") if no rules apply.
func RunClassifiers(classifiers []Classifier, input *ClassifyInput) (ErrorCategory, float64, string) {
	for _, c := range classifiers {
		cat, conf := c.Classify(input)
		if cat != "" {
			return cat, conf, c.Name()
		}
	}
	return "", 0, ""
}

// Diagnose classifies a wrong answer with the default classifiers.
func Diagnose(input *ClassifyInput) Result {
	cat, conf, name := RunClassifiers(DefaultClassifiers(), input)
	if cat == "" {
		return Result{Category: CategoryUnclassified, ClassifierName: "none"}
	}
	return Result{Category: cat, Confidence: conf, ClassifierName: name}
}
