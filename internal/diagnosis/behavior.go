package diagnosis

// Behavioral rules look at how an answer was given, not at its value.
const (
	// SpeedRushThresholdMs: wrong answers faster than this are rushed.
	SpeedRushThresholdMs = 1500
	// CarelessAccuracyThreshold: wrong answers on numbers the learner
	// gets right more often than this are slips.
	CarelessAccuracyThreshold = 0.80
)

// SpeedRushClassifier flags a wrong answer typed before the learner
// could have worked the fact out.
type SpeedRushClassifier struct{}

func (*SpeedRushClassifier) Name() string { return string(CategorySpeedRush) }

func (*SpeedRushClassifier) Classify(in *ClassifyInput) (ErrorCategory, float64) {
	if in.ResponseTimeMs >= SpeedRushThresholdMs {
		return "", 0
	}
	return CategorySpeedRush, 0.9
}

// CarelessClassifier flags a wrong answer on a number the learner
// usually gets right.
type CarelessClassifier struct{}

func (*CarelessClassifier) Name() string { return string(CategoryCareless) }

func (*CarelessClassifier) Classify(in *ClassifyInput) (ErrorCategory, float64) {
	if in.Accuracy <= CarelessAccuracyThreshold {
		return "", 0
	}
	return CategoryCareless, 0.8
}
