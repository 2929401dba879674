package problemgen

// Default generator settings.
const (
	DefaultMaxFactor    = 10
	DefaultStruggleBias = 0.5
	DefaultRecentWindow = 4

	// advancedShare is the share of draws that are two-digit elevens facts
	// when advanced mode is on.
	advancedShare = 0.2
)

// Config controls which facts the Generator draws.
type Config struct {
	// MaxFactor is the largest operand of the basic range 1..MaxFactor.
	MaxFactor int

	// Advanced adds elevens facts 11 × 10..99.
	Advanced bool

	// StruggleBias is the probability (0.0-1.0) that a draw involves one
	// of the struggling numbers, when there are any.
	StruggleBias float64

	// RecentWindow is how many recent facts the generator tries not to
	// repeat.
	RecentWindow int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxFactor:    DefaultMaxFactor,
		StruggleBias: DefaultStruggleBias,
		RecentWindow: DefaultRecentWindow,
	}
}

func (c Config) normalized() Config {
	if c.MaxFactor < 1 {
		c.MaxFactor = DefaultMaxFactor
	}
	c.StruggleBias = min(max(c.StruggleBias, 0), 1)
	if c.RecentWindow < 0 {
		c.RecentWindow = 0
	}
	return c
}
