package sim

import (
	"errors"
	"fmt"
)

// Resolution selects the time-stepping granularity of a trial.
type Resolution int

const (
	// Weekly draws one Bernoulli trial per event per week; base
	// probabilities are used directly as per-step probabilities.
	Weekly Resolution = iota
	// Daily draws seven sub-steps per week; base weekly probabilities are
	// converted to exact per-day probabilities (see dailyProbability).
	Daily
)

// DaysPerWeek is the sub-step factor between Daily and Weekly resolution.
const DaysPerWeek = 7

// ParseResolution maps a CLI/YAML string to a Resolution.
func ParseResolution(s string) (Resolution, error) {
	switch s {
	case "weekly", "week":
		return Weekly, nil
	case "daily", "day":
		return Daily, nil
	default:
		return Weekly, fmt.Errorf("unknown resolution %q (want weekly or daily)", s)
	}
}

func (r Resolution) String() string {
	if r == Daily {
		return "daily"
	}
	return "weekly"
}

// Config groups the parameters of one simulation batch. Probs is ordered:
// an event's position determines its penalty rank among still-pending
// events, so reordering Probs changes the model.
type Config struct {
	Probs      []float64  // base weekly probability per event, each in (0,1)
	Samples    int        // number of independent trials
	Horizon    int        // max weeks per trial before saturation
	Resolution Resolution // weekly or daily stepping
}

// NewConfig builds a Config without validating it; call Validate before use.
func NewConfig(probs []float64, samples, horizon int, res Resolution) Config {
	return Config{Probs: probs, Samples: samples, Horizon: horizon, Resolution: res}
}

// Validate rejects configurations the engine cannot run. NewSimulator calls
// it before any trial starts, so a bad configuration never produces partial
// results.
func (c Config) Validate() error {
	if len(c.Probs) == 0 {
		return errors.New("config: no events given")
	}
	for i, p := range c.Probs {
		if p <= 0 || p >= 1 {
			return fmt.Errorf("config: event %d probability %v outside (0, 1)", i, p)
		}
	}
	if c.Samples <= 0 {
		return fmt.Errorf("config: samples must be positive, got %d", c.Samples)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("config: horizon must be positive, got %d", c.Horizon)
	}
	if c.Resolution != Weekly && c.Resolution != Daily {
		return fmt.Errorf("config: invalid resolution %d", int(c.Resolution))
	}
	return nil
}
