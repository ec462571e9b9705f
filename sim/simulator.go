// sim/simulator.go
package sim

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds the batch configuration, the
// partitioned RNG, and the result collection. Trials share nothing but the
// read-only configuration, so a Simulator may run them sequentially or
// across a worker pool; both produce the same Results for the same key.
type Simulator struct {
	Config  Config
	RNG     *PartitionedRNG
	Results []int
}

// NewSimulator validates the configuration and builds a Simulator. An
// invalid configuration is rejected here, before any trial runs.
func NewSimulator(cfg Config, seed int64) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulator{
		Config: cfg,
		RNG:    NewPartitionedRNG(NewSimulationKey(seed)),
	}, nil
}

// Run executes all trials sequentially and returns the result collection.
// Results[i] is the completion week of trial i, derived from the RNG
// partition for index i regardless of execution order.
func (s *Simulator) Run() []int {
	logrus.Infof("Running %d trials (%d events, horizon=%d weeks, %s resolution)",
		s.Config.Samples, len(s.Config.Probs), s.Config.Horizon, s.Config.Resolution)

	s.Results = make([]int, s.Config.Samples)
	for trial := 0; trial < s.Config.Samples; trial++ {
		s.Results[trial] = s.runTrial(trial)
	}

	logrus.Info("Simulation complete")
	return s.Results
}

// RunParallel executes the batch across the given number of workers. Trials
// are independent and each derives its own RNG from its index, so the result
// collection is identical to a sequential Run with the same key. workers < 2
// degrades to Run.
func (s *Simulator) RunParallel(workers int) []int {
	if workers < 2 {
		return s.Run()
	}
	logrus.Infof("Running %d trials on %d workers (%d events, horizon=%d weeks, %s resolution)",
		s.Config.Samples, workers, len(s.Config.Probs), s.Config.Horizon, s.Config.Resolution)

	s.Results = make([]int, s.Config.Samples)
	trials := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for trial := range trials {
				// Each worker writes only its own trial's slot.
				s.Results[trial] = s.runTrial(trial)
			}
		}()
	}
	for trial := 0; trial < s.Config.Samples; trial++ {
		trials <- trial
	}
	close(trials)
	wg.Wait()

	logrus.Info("Simulation complete")
	return s.Results
}

func (s *Simulator) runTrial(trial int) int {
	return SimulateTrial(s.Config.Probs, s.Config.Horizon, s.Config.Resolution, s.RNG.ForTrial(trial))
}
