// Package sim provides the Monte Carlo engine for the biased pause-timer
// model.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - trial.go: one realization of the rank-penalty process (the state machine)
//   - simulator.go: the batch driver, sequential and worker-pool variants
//   - rng.go: per-trial deterministic RNG derivation from a master seed
//   - metrics.go: percentile summary and histogram of the result collection
//
// # Model
//
// A trial tracks n independent events, each with a base weekly probability.
// Every step the still-pending events are ranked in original order; rank r
// pays a 10%*r probability penalty, and from rank 10 the event cannot fire
// that step at all. A trial ends when every event has occurred, or saturates
// at the horizon. The batch driver repeats this across many trials and
// reduces the completion weeks to percentiles and a histogram.
package sim
