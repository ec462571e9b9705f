package sim

import (
	"math"
	"math/rand"
)

// penaltyStep is the probability penalty added per rank position among the
// still-pending events: rank 0 pays nothing, rank 1 pays 10%, and so on.
// From rank 10 onward the penalty reaches 100% and the event cannot fire
// during that step at all.
const penaltyStep = 0.1

// dailyProbability converts a weekly success probability into the per-day
// probability whose seven-fold compounding reproduces it exactly:
// 1 - (1-daily)^7 == weekly.
func dailyProbability(weekly float64) float64 {
	return 1 - math.Pow(1-weekly, 1.0/DaysPerWeek)
}

// SimulateTrial runs one independent realization of the biased pause-timer
// process and returns the week in which the last event occurred, or horizon
// if the trial saturated.
//
// Each step, the indices of still-pending events are snapshotted once, in
// original order, before any draws. An event's rank is its position in that
// snapshot, so an event firing mid-step does not change the penalties of
// events evaluated after it in the same step. One uniform draw is consumed
// per pending event per step, except events at rank >= 10, which are fully
// penalized and skipped without a draw.
func SimulateTrial(probs []float64, horizon int, res Resolution, rng *rand.Rand) int {
	week, _ := simulateTrialTimes(probs, horizon, res, rng)
	return week
}

// simulateTrialTimes is the trial state machine. It additionally returns the
// reporting week each event occurred in (0 = never occurred).
func simulateTrialTimes(probs []float64, horizon int, res Resolution, rng *rand.Rand) (int, []int) {
	n := len(probs)
	occurredAt := make([]int, n) // internal step of occurrence, 0 = pending
	pending := make([]int, 0, n)

	maxSteps := horizon
	if res == Daily {
		maxSteps = horizon * DaysPerWeek
	}

	step := 0
	remaining := n
	for step < maxSteps && remaining > 0 {
		step++

		// Snapshot of pending indices; defines this step's ranks.
		pending = pending[:0]
		for i, at := range occurredAt {
			if at == 0 {
				pending = append(pending, i)
			}
		}

		for rank, event := range pending {
			penalty := penaltyStep * float64(rank)
			if penalty >= 1.0 {
				continue // cannot occur this step
			}
			p := probs[event]
			if res == Daily {
				p = dailyProbability(p)
			}
			if rng.Float64() < p*(1.0-penalty) {
				occurredAt[event] = step
				remaining--
			}
		}
	}

	if res == Daily {
		// Round partial weeks up: day 8 reports as week 2. A saturated
		// trial ran horizon*7 days and therefore reports exactly horizon.
		for i, at := range occurredAt {
			if at > 0 {
				occurredAt[i] = (at + DaysPerWeek - 1) / DaysPerWeek
			}
		}
		return (step + DaysPerWeek - 1) / DaysPerWeek, occurredAt
	}
	return step, occurredAt
}
