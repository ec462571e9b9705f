// sim/metrics.go
package sim

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Bin represents a single completion-week histogram bin with its integer key
// and count.
type Bin struct {
	Key   int
	Count int
}

// Metrics aggregates statistics derived from one batch's result collection
// for final reporting. It is rebuilt from scratch per batch, never cached
// across configurations.
type Metrics struct {
	Samples   int     // number of trials summarized
	Horizon   int     // horizon the batch ran with
	P25       float64 // 25th percentile of completion weeks
	P50       float64 // 50th percentile (median)
	P75       float64 // 75th percentile
	Mean      float64 // mean completion week
	StdDev    float64 // sample standard deviation
	Saturated int     // trials that hit the horizon without completing
}

type IntOrFloat64 interface {
	int | int64 | float64
}

// CalculatePercentile returns the p-th percentile of data using linear
// interpolation between the two nearest ranks of the sorted copy
// (rank = p/100 * (n-1)).
func CalculatePercentile[T IntOrFloat64](data []T, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}
	sorted := make([]T, n)
	copy(sorted, data)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))

	if lowerIdx == upperIdx {
		return float64(sorted[lowerIdx])
	}
	if upperIdx >= n {
		return float64(sorted[n-1])
	}
	lowerVal := float64(sorted[lowerIdx])
	upperVal := float64(sorted[upperIdx])
	return lowerVal + (upperVal-lowerVal)*(rank-float64(lowerIdx))
}

// NewMetrics summarizes a result collection produced with the given horizon.
func NewMetrics(results []int, horizon int) *Metrics {
	m := &Metrics{Samples: len(results), Horizon: horizon}
	if len(results) == 0 {
		return m
	}

	weeks := make([]float64, len(results))
	for i, w := range results {
		weeks[i] = float64(w)
		if w >= horizon {
			m.Saturated++
		}
	}

	m.P25 = CalculatePercentile(results, 25)
	m.P50 = CalculatePercentile(results, 50)
	m.P75 = CalculatePercentile(results, 75)
	m.Mean = stat.Mean(weeks, nil)
	m.StdDev = stat.StdDev(weeks, nil)
	return m
}

// Histogram bins a result collection into one bin per week from 1 through
// max(results)+1, including empty bins, the layout downstream plotting
// expects.
func Histogram(results []int) []Bin {
	if len(results) == 0 {
		return nil
	}
	max := results[0]
	for _, w := range results {
		if w > max {
			max = w
		}
	}
	counts := make(map[int]int, max)
	for _, w := range results {
		counts[w]++
	}
	bins := make([]Bin, 0, max+1)
	for week := 1; week <= max+1; week++ {
		bins = append(bins, Bin{Key: week, Count: counts[week]})
	}
	return bins
}

// Print displays the batch summary. A large saturated count means many
// trials never completed within the horizon, not an engine failure.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Trials               : %d\n", m.Samples)
	fmt.Printf("25th percentile      : %.1f weeks\n", m.P25)
	fmt.Printf("Median               : %.1f weeks\n", m.P50)
	fmt.Printf("75th percentile      : %.1f weeks\n", m.P75)
	fmt.Printf("Mean                 : %.2f weeks\n", m.Mean)
	fmt.Printf("Std deviation        : %.2f weeks\n", m.StdDev)
	if m.Saturated > 0 {
		fmt.Printf("Saturated trials     : %d (hit the %d-week horizon)\n", m.Saturated, m.Horizon)
	}
}

// SaveToFile writes the raw result collection as comma-separated values, one
// batch per line, for external plotting.
func SaveToFile(results []int, fileName string) {
	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0777)
	if err != nil {
		logrus.Fatalf("Error creating file %s: %v\n", fileName, err)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logrus.Fatalf("Error closing file %s: %v\n", fileName, closeErr)
		}
	}()

	writer := bufio.NewWriter(file)

	defer func() {
		if flushErr := writer.Flush(); flushErr != nil {
			logrus.Fatalf("Error flushing writer for file %s: %v\n", fileName, flushErr)
		}
	}()

	for i, w := range results {
		if i > 0 {
			if _, writeErr := fmt.Fprint(writer, ", "); writeErr != nil {
				logrus.Fatalf("Error writing to file %s: %v\n", fileName, writeErr)
				return
			}
		}
		if _, writeErr := fmt.Fprint(writer, w); writeErr != nil {
			logrus.Fatalf("Error writing week %d to file: %v\n", w, writeErr)
			return
		}
	}
	if _, writeErr := fmt.Fprintln(writer); writeErr != nil {
		logrus.Fatalf("Error writing to file %s: %v\n", fileName, writeErr)
	}

	logrus.Debugf("Successfully wrote to '%s'\n", fileName)
}
