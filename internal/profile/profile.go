// Package profile records per-operation wall-clock durations and reduces
// them to an end-of-run summary. It is the only observability surface the
// planner carries; everything is optional and in-memory.
package profile

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Stats accumulates operation timings from construction until the run
// ends. It is safe for concurrent use: the CLI's batch ordering path feeds
// it from multiple goroutines.
type Stats struct {
	mu            sync.Mutex
	start         time.Time
	totalPrograms int
	durations     map[string][]time.Duration
}

// New starts a recorder; total execution time is measured from this call.
func New() *Stats {
	return &Stats{
		start:     time.Now(),
		durations: make(map[string][]time.Duration),
	}
}

// Duration begins timing the named operation and returns a stop function.
// The stop function must run even when the wrapped work fails, so callers
// defer it immediately:
//
//	defer stats.Duration("order")()
func (s *Stats) Duration(operation string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		s.mu.Lock()
		s.durations[operation] = append(s.durations[operation], elapsed)
		s.mu.Unlock()
	}
}

// AddPrograms bumps the processed-program counter by n.
func (s *Stats) AddPrograms(n int) {
	s.mu.Lock()
	s.totalPrograms += n
	s.mu.Unlock()
}

// TotalPrograms returns the processed-program count.
func (s *Stats) TotalPrograms() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPrograms
}

// TotalExecTime is the wall-clock time since the recorder was created.
func (s *Stats) TotalExecTime() time.Duration {
	return time.Since(s.start)
}

// Summary reduces one operation's recorded durations.
type Summary struct {
	Operation string
	Called    int
	Total     time.Duration
	Mean      time.Duration
	Maximum   time.Duration
}

var titleCaser = cases.Title(language.English)

// Summarize reduces every operation's duration list, sorted by total time
// descending. Operation names are title-cased for the report.
func (s *Stats) Summarize() []Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]Summary, 0, len(s.durations))
	for operation, durations := range s.durations {
		var total, maximum time.Duration
		for _, d := range durations {
			total += d
			if d > maximum {
				maximum = d
			}
		}
		summaries = append(summaries, Summary{
			Operation: titleCaser.String(operation),
			Called:    len(durations),
			Total:     total,
			Mean:      total / time.Duration(len(durations)),
			Maximum:   maximum,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total > summaries[j].Total
	})
	return summaries
}

// Render produces the end-of-run report: per-operation call counts,
// totals, means, maxima and percentage of total operation time.
func (s *Stats) Render() string {
	summaries := s.Summarize()

	var totalOp time.Duration
	for _, summary := range summaries {
		totalOp += summary.Total
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Num. programs: %d\n", s.TotalPrograms())
	for _, summary := range summaries {
		percentage := 0
		if totalOp > 0 {
			percentage = int(float64(summary.Total) / float64(totalOp) * 100)
		}
		fmt.Fprintf(&b, "%s:\n\tCalled: %d times \t Total: %0.2f \t Mean: %0.3f \t Max: %0.3f \t Percentage: %d%%\n",
			summary.Operation, summary.Called,
			summary.Total.Seconds(), summary.Mean.Seconds(), summary.Maximum.Seconds(),
			percentage)
	}
	fmt.Fprintf(&b, "Total operation time: %0.2fs\n", totalOp.Seconds())
	fmt.Fprintf(&b, "Total execution time: %0.2fs", s.TotalExecTime().Seconds())
	return b.String()
}
