package profile

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestDurationRecordsEvenOnFailure(t *testing.T) {
	stats := New()

	func() {
		defer stats.Duration("ground")()
		// Simulates wrapped work failing; the deferred stop still runs.
	}()
	func() {
		defer func() { recover() }()
		defer stats.Duration("ground")()
		panic("solver failure")
	}()

	summaries := stats.Summarize()
	if len(summaries) != 1 {
		t.Fatalf("expected one operation, got %d", len(summaries))
	}
	if summaries[0].Called != 2 {
		t.Fatalf("expected 2 calls recorded, got %d", summaries[0].Called)
	}
}

func TestSummarizeSortsByTotalDescending(t *testing.T) {
	stats := New()

	slow := stats.Duration("slow op")
	time.Sleep(20 * time.Millisecond)
	slow()

	fast := stats.Duration("fast op")
	fast()

	summaries := stats.Summarize()
	if len(summaries) != 2 {
		t.Fatalf("expected two operations, got %d", len(summaries))
	}
	if summaries[0].Operation != "Slow Op" {
		t.Fatalf("expected slowest operation first (title-cased), got %q", summaries[0].Operation)
	}
	if summaries[0].Mean > summaries[0].Total {
		t.Fatalf("mean cannot exceed total")
	}
	if summaries[0].Maximum > summaries[0].Total {
		t.Fatalf("maximum cannot exceed total")
	}
}

func TestRender(t *testing.T) {
	stats := New()
	stats.AddPrograms(3)
	stop := stats.Duration("order")
	stop()

	out := stats.Render()
	if !strings.Contains(out, "Num. programs: 3") {
		t.Fatalf("missing program count in:\n%s", out)
	}
	if !strings.Contains(out, "Order:") {
		t.Fatalf("missing title-cased operation in:\n%s", out)
	}
	if !strings.Contains(out, "Total execution time:") {
		t.Fatalf("missing total execution time in:\n%s", out)
	}
}

func TestConcurrentRecording(t *testing.T) {
	stats := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer stats.Duration("order")()
			stats.AddPrograms(1)
		}()
	}
	wg.Wait()

	if stats.TotalPrograms() != 50 {
		t.Fatalf("expected 50 programs, got %d", stats.TotalPrograms())
	}
	summaries := stats.Summarize()
	if len(summaries) != 1 || summaries[0].Called != 50 {
		t.Fatalf("expected 50 recorded calls, got %+v", summaries)
	}
}
