package rule

import "fmt"

// Score is the confusion-matrix outcome the external evaluator reports for
// a candidate program, plus the program's size. The planner only formats
// and combines these numbers; it never computes them.
type Score struct {
	TP   int
	FN   int
	TN   int
	FP   int
	Size int
}

// MDL is the minimum-description-length cost: false negatives plus false
// positives plus program size.
func (s Score) MDL() int { return s.FN + s.FP + s.Size }

// Precision formats tp/(tp+fp), or "n/a" when nothing was predicted
// positive.
func (s Score) Precision() string {
	if s.TP+s.FP == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%0.2f", float64(s.TP)/float64(s.TP+s.FP))
}

// Recall formats tp/(tp+fn), or "n/a" when there are no positives.
func (s Score) Recall() string {
	if s.TP+s.FN == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%0.2f", float64(s.TP)/float64(s.TP+s.FN))
}

// Summary renders the one-line score report. Under noisy learning the MDL
// cost is appended, since size alone no longer ranks hypotheses.
func (s Score) Summary(noisy bool) string {
	line := fmt.Sprintf("Precision:%s Recall:%s TP:%d FN:%d TN:%d FP:%d Size:%d",
		s.Precision(), s.Recall(), s.TP, s.FN, s.TN, s.FP, s.Size)
	if noisy {
		line += fmt.Sprintf(" MDL:%d", s.MDL())
	}
	return line
}
