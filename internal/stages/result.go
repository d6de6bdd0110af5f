package stages

import "fmt"

// Name identifies a stage.
type Name string

const (
	Preprocess Name = "preprocess"
	Synthesize Name = "synthesize"
)

// Label returns the operator-facing stage name.
func (n Name) Label() string {
	switch n {
	case Preprocess:
		return "Preprocessing"
	case Synthesize:
		return "Audio generation"
	default:
		return string(n)
	}
}

// Result summarizes one stage run.
type Result struct {
	Stage     Name
	Processed int
	Failed    int
	Total     int
}

// Empty reports whether discovery found nothing to process.
func (r Result) Empty() bool {
	return r.Total == 0
}

// Complete reports whether every discovered file succeeded.
func (r Result) Complete() bool {
	return r.Processed == r.Total
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d/%d processed, %d failed", r.Stage, r.Processed, r.Total, r.Failed)
}
