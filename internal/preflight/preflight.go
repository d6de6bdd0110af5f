package preflight

import (
	"fmt"
	"strings"

	"bookloom/internal/config"
	"bookloom/internal/services"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks needed before a stage can start: both tool
// executables and scripts plus the results directory. The books root is not
// checked here since an explicit book path may live outside it.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := CheckTools(cfg)
	results = append(results,
		CheckScript("Preprocessor script", cfg.Preprocessor),
		CheckScript("TTS script", cfg.TTS),
		CheckDirectoryAccess("Results directory", cfg.Paths.ResultsDir),
	)
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Passed {
			out = append(out, r)
		}
	}
	return out
}

// Err converts failed results into a configuration error, or nil when every
// check passed.
func Err(results []Result) error {
	failed := Failed(results)
	if len(failed) == 0 {
		return nil
	}
	parts := make([]string, 0, len(failed))
	for _, r := range failed {
		parts = append(parts, fmt.Sprintf("%s: %s", r.Name, r.Detail))
	}
	return services.Wrap(services.ErrConfiguration, "preflight", "check", strings.Join(parts, "; "), nil)
}
