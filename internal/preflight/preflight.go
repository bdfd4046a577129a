package preflight

import (
	"pgnsplit/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	return []Result{
		CheckReadableFile("Input file", cfg.InputPath()),
		CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir),
		CheckCreatableDirectory("State directory", cfg.Paths.StateDir),
	}
}

// Failed returns the subset of results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
