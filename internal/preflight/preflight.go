package preflight

import (
	"context"
	"strings"

	"wallview/internal/config"
	"wallview/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckDirectoryAccess("Wallpaper directory", cfg.Paths.WallpaperDir)}

	if strings.TrimSpace(cfg.Paths.LogDir) != "" {
		results = append(results, CheckLogDirectory("Log directory", cfg.Paths.LogDir))
	}

	for _, status := range CheckSystemDeps(cfg) {
		results = append(results, fromStatus(status))
	}

	results = append(results, CheckBindAddress(ctx, cfg.Server.Bind))
	return results
}

// CheckSystemDeps evaluates the external programs wallview launches.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(deps.PlayerRequirements(cfg))
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

func fromStatus(status deps.Status) Result {
	result := Result{Name: status.Name, Passed: status.Available}
	switch {
	case status.Available:
		result.Detail = status.Path
	case status.Optional:
		result.Passed = true
		result.Detail = status.Detail + " (optional)"
	default:
		result.Detail = status.Detail
	}
	return result
}
