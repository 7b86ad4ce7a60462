// Package deps checks that the external programs wallview hands work to are
// installed.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"wallview/internal/config"
	"wallview/internal/player"
)

// Requirement names an external program and why wallview needs it.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	// Path is the resolved executable when Available is true.
	Path   string
	Detail string
}

// PlayerRequirements returns the launcher wallview will use for `open`.
// A configured player override replaces the platform opener.
func PlayerRequirements(cfg *config.Config) []Requirement {
	launcher := player.New(cfg)
	req := Requirement{
		Name:        "Video player",
		Command:     launcher.Command(),
		Description: "Opens videos in the default player",
	}
	if cfg != nil && cfg.HasPlayerOverride() {
		req.Description = "Configured player command"
	}
	return []Requirement{req}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "no launcher for this platform"
			results = append(results, status)
			continue
		}
		resolved, err := exec.LookPath(cmd)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = resolved
		results = append(results, status)
	}
	return results
}

// Missing returns the required statuses that are unavailable.
func Missing(statuses []Status) []Status {
	var missing []Status
	for _, s := range statuses {
		if !s.Available && !s.Optional {
			missing = append(missing, s)
		}
	}
	return missing
}
