// Package ghactions provides GitHub Actions environment detection
package ghactions

import "os"

// RunningInActions reports whether the process is running under GitHub
// Actions. The runner sets GITHUB_ACTIONS=true for every step.
func RunningInActions() bool {
	return os.Getenv("GITHUB_ACTIONS") == "true"
}

// IsEnterpriseServer reports whether the context points at a GitHub
// Enterprise Server instance rather than github.com.
func IsEnterpriseServer(c *Context) bool {
	return c.ServerURL != "" && c.ServerURL != DefaultServerURL
}

// DetectInfo contains information about the detected Actions environment.
type DetectInfo struct {
	InActions bool
	VarName   string // Name of the environment variable that was detected
	VarValue  string // Value of the environment variable
}

// Detect returns detailed detection information for diagnostics.
func Detect() *DetectInfo {
	info := &DetectInfo{VarName: "GITHUB_ACTIONS"}

	if val := os.Getenv("GITHUB_ACTIONS"); val == "true" {
		info.InActions = true
		info.VarValue = val
		return info
	}

	// GITHUB_RUN_ID is set even for some self-hosted runner variants that
	// omit GITHUB_ACTIONS.
	if val := os.Getenv("GITHUB_RUN_ID"); val != "" {
		info.InActions = true
		info.VarName = "GITHUB_RUN_ID"
		info.VarValue = val
		return info
	}

	return info
}
