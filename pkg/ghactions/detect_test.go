// Package ghactions provides detection tests
package ghactions

import "testing"

func TestRunningInActions(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	if !RunningInActions() {
		t.Error("RunningInActions() = false with GITHUB_ACTIONS=true")
	}

	t.Setenv("GITHUB_ACTIONS", "")
	if RunningInActions() {
		t.Error("RunningInActions() = true with GITHUB_ACTIONS unset")
	}
}

func TestDetect(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_RUN_ID", "")

	info := Detect()
	if !info.InActions {
		t.Error("Detect() did not detect Actions")
	}
	if info.VarName != "GITHUB_ACTIONS" {
		t.Errorf("VarName = %s, want GITHUB_ACTIONS", info.VarName)
	}

	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITHUB_RUN_ID", "42")

	info = Detect()
	if !info.InActions {
		t.Error("Detect() did not fall back to GITHUB_RUN_ID")
	}
	if info.VarName != "GITHUB_RUN_ID" {
		t.Errorf("VarName = %s, want GITHUB_RUN_ID", info.VarName)
	}

	t.Setenv("GITHUB_RUN_ID", "")
	info = Detect()
	if info.InActions {
		t.Error("Detect() reported Actions outside of CI")
	}
}

func TestIsEnterpriseServer(t *testing.T) {
	c := newTestContext(t, nil)
	if IsEnterpriseServer(c) {
		t.Error("IsEnterpriseServer() = true for default server URL")
	}

	c = newTestContext(t, map[string]string{"GITHUB_SERVER_URL": "https://ghe.example.com"})
	if !IsEnterpriseServer(c) {
		t.Error("IsEnterpriseServer() = false for custom server URL")
	}
}
