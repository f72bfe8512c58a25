// Package main provides the actions-context CLI application.
package main

import (
	"strings"
	"testing"

	"github.com/cicd-ai-toolkit/actions-context/pkg/ghactions"
)

func TestRenderFormats(t *testing.T) {
	repo := ghactions.Repo{Owner: "octocat", Repo: "Hello-World"}

	out, err := render(repo, "json")
	if err != nil {
		t.Fatalf("render(json) error = %v", err)
	}
	if !strings.Contains(out, `"owner": "octocat"`) {
		t.Errorf("render(json) = %q, missing owner field", out)
	}

	out, err = render(repo, "yaml")
	if err != nil {
		t.Fatalf("render(yaml) error = %v", err)
	}
	if !strings.Contains(out, "owner: octocat") {
		t.Errorf("render(yaml) = %q, missing owner field", out)
	}

	if _, err := render(repo, "xml"); err == nil {
		t.Error("render(xml) did not fail for unsupported format")
	}
}
