// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package ghactions exposes the ambient invocation context of a GitHub
// Actions run: the GITHUB_* environment variables plus the JSON event
// payload, loaded once so that automation code does not re-parse either.
package ghactions

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cicd-ai-toolkit/actions-context/pkg/dotmap"
	"github.com/cicd-ai-toolkit/actions-context/pkg/errors"
	"github.com/sethvargo/go-envconfig"
)

// Variables consulted outside the tagged field scan.
const (
	// EnvEventPath names the file holding the JSON event document.
	EnvEventPath = "GITHUB_EVENT_PATH"
	// EnvRepository holds the repository in "owner/name" form.
	EnvRepository = "GITHUB_REPOSITORY"
)

// Default endpoint values used when the runner does not provide them.
const (
	DefaultAPIURL     = "https://api.github.com"
	DefaultServerURL  = "https://github.com"
	DefaultGraphQLURL = "https://api.github.com/graphql"
)

// Context is a snapshot of the GitHub Actions invocation environment.
// It is populated once by New and never mutated afterwards.
//
// RunAttempt, RunNumber and RunID are strings on purpose: the runner hands
// them over as environment strings and this package never parses them back
// into integers, so GITHUB_RUN_ID=42 yields "42". Callers that need numbers
// convert at the call site.
type Context struct {
	// Payload is the parsed event document from GITHUB_EVENT_PATH, or an
	// empty map when no event file is available.
	Payload dotmap.Map `json:"payload" yaml:"payload"`

	// EventName is the name of the event that triggered the run, e.g. "push".
	EventName string `env:"GITHUB_EVENT_NAME" json:"event_name" yaml:"event_name"`
	// SHA is the commit that triggered the run.
	SHA string `env:"GITHUB_SHA" json:"sha" yaml:"sha"`
	// Ref is the git ref that triggered the run, e.g. "refs/heads/main".
	Ref string `env:"GITHUB_REF" json:"ref" yaml:"ref"`
	// Workflow is the name of the workflow.
	Workflow string `env:"GITHUB_WORKFLOW" json:"workflow" yaml:"workflow"`
	// Action is the identifier of the current action step.
	Action string `env:"GITHUB_ACTION" json:"action" yaml:"action"`
	// Actor is the login of the user that initiated the run.
	Actor string `env:"GITHUB_ACTOR" json:"actor" yaml:"actor"`
	// Job is the identifier of the current job.
	Job string `env:"GITHUB_JOB" json:"job" yaml:"job"`

	// RunAttempt is the attempt number of the current run.
	RunAttempt string `env:"GITHUB_RUN_ATTEMPT, default=0" json:"run_attempt" yaml:"run_attempt"`
	// RunNumber is the workflow-scoped run counter.
	RunNumber string `env:"GITHUB_RUN_NUMBER, default=0" json:"run_number" yaml:"run_number"`
	// RunID is the unique identifier of the run.
	RunID string `env:"GITHUB_RUN_ID, default=0" json:"run_id" yaml:"run_id"`

	// APIURL is the REST API base URL.
	APIURL string `env:"GITHUB_API_URL, default=https://api.github.com" json:"api_url" yaml:"api_url"`
	// ServerURL is the web UI base URL.
	ServerURL string `env:"GITHUB_SERVER_URL, default=https://github.com" json:"server_url" yaml:"server_url"`
	// GraphQLURL is the GraphQL endpoint.
	GraphQLURL string `env:"GITHUB_GRAPHQL_URL, default=https://api.github.com/graphql" json:"graphql_url" yaml:"graphql_url"`

	raw      json.RawMessage
	lookuper envconfig.Lookuper
}

// Repo identifies the repository a run belongs to.
type Repo struct {
	Owner string `json:"owner" yaml:"owner"`
	Repo  string `json:"repo" yaml:"repo"`
}

// Issue identifies the issue or pull request an event refers to.
type Issue struct {
	Owner  string `json:"owner" yaml:"owner"`
	Repo   string `json:"repo" yaml:"repo"`
	Number int    `json:"number" yaml:"number"`
}

// New builds a Context from the process environment. The event payload file
// is read at most once; a payload file that exists but does not parse as
// JSON is a fatal parse error.
func New(ctx context.Context) (*Context, error) {
	return NewWithLookuper(ctx, envconfig.OsLookuper())
}

// NewWithLookuper builds a Context from an arbitrary variable source.
// Tests use this with envconfig.MapLookuper instead of mutating the
// process environment.
func NewWithLookuper(ctx context.Context, lookuper envconfig.Lookuper) (*Context, error) {
	c := &Context{lookuper: lookuper}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   c,
		Lookuper: lookuper,
	}); err != nil {
		return nil, errors.ConfigError("failed to scan GITHUB_* environment", err)
	}
	if err := c.loadPayload(); err != nil {
		return nil, err
	}
	return c, nil
}

// loadPayload reads and parses the event document named by GITHUB_EVENT_PATH.
// An unset variable or a missing file leaves the payload empty; a file that
// exists but does not parse is an error.
func (c *Context) loadPayload() error {
	c.Payload = dotmap.Map{}

	path, ok := c.lookuper.Lookup(EnvEventPath)
	if !ok || path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.PayloadError(fmt.Sprintf("failed to read event file: %s", path), err)
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return errors.ParseError(fmt.Sprintf("event file is not valid JSON: %s", path), err)
	}
	if payload == nil {
		// A file containing the literal "null" decodes to a nil map.
		payload = map[string]any{}
	}

	c.Payload = dotmap.Map(payload)
	c.raw = data
	return nil
}

// Repo derives the repository identity, re-reading GITHUB_REPOSITORY on
// every call. The owner/name pair comes from that variable when set,
// otherwise from the payload's repository object. When neither source is
// available the result is a configuration error, not an empty value.
func (c *Context) Repo() (Repo, error) {
	if full, ok := c.lookuper.Lookup(EnvRepository); ok && full != "" {
		owner, name, found := strings.Cut(full, "/")
		if !found {
			return Repo{}, errors.ConfigError(
				fmt.Sprintf("%s must look like 'owner/repo', got %q", EnvRepository, full), nil)
		}
		return Repo{Owner: owner, Repo: name}, nil
	}

	if c.Payload.Has("repository") {
		owner, _ := c.Payload.StringPath("repository.owner.login")
		name, _ := c.Payload.StringPath("repository.name")
		return Repo{Owner: owner, Repo: name}, nil
	}

	return Repo{}, errors.ConfigError(
		"repo requires a GITHUB_REPOSITORY environment variable like 'owner/repo' or a repository object in the event payload", nil)
}

// Issue derives the issue or pull request view of the payload, re-derived
// on every call. Number is looked up as issue.number, then
// pull_request.number, then a top-level number; a payload without any of
// them yields Number 0.
func (c *Context) Issue() (Issue, error) {
	repo, err := c.Repo()
	if err != nil {
		return Issue{}, err
	}

	number, ok := c.Payload.IntPath("issue.number")
	if !ok {
		number, ok = c.Payload.IntPath("pull_request.number")
	}
	if !ok {
		number, _ = c.Payload.Int("number")
	}

	return Issue{Owner: repo.Owner, Repo: repo.Repo, Number: number}, nil
}
