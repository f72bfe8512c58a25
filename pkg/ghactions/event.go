// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

package ghactions

import (
	"encoding/json"

	"github.com/cicd-ai-toolkit/actions-context/pkg/errors"
)

// DecodePayload unmarshals the raw event document into v. It is the typed
// alternative to walking Payload key by key; an empty payload decodes as
// an empty object.
func (c *Context) DecodePayload(v any) error {
	raw := c.raw
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.ParseError("failed to decode event payload", err)
	}
	return nil
}

// RawPayload returns the unparsed event document bytes, or nil when no
// event file was available.
func (c *Context) RawPayload() json.RawMessage {
	return c.raw
}

// PullRequestEvent covers the fields shared by pull_request and
// pull_request_target payloads that automation typically needs.
type PullRequestEvent struct {
	// Action is the action that triggered the event
	Action string `json:"action"`

	// Number is the PR number
	Number int `json:"number"`

	// PullRequest contains PR details
	PullRequest struct {
		Number  int    `json:"number"`
		Title   string `json:"title"`
		Body    string `json:"body"`
		State   string `json:"state"`
		HTMLURL string `json:"html_url"`
		User    struct {
			Login string `json:"login"`
		} `json:"user"`
		Head struct {
			Ref string `json:"ref"`
			SHA string `json:"sha"`
		} `json:"head"`
		Base struct {
			Ref string `json:"ref"`
			SHA string `json:"sha"`
		} `json:"base"`
	} `json:"pull_request"`

	// Repository identifies the repo the PR belongs to
	Repository EventRepository `json:"repository"`
}

// IssuesEvent covers issues and issue_comment payloads.
type IssuesEvent struct {
	Action string `json:"action"`

	Issue struct {
		Number  int    `json:"number"`
		Title   string `json:"title"`
		Body    string `json:"body"`
		State   string `json:"state"`
		HTMLURL string `json:"html_url"`
		User    struct {
			Login string `json:"login"`
		} `json:"user"`
	} `json:"issue"`

	Repository EventRepository `json:"repository"`
}

// PushEvent covers push payloads.
type PushEvent struct {
	Ref    string `json:"ref"`
	Before string `json:"before"`
	After  string `json:"after"`

	HeadCommit struct {
		ID      string `json:"id"`
		Message string `json:"message"`
		URL     string `json:"url"`
	} `json:"head_commit"`

	Pusher struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"pusher"`

	Repository EventRepository `json:"repository"`
}

// EventRepository is the repository object embedded in event payloads.
type EventRepository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		Login string `json:"login"`
	} `json:"owner"`
	DefaultBranch string `json:"default_branch"`
}
