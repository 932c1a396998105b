package webhook

import (
	"encoding/json"
	"fmt"
)

// Envelope is the decoded shape of a webhook body. Every field is optional:
// which sub-objects are present depends on the event kind, and it is the
// dispatcher, not the decoder, that decides what a given kind needs.
// Unknown fields in the body are ignored so new payload fields from GitHub
// never break decoding.
type Envelope struct {
	Action      *string      `json:"action"`
	Repository  *Repository  `json:"repository"`
	Sender      *User        `json:"sender"`
	PullRequest *PullRequest `json:"pull_request"`
	Issue       *Issue       `json:"issue"`
}

// Repository identifies the repository an event belongs to.
type Repository struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	HTMLURL  string `json:"html_url"`
}

// User is the account that triggered or authored something.
type User struct {
	Login   string `json:"login"`
	HTMLURL string `json:"html_url"`
}

// PullRequest carries the pull request sub-object of pull_request events.
type PullRequest struct {
	Number  int64  `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
	State   string `json:"state"`
	User    User   `json:"user"`
}

// Issue carries the issue sub-object of issues events.
type Issue struct {
	Number  int64  `json:"number"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
	State   string `json:"state"`
	User    User   `json:"user"`
}

// DecodeEnvelope parses a raw webhook body. It fails only when the bytes are
// not well-formed JSON or a present field has the wrong type; absent fields
// are fine.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}
	return &env, nil
}

// ActionOrEmpty returns the event sub-action, or "" when absent.
func (e *Envelope) ActionOrEmpty() string {
	if e.Action == nil {
		return ""
	}
	return *e.Action
}

// RepoFullName returns the repository full name, or "" when absent.
func (e *Envelope) RepoFullName() string {
	if e.Repository == nil {
		return ""
	}
	return e.Repository.FullName
}

// SenderLogin returns the sender login, or "" when absent.
func (e *Envelope) SenderLogin() string {
	if e.Sender == nil {
		return ""
	}
	return e.Sender.Login
}
