package webhook

import (
	"context"
	"fmt"
	"log/slog"
)

// Result is the caller-facing outcome of dispatching one event.
type Result struct {
	Message   string `json:"message"`
	Processed bool   `json:"processed"`
}

// Dispatcher routes a decoded envelope to kind-specific logic. Handlers are
// observational only: they log what happened and never mutate state, so
// dispatch always terminates in a processed result. Redelivery of the same
// payload is therefore safe to handle any number of times.
type Dispatcher struct {
	log *slog.Logger
}

func NewDispatcher(log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{log: log}
}

// Dispatch handles one event. Unrecognized kinds are accepted and reported as
// processed: GitHub introduces new event types over time, and a failure here
// would make it mark the endpoint as broken.
func (d *Dispatcher) Dispatch(ctx context.Context, kind Kind, env *Envelope) Result {
	switch kind {
	case KindPush:
		d.handlePush(env)
	case KindPullRequest:
		d.handlePullRequest(env)
	case KindIssues:
		d.handleIssues(env)
	case KindPing:
		d.log.Info("ping received, webhook is configured correctly")
	default:
		d.log.Info("unhandled event kind", "kind", kind.String())
	}

	return Result{
		Message:   fmt.Sprintf("Successfully processed %s event", kind),
		Processed: true,
	}
}

func (d *Dispatcher) handlePush(env *Envelope) {
	d.log.Info("processing push event", "repository", env.RepoFullName())
}

// handlePullRequest observes pull_request events. An absent pull_request
// sub-object is a handled no-op, not an error.
func (d *Dispatcher) handlePullRequest(env *Envelope) {
	pr := env.PullRequest
	if pr == nil {
		return
	}
	d.log.Info("processing pull request",
		"number", pr.Number, "title", pr.Title, "state", pr.State)

	action := env.ActionOrEmpty()
	repo := env.RepoFullName()
	switch action {
	case "opened":
		d.log.Info("pull request opened", "title", pr.Title, "repository", repo)
	case "closed":
		d.log.Info("pull request closed", "title", pr.Title, "repository", repo)
	case "synchronize":
		d.log.Info("pull request updated", "title", pr.Title, "repository", repo)
	}
}

func (d *Dispatcher) handleIssues(env *Envelope) {
	issue := env.Issue
	if issue == nil {
		return
	}
	d.log.Info("processing issue",
		"number", issue.Number, "title", issue.Title, "state", issue.State)
}
