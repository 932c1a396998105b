package webhook

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testDispatcher() *Dispatcher {
	return NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestDispatch_PingEmptyEnvelope(t *testing.T) {
	d := testDispatcher()
	result := d.Dispatch(context.Background(), KindPing, &Envelope{})

	assert.True(t, result.Processed)
	assert.Equal(t, "Successfully processed ping event", result.Message)
}

func TestDispatch_PullRequestOpened(t *testing.T) {
	d := testDispatcher()
	action := "opened"
	env := &Envelope{
		Action:     &action,
		Repository: &Repository{FullName: "ethanwang/hookpulse"},
		PullRequest: &PullRequest{
			Number: 1, Title: "t", HTMLURL: "u", State: "open",
			User: User{Login: "a", HTMLURL: "b"},
		},
	}

	result := d.Dispatch(context.Background(), KindPullRequest, env)
	assert.True(t, result.Processed)
	assert.Equal(t, "Successfully processed pull_request event", result.Message)
}

func TestDispatch_PullRequestWithoutRepository(t *testing.T) {
	d := testDispatcher()
	action := "opened"
	env := &Envelope{
		Action:      &action,
		PullRequest: &PullRequest{Number: 1, Title: "t"},
	}

	result := d.Dispatch(context.Background(), KindPullRequest, env)
	assert.True(t, result.Processed)
}

func TestDispatch_PullRequestAbsentSubObject(t *testing.T) {
	// absence is a handled no-op, not an error
	d := testDispatcher()
	result := d.Dispatch(context.Background(), KindPullRequest, &Envelope{})
	assert.True(t, result.Processed)
}

func TestDispatch_IssuesAbsentSubObject(t *testing.T) {
	d := testDispatcher()
	result := d.Dispatch(context.Background(), KindIssues, &Envelope{})
	assert.True(t, result.Processed)
}

func TestDispatch_Push(t *testing.T) {
	d := testDispatcher()
	env := &Envelope{Repository: &Repository{FullName: "ethanwang/hookpulse"}}
	result := d.Dispatch(context.Background(), KindPush, env)

	assert.True(t, result.Processed)
	assert.Equal(t, "Successfully processed push event", result.Message)
}

func TestDispatch_UnrecognizedKind(t *testing.T) {
	d := testDispatcher()
	result := d.Dispatch(context.Background(), Kind("deployment_status"), &Envelope{})

	assert.True(t, result.Processed)
	assert.Equal(t, "Successfully processed deployment_status event", result.Message)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		header     string
		kind       Kind
		recognized bool
	}{
		{"push", KindPush, true},
		{"pull_request", KindPullRequest, true},
		{"issues", KindIssues, true},
		{"ping", KindPing, true},
		{"deployment_status", Kind("deployment_status"), false},
		{"", KindUnknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			kind := KindOf(tt.header)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.recognized, kind.Recognized())
		})
	}
}
