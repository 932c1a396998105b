package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope_UnknownFieldsOnly(t *testing.T) {
	body := []byte(`{"zen":"Keep it logically awesome.","hook_id":12345,"hook":{"type":"Repository"}}`)

	env, err := DecodeEnvelope(body)
	require.NoError(t, err)
	assert.Nil(t, env.Action)
	assert.Nil(t, env.Repository)
	assert.Nil(t, env.Sender)
	assert.Nil(t, env.PullRequest)
	assert.Nil(t, env.Issue)
}

func TestDecodeEnvelope_FullPullRequest(t *testing.T) {
	body := []byte(`{
		"action": "opened",
		"repository": {"name": "hookpulse", "full_name": "ethanwang/hookpulse", "html_url": "https://github.com/ethanwang/hookpulse"},
		"sender": {"login": "ethanwang", "html_url": "https://github.com/ethanwang"},
		"pull_request": {"number": 7, "title": "Add thing", "html_url": "u", "state": "open", "user": {"login": "ethanwang", "html_url": "b"}}
	}`)

	env, err := DecodeEnvelope(body)
	require.NoError(t, err)
	require.NotNil(t, env.Action)
	assert.Equal(t, "opened", *env.Action)
	require.NotNil(t, env.Repository)
	assert.Equal(t, "ethanwang/hookpulse", env.Repository.FullName)
	require.NotNil(t, env.PullRequest)
	assert.Equal(t, int64(7), env.PullRequest.Number)
	assert.Equal(t, "open", env.PullRequest.State)
	assert.Equal(t, "ethanwang", env.PullRequest.User.Login)
	assert.Nil(t, env.Issue)
}

func TestDecodeEnvelope_TypeMismatch(t *testing.T) {
	// number given as a string must fail, not silently coerce
	body := []byte(`{"pull_request":{"number":"1","title":"t"}}`)

	env, err := DecodeEnvelope(body)
	assert.Error(t, err)
	assert.Nil(t, env)
}

func TestDecodeEnvelope_MalformedJSON(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"action":`))
	assert.Error(t, err)
	assert.Nil(t, env)
}

func TestEnvelope_AbsenceHelpers(t *testing.T) {
	env := &Envelope{}
	assert.Equal(t, "", env.ActionOrEmpty())
	assert.Equal(t, "", env.RepoFullName())
	assert.Equal(t, "", env.SenderLogin())

	action := "closed"
	env = &Envelope{
		Action:     &action,
		Repository: &Repository{FullName: "ethanwang/hookpulse"},
		Sender:     &User{Login: "ethanwang"},
	}
	assert.Equal(t, "closed", env.ActionOrEmpty())
	assert.Equal(t, "ethanwang/hookpulse", env.RepoFullName())
	assert.Equal(t, "ethanwang", env.SenderLogin())
}
