package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodrigo1392/misc-tools/pkg/notify"
)

type stubSender struct {
	texts []string
	resp  notify.Response
	err   error
}

func (s *stubSender) Send(_ context.Context, text string) (notify.Response, error) {
	s.texts = append(s.texts, text)

	return s.resp, s.err
}

func TestNotifySend(t *testing.T) {
	t.Parallel()

	stub := &stubSender{}
	stub.resp.OK = true
	stub.resp.Result.MessageID = 7

	var gotToken, gotChat string

	factory := func(token, chatID string, _ time.Duration) messageSender {
		gotToken, gotChat = token, chatID

		return stub
	}

	command := newNotifyCommandWithDeps(newTestApp(t), factory)

	out, err := execute(t, command, "send", "-m", "campaign done", "--token", "tok", "--chat-id", "42")
	require.NoError(t, err)

	assert.Equal(t, []string{"campaign done"}, stub.texts)
	assert.Equal(t, "tok", gotToken)
	assert.Equal(t, "42", gotChat)
	assert.Contains(t, out, "Message 7 delivered")
}

func TestNotifySend_CredentialsFromConfig(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	app.Config.Notify.Token = "cfg-token"
	app.Config.Notify.ChatID = "99"

	stub := &stubSender{}

	var gotToken, gotChat string

	factory := func(token, chatID string, _ time.Duration) messageSender {
		gotToken, gotChat = token, chatID

		return stub
	}

	_, err := execute(t, newNotifyCommandWithDeps(app, factory), "send", "-m", "hi")
	require.NoError(t, err)

	assert.Equal(t, "cfg-token", gotToken)
	assert.Equal(t, "99", gotChat)
}

func TestNotifySend_Failure(t *testing.T) {
	t.Parallel()

	stub := &stubSender{err: notify.ErrSendFailed}
	factory := func(_, _ string, _ time.Duration) messageSender { return stub }

	_, err := execute(t, newNotifyCommandWithDeps(newTestApp(t), factory), "send", "-m", "hi")
	require.ErrorIs(t, err, notify.ErrSendFailed)
}

func TestNotifySend_RequiresMessage(t *testing.T) {
	t.Parallel()

	factory := func(_, _ string, _ time.Duration) messageSender { return &stubSender{} }

	_, err := execute(t, newNotifyCommandWithDeps(newTestApp(t), factory), "send")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message")
}
