package main

import (
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func TestEscapeMarkdownV2(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"🎉 *Deal!* Tivat", "🎉 \\*Deal\\!\\* Tivat"},
		{"550.00 €", "550\\.00 €"},
		{"a_b*c[d]e(f)g~h`i>j#k+l-m=n|o{p}q.r!s", "a\\_b\\*c\\[d\\]e\\(f\\)g\\~h\\`i\\>j\\#k\\+l\\-m\\=n\\|o\\{p\\}q\\.r\\!s"},
		{`back\slash`, `back\\slash`},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeMarkdownV2(tc.in), "input %q", tc.in)
	}
}

func TestNotify(t *testing.T) {
	api := &fakeSender{}
	notifier := NewNotifier(api, NewSubscription(42))

	err := notifier.Notify("🔎 No deals found – I'll keep trying!")

	require.NoError(t, err)
	require.Len(t, api.sent, 1)
	msg := api.sent[0]
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Equal(t, "MarkdownV2", msg.ParseMode)
	assert.Equal(t, "🔎 No deals found – I'll keep trying\\!", msg.Text)
}

func TestNotify_sendError(t *testing.T) {
	api := &fakeSender{err: errors.New("telegram: chat not found")}
	notifier := NewNotifier(api, NewSubscription(42))

	err := notifier.Notify("hello")

	require.Error(t, err)
	assert.ErrorContains(t, err, "chat not found")
}

// TestSubscription_lastWriteWins models /start arriving from chat A and
// then chat B: everything after goes to B only.
func TestSubscription_lastWriteWins(t *testing.T) {
	api := &fakeSender{}
	sub := NewSubscription(1)
	notifier := NewNotifier(api, sub)

	sub.Set(100)
	sub.Set(200)
	require.NoError(t, notifier.Notify("after rebind"))

	require.Len(t, api.sent, 1)
	assert.Equal(t, int64(200), api.sent[0].ChatID)
}
