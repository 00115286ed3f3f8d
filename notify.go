package main

import (
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Subscription owns the chat the bot notifies. /start rebinds it; the last
// writer wins.
type Subscription struct {
	mu     sync.Mutex
	chatID int64
}

func NewSubscription(chatID int64) *Subscription {
	return &Subscription{chatID: chatID}
}

func (s *Subscription) ChatID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatID
}

func (s *Subscription) Set(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatID = chatID
}

// sender is the slice of tgbotapi.BotAPI the notifier uses.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// markdownEscaper escapes every character the MarkdownV2 dialect reserves.
var markdownEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

func escapeMarkdownV2(text string) string {
	return markdownEscaper.Replace(text)
}

// Notifier delivers messages to the subscribed chat.
type Notifier struct {
	api sender
	sub *Subscription
}

func NewNotifier(api sender, sub *Subscription) *Notifier {
	return &Notifier{api: api, sub: sub}
}

// Notify escapes text for MarkdownV2 and sends it to the subscribed chat.
// Delivery errors are returned to the caller unwrapped; there is no retry.
func (n *Notifier) Notify(text string) error {
	msg := tgbotapi.NewMessage(n.sub.ChatID(), escapeMarkdownV2(text))
	msg.ParseMode = "MarkdownV2"

	_, err := n.api.Send(msg)
	return err
}
