package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botClient is the slice of tgbotapi.BotAPI the command surface uses.
type botClient interface {
	sender
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// Bot handles the inbound command surface: /start rebinds the subscription,
// /search triggers an immediate cycle. Anyone who can message the bot can
// issue either command.
type Bot struct {
	api      botClient
	sub      *Subscription
	notifier dealNotifier
	search   *FlightSearch
}

func NewBot(api botClient, sub *Subscription, notifier dealNotifier, search *FlightSearch) *Bot {
	return &Bot{
		api:      api,
		sub:      sub,
		notifier: notifier,
		search:   search,
	}
}

// Start runs the long-poll update loop. Commands are handled one at a time;
// scheduled searches run on the cron goroutine and may overlap with them.
func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		switch update.Message.Command() {
		case "start":
			b.handleStart(update.Message)
		case "search":
			b.handleSearch(update.Message)
		}
	}
}

// A failed delivery aborts the rest of the handler; the subscription is
// already rebound by then.
func (b *Bot) handleStart(message *tgbotapi.Message) {
	b.sub.Set(message.Chat.ID)

	if err := b.reply(message.Chat.ID, "👋 Subscribed! I'll send deals here."); err != nil {
		log.Printf("subscribe reply failed: %v", err)
		return
	}

	if err := b.notifier.Notify("✅ Bot is now active."); err != nil {
		log.Printf("activation notice failed: %v", err)
	}
}

func (b *Bot) handleSearch(message *tgbotapi.Message) {
	if err := b.reply(message.Chat.ID, "🔍 Running search…"); err != nil {
		log.Printf("search reply failed: %v", err)
		return
	}

	if _, err := b.search.Run(); err != nil {
		log.Printf("manual search failed: %v", err)
		return
	}

	if err := b.reply(message.Chat.ID, "✅ Done."); err != nil {
		log.Printf("done reply failed: %v", err)
	}
}

func (b *Bot) reply(chatID int64, text string) error {
	_, err := b.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
