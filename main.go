package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	config := loadConfig()

	log.Println("🚀 Starting flight hunter bot...")

	api, err := tgbotapi.NewBotAPI(config.TelegramToken)
	if err != nil {
		log.Fatalf("telegram init: %v", err)
	}
	log.Printf("Authorized as @%s", api.Self.UserName)

	sub := NewSubscription(config.ChatID)
	notifier := NewNotifier(api, sub)
	search := NewFlightSearch(config, NewAmadeusClient(config), notifier)

	scheduler := NewScheduler(search)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer scheduler.Stop()

	bot := NewBot(api, sub, notifier, search)
	bot.Start()
}
