package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig holds everything read from the environment at startup.
type AppConfig struct {
	TelegramToken    string
	ChatID           int64
	AmadeusAPIKey    string
	AmadeusAPISecret string

	// SerializeSearches makes a manual /search wait for an in-flight
	// scheduled cycle instead of overlapping with it.
	SerializeSearches bool
}

func loadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using environment variables")
	}

	return &AppConfig{
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		ChatID:            parseChatID(os.Getenv("CHAT_ID")),
		AmadeusAPIKey:     os.Getenv("AMADEUS_API_KEY"),
		AmadeusAPISecret:  os.Getenv("AMADEUS_API_SECRET"),
		SerializeSearches: getEnvBool("SERIALIZE_SEARCHES", false),
	}
}

// parseChatID tolerates an unset or malformed CHAT_ID. Sends to chat 0 fail
// downstream, same as any other missing credential.
func parseChatID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
