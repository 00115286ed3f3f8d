package main

import (
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
)

// priceThreshold is the combined round-trip budget for all travellers, EUR.
const priceThreshold = 1000

// Place is an airport code with its display name.
type Place struct {
	Code string
	Name string
}

// DateWindow is one departure/return pair with a human-readable label.
type DateWindow struct {
	Departure string
	Return    string
	Display   string
}

var origins = []Place{
	{Code: "BER", Name: "Berlin"},
	{Code: "IST", Name: "Istanbul"},
}

var destinations = []Place{
	{Code: "TGD", Name: "Podgorica"},
	{Code: "TIV", Name: "Tivat"},
	{Code: "BEG", Name: "Belgrade"},
	{Code: "TIA", Name: "Tirana"},
}

var dateWindows = []DateWindow{
	{Departure: "2025-07-05", Return: "2025-07-12", Display: "5–12 Jul 2025"},
	{Departure: "2025-07-05", Return: "2025-07-13", Display: "5–13 Jul 2025"},
}

// fareAPI is what FlightSearch needs from the Amadeus client.
type fareAPI interface {
	Token() (string, error)
	CheapestFare(token string, origin, dest Place, window DateWindow) float64
}

type dealNotifier interface {
	Notify(text string) error
}

// FlightSearch sweeps every date window × destination pair and notifies on
// each one whose combined per-origin fares come in under budget.
type FlightSearch struct {
	api       fareAPI
	notifier  dealNotifier
	serialize bool
	mu        sync.Mutex
}

func NewFlightSearch(config *AppConfig, api fareAPI, notifier dealNotifier) *FlightSearch {
	return &FlightSearch{
		api:       api,
		notifier:  notifier,
		serialize: config.SerializeSearches,
	}
}

// Run executes one full search cycle and reports whether any deal was
// found. The returned error is a notification delivery failure; it aborts
// the rest of the cycle. A token failure only aborts this cycle: it is
// logged and the cycle reports no deal.
func (fs *FlightSearch) Run() (bool, error) {
	if fs.serialize {
		fs.mu.Lock()
		defer fs.mu.Unlock()
	}

	token, err := fs.api.Token()
	if err != nil {
		log.Printf("search aborted: %v", err)
		return false, nil
	}

	found := false
	for _, window := range dateWindows {
		for _, dest := range destinations {
			prices := make(map[string]float64, len(origins))
			for _, origin := range origins {
				prices[origin.Name] = fs.api.CheapestFare(token, origin, dest, window)
			}

			// A pair qualifies only when every origin produced a usable
			// fare and the combined total is under budget.
			total := 0.0
			usable := true
			for _, origin := range origins {
				price := prices[origin.Name]
				if math.IsInf(price, 1) {
					usable = false
					break
				}
				total += price
			}
			if !usable || total >= priceThreshold {
				continue
			}

			if err := fs.notifier.Notify(formatDeal(dest, window, prices, total)); err != nil {
				return found, fmt.Errorf("deal notification: %w", err)
			}
			found = true
		}
	}

	if !found {
		if err := fs.notifier.Notify("🔎 No deals found – I'll keep trying!"); err != nil {
			return false, fmt.Errorf("summary notification: %w", err)
		}
	}

	return found, nil
}

func formatDeal(dest Place, window DateWindow, prices map[string]float64, total float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🎉 *Deal!* %s\n", dest.Name)
	fmt.Fprintf(&sb, "📅 Dates: *%s*\n", window.Display)
	fmt.Fprintf(&sb, "💶 Total: *%.2f €*", total)
	for _, origin := range origins {
		fmt.Fprintf(&sb, "\n  – %s: %.2f €", origin.Name, prices[origin.Name])
	}

	return sb.String()
}
