package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	amadeusTokenURL  = "https://test.api.amadeus.com/v1/security/oauth2/token"
	amadeusFlightURL = "https://test.api.amadeus.com/v2/shopping/flight-offers"

	adultsPerOrigin = 2
	maxOffers       = 10
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type offersResponse struct {
	Data []struct {
		Price struct {
			Total string `json:"total"`
		} `json:"price"`
	} `json:"data"`
}

// AmadeusClient talks to the Amadeus self-service flight APIs.
type AmadeusClient struct {
	client    *http.Client
	tokenURL  string
	flightURL string
	apiKey    string
	apiSecret string
}

func NewAmadeusClient(config *AppConfig) *AmadeusClient {
	return &AmadeusClient{
		client:    &http.Client{},
		tokenURL:  amadeusTokenURL,
		flightURL: amadeusFlightURL,
		apiKey:    config.AmadeusAPIKey,
		apiSecret: config.AmadeusAPISecret,
	}
}

// Token exchanges the API key/secret for a short-lived bearer token.
// Tokens are not cached; every search cycle fetches a fresh one.
func (a *AmadeusClient) Token() (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.apiKey)
	form.Set("client_secret", a.apiSecret)

	resp, err := a.client.Post(a.tokenURL, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("amadeus token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("Amadeus auth error: %s: %s", resp.Status, body)
		return "", fmt.Errorf("amadeus token: unexpected status %s", resp.Status)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("amadeus token decode: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("amadeus token: no access_token in response")
	}

	return token.AccessToken, nil
}

// unavailable marks an origin with no usable offer. Lookup failures and
// empty result sets are indistinguishable to callers.
func unavailable() float64 { return math.Inf(1) }

// CheapestFare returns the lowest round-trip total for one origin,
// destination and date window, or unavailable() when nothing usable
// came back.
func (a *AmadeusClient) CheapestFare(token string, origin, dest Place, window DateWindow) float64 {
	params := url.Values{}
	params.Set("originLocationCode", origin.Code)
	params.Set("destinationLocationCode", dest.Code)
	params.Set("departureDate", window.Departure)
	params.Set("returnDate", window.Return)
	params.Set("adults", strconv.Itoa(adultsPerOrigin))
	params.Set("max", strconv.Itoa(maxOffers))

	req, err := http.NewRequest(http.MethodGet, a.flightURL+"?"+params.Encode(), nil)
	if err != nil {
		log.Printf("%s→%s error: %v", origin.Code, dest.Code, err)
		return unavailable()
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("%s→%s error: %v", origin.Code, dest.Code, err)
		return unavailable()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("%s→%s error: unexpected status %s", origin.Code, dest.Code, resp.Status)
		return unavailable()
	}

	var offers offersResponse
	if err := json.NewDecoder(resp.Body).Decode(&offers); err != nil {
		log.Printf("%s→%s error: %v", origin.Code, dest.Code, err)
		return unavailable()
	}

	cheapest := unavailable()
	for _, offer := range offers.Data {
		total, err := strconv.ParseFloat(offer.Price.Total, 64)
		if err != nil {
			log.Printf("%s→%s error: bad total %q: %v", origin.Code, dest.Code, offer.Price.Total, err)
			return unavailable()
		}
		if total < cheapest {
			cheapest = total
		}
	}

	return cheapest
}
