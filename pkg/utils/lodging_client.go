package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wayfare/internal/models/response_models"
)

const bookingAPIHost = "booking-com.p.rapidapi.com"

// LodgingClientInterface searches lodging offers for a stay range.
type LodgingClientInterface interface {
	Configured() bool
	SearchLodging(ctx context.Context, destination, checkIn, checkOut string) ([]response_models.HotelOffer, error)
}

// BookingClient queries the Booking.com search API through RapidAPI.
type BookingClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewBookingClient(apiKey string) *BookingClient {
	return &BookingClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *BookingClient) Configured() bool {
	return c.apiKey != ""
}

type bookingSearchResponse struct {
	Result []struct {
		HotelName      string `json:"hotel_name"`
		URL            string `json:"url"`
		PriceBreakdown struct {
			AllInclusiveAmount struct {
				Value json.Number `json:"value"`
			} `json:"all_inclusive_amount"`
		} `json:"price_breakdown"`
	} `json:"result"`
}

func (c *BookingClient) SearchLodging(ctx context.Context, destination, checkIn, checkOut string) ([]response_models.HotelOffer, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("lodging search not configured")
	}

	params := url.Values{}
	params.Set("dest_id", destination)
	params.Set("checkin_date", checkIn)
	params.Set("checkout_date", checkOut)
	params.Set("adults_number", "1")
	params.Set("room_number", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://"+bookingAPIHost+"/v1/hotels/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", bookingAPIHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("lodging search error (%d): %s", resp.StatusCode, string(body))
	}

	var parsed bookingSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse lodging results: %w", err)
	}

	offers := make([]response_models.HotelOffer, 0, len(parsed.Result))
	for _, item := range parsed.Result {
		name := item.HotelName
		if name == "" {
			name = "Hotel Name Not Available"
		}
		price := item.PriceBreakdown.AllInclusiveAmount.Value.String()
		if price == "" {
			price = "Price not available"
		}
		link := item.URL
		if link == "" {
			link = "#"
		}
		offers = append(offers, response_models.HotelOffer{
			Name:  name,
			Price: price,
			Link:  link,
		})
	}

	return offers, nil
}
