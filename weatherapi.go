package tripmate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

const (
	weatherAPIBaseURL = "https://api.weatherapi.com/v1"

	// Bound on a single provider call. One attempt, no retries; a timed-out
	// call surfaces as a TransportError.
	weatherAPITimeout = 10 * time.Second
)

// WeatherAPI is a minimal client for the WeatherAPI.com current-conditions
// endpoint. The response contract is untyped on purpose: callers pull the
// fields they need out of the gjson document and treat anything missing as
// a fault.
type WeatherAPI struct {
	key     string
	baseURL string
	client  *http.Client
}

// NewWeatherAPI builds a client for the public WeatherAPI.com endpoint. The
// key is stored as-is and never validated locally.
func NewWeatherAPI(key string) *WeatherAPI {
	return NewWeatherAPIWithBaseURL(key, weatherAPIBaseURL)
}

// NewWeatherAPIWithBaseURL points the client at an alternate endpoint.
// Tests use this to target a stub server.
func NewWeatherAPIWithBaseURL(key, baseURL string) *WeatherAPI {
	return &WeatherAPI{
		key:     key,
		baseURL: baseURL,
		client:  &http.Client{Timeout: weatherAPITimeout},
	}
}

// Current fetches current conditions for a city. The city is free text and
// passed through untouched; whether it resolves is the provider's call.
func (w *WeatherAPI) Current(ctx context.Context, city string) (gjson.Result, error) {
	endpoint := fmt.Sprintf("%s/current.json?key=%s&q=%s",
		w.baseURL, url.QueryEscape(w.key), url.QueryEscape(city))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return gjson.Result{}, &TransportError{Err: err}
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return gjson.Result{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, &ProviderError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, &TransportError{Err: err}
	}
	return gjson.ParseBytes(body), nil
}
