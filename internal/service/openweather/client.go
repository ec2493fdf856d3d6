// Package openweather is a minimal client for the OpenWeatherMap
// current-weather API.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/weatherin/cli/internal/config"
)

// APIError is an unsuccessful (non-2xx) answer from the weather service.
// There is no retry; the caller surfaces it to the operator verbatim.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return "unsuccessful call to the API service"
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.Weather) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// CurrentByID fetches the current weather for a numeric city identifier.
// units is passed through as the API's units query parameter.
func (c *Client) CurrentByID(ctx context.Context, cityID int, units string) (*Current, error) {
	query := url.Values{}
	query.Set("appid", c.apiKey)
	query.Set("id", strconv.Itoa(cityID))
	query.Set("units", units)

	endpoint := fmt.Sprintf("%s/weather?%s", c.baseURL, query.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build weather request")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "call weather service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read weather response")
	}

	var current Current
	if err := json.Unmarshal(body, &current); err != nil {
		return nil, errors.Wrap(err, "parse weather response")
	}

	return &current, nil
}
