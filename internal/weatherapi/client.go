// Package weatherapi queries the WeatherAPI.com current.json endpoint.
package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weatherdash/internal/domain"
)

// DefaultBaseURL is the public API root
const DefaultBaseURL = "https://api.weatherapi.com/v1"

// maxBodySize caps how much of a response is read
const maxBodySize = 1 << 20

// HTTPClient is the subset of *http.Client used by Client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Params holds parameters for creating a Client
type Params struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient HTTPClient
	Logger     *zap.Logger
}

// Client fetches current conditions for a city
type Client struct {
	apiKey  string
	baseURL string
	http    HTTPClient
	logger  *zap.Logger
}

// providerError is the JSON error payload returned on non-2xx responses
type providerError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// New returns a Client, or an error if the API key is not set
func New(p Params) (*Client, error) {
	if strings.TrimSpace(p.APIKey) == "" {
		return nil, &Error{Kind: KindConfig, Message: "WEATHER_API_KEY is not set"}
	}

	baseURL := strings.TrimRight(p.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := p.HTTPClient
	if httpClient == nil {
		timeout := p.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		apiKey:  p.APIKey,
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger.Named("weatherapi"),
	}, nil
}

// Current fetches the current conditions for city. No retries are attempted.
func (c *Client) Current(ctx context.Context, city string) (*domain.Report, error) {
	reqID := uuid.NewString()
	log := c.logger.With(zap.String("request_id", reqID), zap.String("city", city))

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", city)
	endpoint := c.baseURL + "/current.json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Message: UnexpectedMessage, Cause: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("weather request failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return nil, &Error{Kind: KindTransport, Message: FallbackMessage, Cause: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Debug("failed to close response body", zap.Error(closeErr))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Warn("failed to read weather response", zap.Int("status", resp.StatusCode), zap.Error(err))
		return nil, &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Message: FallbackMessage, Cause: err}
	}

	log.Info("weather response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.Int("bytes", len(body)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseProviderError(resp.StatusCode, body)
	}

	report := &domain.Report{}
	if err := json.Unmarshal(body, report); err != nil {
		log.Error("failed to decode weather response", zap.Error(err))
		return nil, &Error{Kind: KindDecode, StatusCode: resp.StatusCode, Message: UnexpectedMessage, Cause: err}
	}
	if report.Location.Name == "" {
		return nil, &Error{
			Kind:       KindDecode,
			StatusCode: resp.StatusCode,
			Message:    UnexpectedMessage,
			Cause:      errors.New("response has no location"),
		}
	}
	report.Raw = body

	return report, nil
}

// parseProviderError builds the error for a non-2xx response, preferring
// the provider's own message
func parseProviderError(status int, body []byte) *Error {
	apiErr := &Error{
		Kind:       KindProvider,
		StatusCode: status,
		Message:    FallbackMessage,
	}

	var payload providerError
	if err := json.Unmarshal(body, &payload); err != nil {
		apiErr.Cause = fmt.Errorf("status %d %s", status, http.StatusText(status))
		return apiErr
	}
	if msg := strings.TrimSpace(payload.Error.Message); msg != "" {
		apiErr.Message = msg
	}
	apiErr.Code = payload.Error.Code
	return apiErr
}
