// Package oracle fetches token prices from an HTTP price service.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownSymbol   = errors.New("oracle: unknown symbol")
	ErrInvalidResponse = errors.New("oracle: invalid response")
)

const maxResponseBytes = 1 << 16

// Client implements usecase.PriceOracle against
// GET {baseURL}/prices/{SYMBOL}, which answers {"symbol": "BTC", "price": "65000.12"}.
// The price may be a JSON string or number. It is parsed as an exact decimal
// and returned in plain notation, so exponent forms such as 6.5e4 are expanded
// and no precision is lost to floating point.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries uint64
	backoff    func() backoff.BackOff
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.httpClient = c }
}

// WithMaxRetries bounds the retries of transient failures.
func WithMaxRetries(n uint64) Option {
	return func(client *Client) { client.maxRetries = n }
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger zerolog.Logger) Option {
	return func(client *Client) { client.logger = logger }
}

// NewClient creates a new Client. timeout bounds each HTTP attempt.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxRetries: 3,
		logger:     zerolog.Nop(),
		backoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 100 * time.Millisecond
			b.MaxInterval = 2 * time.Second
			return b
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type priceResponse struct {
	Symbol string      `json:"symbol"`
	Price  json.Number `json:"price"`
}

// GetTokenPriceBySymbol returns the fiat price of one whole token as a
// decimal string.
func (c *Client) GetTokenPriceBySymbol(ctx context.Context, symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", fmt.Errorf("%w: empty symbol", ErrUnknownSymbol)
	}

	endpoint := c.baseURL + "/prices/" + url.PathEscape(symbol)
	policy := backoff.WithContext(backoff.WithMaxRetries(c.backoff(), c.maxRetries), ctx)

	var price string
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		p, err := c.fetch(ctx, endpoint)
		if err != nil {
			var perm *backoff.PermanentError
			if !errors.As(err, &perm) {
				c.logger.Warn().
					Err(err).
					Str("symbol", symbol).
					Int("attempt", attempt).
					Msg("price oracle request failed, retrying")
			}
			return err
		}
		price = p
		return nil
	}, policy)
	if err != nil {
		return "", err
	}

	return price, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", backoff.Permanent(ctx.Err())
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", backoff.Permanent(fmt.Errorf("%w: %s", ErrUnknownSymbol, endpoint))
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", fmt.Errorf("oracle: status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", backoff.Permanent(fmt.Errorf("%w: status %d", ErrInvalidResponse, resp.StatusCode))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload priceResponse
	if err := dec.Decode(&payload); err != nil {
		return "", backoff.Permanent(fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}
	if payload.Price == "" {
		return "", backoff.Permanent(fmt.Errorf("%w: missing price", ErrInvalidResponse))
	}

	price, err := decimal.NewFromString(payload.Price.String())
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("%w: %v", ErrInvalidResponse, err))
	}
	return price.String(), nil
}
