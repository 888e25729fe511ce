// Package remote talks to the designer API over HTTP.
package remote

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

	"designer-shortlist/internal/domain"
	"designer-shortlist/internal/pkg/apperr"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout  = 10 * time.Second
	maxBodyBytes    = 4 << 20
	requestIDHeader = "X-Request-Id"
)

// Client implements the catalog and shortlist request capabilities.
// Every call is bounded by Timeout (limiter wait included); an expired call is a transport failure.
type Client struct {
	BaseURL string // e.g. http://localhost:5000/api
	Timeout time.Duration
	HTTP    *http.Client
	Limiter *rate.Limiter // optional
}

// New returns a client for baseURL. ratePerSecond <= 0 disables rate limiting.
func New(baseURL string, timeout time.Duration, ratePerSecond float64) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
		HTTP:    &http.Client{},
	}
	if ratePerSecond > 0 {
		c.Limiter = rate.NewLimiter(rate.Limit(ratePerSecond), 1)
	}
	return c
}

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type shortlistRequest struct {
	DesignerID int64                  `json:"designer_id"`
	Action     domain.ShortlistAction `json:"action"`
	UserID     string                 `json:"user_id"`
}

// FetchCatalog GET {base}/designers
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.Listing, error) {
	env, err := c.do(ctx, http.MethodGet, "/designers", nil)
	if err != nil {
		return nil, err
	}
	return decodeListings(env)
}

// FetchFavorites GET {base}/shortlist/{userID}
func (c *Client) FetchFavorites(ctx context.Context, userID string) ([]domain.Listing, error) {
	env, err := c.do(ctx, http.MethodGet, "/shortlist/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeListings(env)
}

// UpdateShortlist POST {base}/shortlist
func (c *Client) UpdateShortlist(ctx context.Context, designerID int64, action domain.ShortlistAction, userID string) error {
	_, err := c.do(ctx, http.MethodPost, "/shortlist", shortlistRequest{
		DesignerID: designerID,
		Action:     action,
		UserID:     userID,
	})
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %s %s: rate limit wait: %v", apperr.ErrTransport, method, path, err)
		}
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: encode request: %v", apperr.ErrProtocol, err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", apperr.ErrTransport, method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.New().String())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", apperr.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: read body: %v", apperr.ErrTransport, method, path, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Error
		if decodeErr != nil || msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s %s: status %d: %s", apperr.ErrProtocol, method, path, resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %s %s: decode: %v", apperr.ErrProtocol, method, path, decodeErr)
	}
	if env.Success == nil {
		return nil, fmt.Errorf("%w: %s %s: response has no success flag", apperr.ErrProtocol, method, path)
	}
	if !*env.Success {
		msg := env.Error
		if msg == "" {
			msg = "request failed"
		}
		return nil, fmt.Errorf("%w: %s %s: %s", apperr.ErrProtocol, method, path, msg)
	}
	return &env, nil
}

var errNoData = errors.New("response has no data array")

func decodeListings(env *envelope) ([]domain.Listing, error) {
	trimmed := bytes.TrimSpace(env.Data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: %v", apperr.ErrProtocol, errNoData)
	}
	var listings []domain.Listing
	if err := json.Unmarshal(trimmed, &listings); err != nil {
		return nil, fmt.Errorf("%w: decode listings: %v", apperr.ErrProtocol, err)
	}
	return listings, nil
}
