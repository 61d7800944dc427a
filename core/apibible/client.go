// Package apibible is the boundary to the Api.Bible scripture service. All
// remote failures (transport errors, bad HTTP status, malformed JSON, error
// envelopes) collapse to a nil response at this layer; callers treat nil as
// "no data" and never see an error value.
package apibible

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/openscripture/berea/core/cache"
	"github.com/openscripture/berea/internal/logging"
)

const (
	// DefaultBaseURL is the production Api.Bible endpoint.
	DefaultBaseURL = "https://api.scripture.api.bible/v1/"

	// CacheTag groups every cached API response for bulk invalidation.
	CacheTag = "CacheItems_ApiDotBible"

	defaultTimeout = 30 * time.Second
)

// Envelope is the common response wrapper: a payload plus optional metadata.
type Envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *Meta           `json:"meta,omitempty"`
}

// Meta carries response metadata. FumsToken feeds the publisher's usage
// reporting script.
type Meta struct {
	FumsToken string `json:"fumsToken"`
}

// Decode unmarshals the payload into v.
func (e *Envelope) Decode(v any) error {
	return json.Unmarshal(e.Data, v)
}

// responseBody is the full wire shape, including the error envelope the
// service returns alongside a null data field.
type responseBody struct {
	Data       json.RawMessage `json:"data"`
	Meta       *Meta           `json:"meta"`
	StatusCode int             `json:"statusCode"`
	Error      string          `json:"error"`
	Message    string          `json:"message"`
}

// Client calls the Api.Bible service with an API key credential and an
// optional cache store for memoizing responses.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	store   *cache.Store
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the service endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithStore enables response caching through the given store.
func WithStore(store *cache.Store) Option {
	return func(c *Client) { c.store = store }
}

// New creates a client for the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured service endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call performs a GET against path (relative to the base URL) with the given
// query parameters. Any failure returns nil after logging the full request
// context.
func (c *Client) Call(ctx context.Context, path string, params url.Values) *Envelope {
	if logging.GetRequestID(ctx) == "" {
		ctx = logging.WithRequestID(ctx, uuid.NewString())
	}

	requestURL := c.baseURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logging.APIError(ctx, requestURL, err)
		return nil
	}
	req.Header.Set("api-key", c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.APIError(ctx, requestURL, err)
		return nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.APIError(ctx, requestURL, err, "status_code", resp.StatusCode)
		return nil
	}
	logging.APIRequest(ctx, http.MethodGet, requestURL, resp.StatusCode, time.Since(start))

	var decoded responseBody
	if err := json.Unmarshal(body, &decoded); err != nil {
		logging.APIError(ctx, requestURL, err, "status_code", resp.StatusCode)
		return nil
	}
	if decoded.Data == nil && decoded.Error != "" {
		logging.APIError(ctx, requestURL, nil,
			"api_status", decoded.StatusCode,
			"api_error", decoded.Error,
			"api_message", decoded.Message)
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		logging.APIError(ctx, requestURL, nil, "status_code", resp.StatusCode)
		return nil
	}
	return &Envelope{Data: decoded.Data, Meta: decoded.Meta}
}

// CallAndCache memoizes Call under the full request URL without its query
// parameters; callers that need distinct cache entries per parameter set
// embed the parameters in the path. Nil responses are cached for
// cache.ShortTTL so transient failures retry quickly. Without a store this
// is a plain Call.
func (c *Client) CallAndCache(ctx context.Context, path string, params url.Values) *Envelope {
	if c.store == nil {
		return c.Call(ctx, path, params)
	}
	key := c.baseURL + path
	return cache.Get(c.store, key, []string{CacheTag}, func() (*Envelope, cache.Outcome) {
		env := c.Call(ctx, path, params)
		if env == nil {
			return nil, cache.OutcomeEmpty
		}
		return env, cache.OutcomeOK
	})
}
