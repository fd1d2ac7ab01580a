package nodeclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"
)

var (
	// ErrNullURL ...
	ErrNullURL = errors.New("node url must not be empty")
	// ErrUnexpectedStatus is returned for any non 200 response.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// MaxNumOfFailingRequests ...
	MaxNumOfFailingRequests = 10
	// FailingRatio ...
	FailingRatio = 0.6
)

const (
	defaultTimeout           = 30 * time.Second
	defaultRequestsPerSecond = 10
)

// Client is a REST client of a catapult node.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker
	limiter ratelimit.Limiter
}

type Option func(*Client)

// WithHTTPClient replaces the default http client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// WithRequestsPerSecond caps the rate of requests sent to the node.
func WithRequestsPerSecond(rps int) Option {
	return func(client *Client) {
		if rps > 0 {
			client.limiter = ratelimit.New(rps)
		}
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if len(baseURL) <= 0 {
		return nil, ErrNullURL
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		cb:      newCircuitBreaker(baseURL),
		limiter: ratelimit.New(defaultRequestsPerSecond),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) URL() string {
	return c.baseURL
}

// newCircuitBreaker returns a breaker that opens once more than
// MaxNumOfFailingRequests requests were sent and FailingRatio of them failed.
func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return int(counts.Requests) > MaxNumOfFailingRequests && ratio >= FailingRatio
		},
	})
}

// get decodes the JSON body of GET path into out.
func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	body, err := c.cb.Execute(func() (interface{}, error) {
		c.limiter.Take()
		return c.do(ctx, http.MethodGet, path)
	})
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if err := json.Unmarshal(body.([]byte), out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"%w %d: %s", ErrUnexpectedStatus, resp.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}
	return body, nil
}
