package printer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API defines the printer operations the panel depends on. This
// interface is implemented by *Client and can be substituted in tests.
type API interface {
	FetchStatus(ctx context.Context) (Status, error)
	StartPrint(ctx context.Context, filename, slot string) error
	CancelPrint(ctx context.Context) error
	SetLight(ctx context.Context, state Light) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the kiosk printer HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBind   = "127.0.0.1:5000"
	defaultUserAgent = "kiosk/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchStatus retrieves the device status snapshot.
func (c *Client) FetchStatus(ctx context.Context) (Status, error) {
	if c == nil {
		return Status{}, fmt.Errorf("client is nil")
	}
	var payload StatusResponse
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &payload); err != nil {
		return Status{}, err
	}
	if !payload.Success {
		return Status{}, &APIError{Op: "status", Message: payload.Error}
	}
	if payload.Status == nil {
		return Status{}, nil
	}
	return *payload.Status, nil
}

// StartPrint submits a print job for the named file and AMS slot.
func (c *Client) StartPrint(ctx context.Context, filename, slot string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	body := printRequest{Filename: filename, AMSSlot: slot}
	var payload CommandResponse
	if err := c.do(ctx, http.MethodPost, "/api/print", body, &payload); err != nil {
		return err
	}
	if !payload.Success {
		return &APIError{Op: "print", Message: payload.Error}
	}
	return nil
}

// CancelPrint aborts the current print job.
func (c *Client) CancelPrint(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	var payload CommandResponse
	if err := c.do(ctx, http.MethodPost, "/api/cancel", nil, &payload); err != nil {
		return err
	}
	if !payload.Success {
		return &APIError{Op: "cancel", Message: payload.Error}
	}
	return nil
}

// SetLight switches the chamber light to the given state.
func (c *Client) SetLight(ctx context.Context, state Light) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if state != LightOn && state != LightOff {
		return fmt.Errorf("invalid light state %q", state)
	}
	var payload CommandResponse
	if err := c.do(ctx, http.MethodGet, "/api/light/"+string(state), nil, &payload); err != nil {
		return err
	}
	if !payload.Success {
		return &APIError{Op: "light", Message: payload.Error}
	}
	return nil
}

// do issues one request and decodes the JSON response into dest. The
// kiosk server reports command failures as JSON bodies on 4xx/5xx
// responses, so decoding is attempted regardless of status code; the
// status code only matters when the body is not well-formed JSON.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		if resp.StatusCode >= 400 {
			return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	if u.Host == "" {
		return nil, fmt.Errorf("api_bind %q missing host", apiBind)
	}
	return u, nil
}
