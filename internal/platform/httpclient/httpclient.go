// Package httpclient es el cliente JSON de solo lectura que usan los
// importadores (cmd/seed) para hablar con APIs externas.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	DefaultTimeout = 10 * time.Second

	// maxBody corta respuestas patológicas; una página de SWAPI ronda los 10KB.
	maxBody = 1 << 20
)

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	// Transport opcional (tests).
	Transport http.RoundTripper
}

type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

func New(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	tr := opts.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}

	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base != "" {
		if _, err := url.ParseRequestURI(base); err != nil {
			return nil, fmt.Errorf("invalid base url: %w", err)
		}
	}

	return &Client{
		http:      &http.Client{Timeout: opts.Timeout, Transport: tr},
		baseURL:   base,
		userAgent: opts.UserAgent,
	}, nil
}

// StatusError es una respuesta no-2xx.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.StatusCode, e.Body)
}

// GetJSON hace GET sobre una URL absoluta o un path relativo a BaseURL
// y decodifica el body en out.
func (c *Client) GetJSON(ctx context.Context, pathOrURL string, out any) error {
	if c == nil || c.http == nil {
		return errors.New("httpclient: nil client")
	}

	full, err := c.resolve(pathOrURL)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, full, nil)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: GET %s: %w", full, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{URL: full, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", full, err)
	}
	return nil
}

func (c *Client) resolve(pathOrURL string) (string, error) {
	p := strings.TrimSpace(pathOrURL)
	if p == "" {
		return "", errors.New("httpclient: empty url")
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p, nil
	}
	if c.baseURL == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return c.baseURL + p, nil
}
