package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/idna"

	"github.com/warpdl/warpcookie/internal/cookies"
)

// ErrInvalidURL is returned for URLs that are not absolute http(s) URLs.
var ErrInvalidURL = errors.New("invalid URL")

// Result is what a fetch hands to the cookie parser.
type Result struct {
	// Header is the response's Set-Cookie values joined with commas.
	Header string
	// Host is the ASCII (IDNA) form of the request host, usable as the
	// parser's default host.
	Host string
	// Status is the HTTP status code of the final response.
	Status int
}

// NormalizeHost returns the lower-case ASCII form of host, converting
// internationalized names to punycode. IP addresses are returned as-is.
func NormalizeHost(host string) (string, error) {
	host = strings.TrimSuffix(strings.TrimSpace(host), ".")
	if host == "" {
		return "", fmt.Errorf("%w: empty host", ErrInvalidURL)
	}
	if net.ParseIP(host) != nil {
		return host, nil
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: host %q: %w", ErrInvalidURL, host, err)
	}
	return strings.ToLower(ascii), nil
}

// SetCookieHeader sends a GET request for rawURL with the given extra
// headers and returns the response cookies in legacy comma-joined form.
// A response without Set-Cookie headers yields an empty Header. Non-2xx/3xx
// statuses are not errors; the caller decides via Result.Status.
func SetCookieHeader(ctx context.Context, client *http.Client, rawURL string, headers http.Header) (*Result, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	host, err := NormalizeHost(u.Hostname())
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return &Result{
		Header: cookies.JoinSetCookie(resp.Header.Values("Set-Cookie")),
		Host:   host,
		Status: resp.StatusCode,
	}, nil
}
