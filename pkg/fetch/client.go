package fetch

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"
)

var (
	ErrInvalidProxyURL   = errors.New("invalid proxy URL")
	ErrUnsupportedScheme = errors.New("unsupported scheme")
)

var supportedProxySchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"socks5": true,
}

// ClientOpts configures NewClient. The zero value gives a client without a
// proxy or timeout that does not follow redirects.
type ClientOpts struct {
	// ProxyURL routes requests through an http, https or socks5 proxy.
	ProxyURL string
	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration
	// FollowRedirects makes the client follow up to MaxRedirects hops.
	// Set-Cookie headers of intermediate responses are lost when following,
	// so login endpoints usually want this off.
	FollowRedirects bool
	// MaxRedirects defaults to DefaultMaxRedirects when zero.
	MaxRedirects int
}

// NewClient creates an HTTP client configured by opts. A nil opts is the
// same as the zero value.
func NewClient(opts *ClientOpts) (*http.Client, error) {
	if opts == nil {
		opts = &ClientOpts{}
	}
	client := &http.Client{Timeout: opts.Timeout}

	if opts.FollowRedirects {
		max := opts.MaxRedirects
		if max <= 0 {
			max = DefaultMaxRedirects
		}
		client.CheckRedirect = RedirectPolicy(max)
	} else {
		client.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	if opts.ProxyURL == "" {
		return client, nil
	}

	parsed, err := url.Parse(opts.ProxyURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, ErrInvalidProxyURL
	}
	if !supportedProxySchemes[parsed.Scheme] {
		return nil, ErrUnsupportedScheme
	}

	transport := &http.Transport{}
	if parsed.Scheme == "socks5" {
		var auth *proxy.Auth
		if parsed.User != nil {
			pass, _ := parsed.User.Password()
			auth = &proxy.Auth{
				User:     parsed.User.Username(),
				Password: pass,
			}
		}
		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return nil, err
		}
		transport.Dial = dialer.Dial
	} else {
		transport.Proxy = http.ProxyURL(parsed)
	}
	client.Transport = transport
	return client, nil
}
