package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultMaxRedirects matches Go's default http.Client behavior.
const DefaultMaxRedirects = 10

// ErrTooManyRedirects is returned when a redirect chain exceeds the configured max hops.
var ErrTooManyRedirects = errors.New("redirect loop detected")

// safeHeaders survive cross-origin redirects.
var safeHeaders = map[string]bool{
	"User-Agent":      true,
	"Accept":          true,
	"Accept-Language": true,
	"Accept-Encoding": true,
}

// RedirectPolicy returns a CheckRedirect function that enforces a maximum
// number of hops and strips caller headers (Cookie included) when a redirect
// leaves the original host.
func RedirectPolicy(maxRedirects int) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("%w: exceeded %d hops (last URL: %s)",
				ErrTooManyRedirects, maxRedirects, via[len(via)-1].URL.String())
		}
		if len(via) > 0 && via[len(via)-1].URL.Host != req.URL.Host {
			for key := range req.Header {
				if !safeHeaders[http.CanonicalHeaderKey(key)] {
					req.Header.Del(key)
				}
			}
		}
		return nil
	}
}
