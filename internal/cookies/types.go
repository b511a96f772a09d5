package cookies

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Cookie is a single cookie parsed from a header segment.
// IMPORTANT: Value is SENSITIVE and must never be logged or formatted into
// error messages. Only Name and Domain may appear in debug logs.
//
// The parser never modifies a Cookie after returning it.
type Cookie struct {
	// Name is the text before the first '=' of the leading pair. Never empty.
	Name string `json:"name"`
	// Value is everything after the first '=' of the leading pair, kept
	// verbatim (it may contain further '=' characters). SENSITIVE.
	Value string `json:"value"`
	// Domain is the domain attribute, or the parser's default host when the
	// attribute is missing or empty.
	Domain string `json:"domain"`
	// Path is the path attribute, or "/" when missing or empty.
	Path string `json:"path"`
	// Expires is the raw expires attribute text. Empty when absent.
	Expires string `json:"expires,omitempty"`
	// Attributes holds the other recognized attributes keyed by their
	// lower-case name. Flag attributes such as secure map to "".
	Attributes map[string]string `json:"attributes,omitempty"`
	// Unparsed holds attribute tokens with an unrecognized key.
	Unparsed []string `json:"unparsed,omitempty"`
	// Raw is the trimmed header segment the cookie was built from.
	Raw string `json:"-"`
}

// Recognized attribute keys stored in Cookie.Attributes.
const (
	AttrSecure      = "secure"
	AttrHttpOnly    = "httponly"
	AttrSameSite    = "samesite"
	AttrMaxAge      = "max-age"
	AttrPriority    = "priority"
	AttrPartitioned = "partitioned"
	AttrVersion     = "version"
	AttrComment     = "comment"
)

var recognizedAttrs = map[string]bool{
	AttrSecure:      true,
	AttrHttpOnly:    true,
	AttrSameSite:    true,
	AttrMaxAge:      true,
	AttrPriority:    true,
	AttrPartitioned: true,
	AttrVersion:     true,
	AttrComment:     true,
}

// Attr returns the value of the named attribute and whether it was present.
// Keys are matched case-insensitively. domain and path always report present.
func (c Cookie) Attr(key string) (string, bool) {
	switch key = strings.ToLower(strings.TrimSpace(key)); key {
	case "domain":
		return c.Domain, true
	case "path":
		return c.Path, true
	case "expires":
		return c.Expires, c.Expires != ""
	}
	v, ok := c.Attributes[key]
	return v, ok
}

// Secure reports whether the secure flag was set.
func (c Cookie) Secure() bool {
	_, ok := c.Attributes[AttrSecure]
	return ok
}

// HttpOnly reports whether the httponly flag was set.
func (c Cookie) HttpOnly() bool {
	_, ok := c.Attributes[AttrHttpOnly]
	return ok
}

// MaxAge returns the max-age attribute in seconds.
// The second return value is false when the attribute is absent or not an integer.
func (c Cookie) MaxAge() (int, bool) {
	v, ok := c.Attributes[AttrMaxAge]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ExpiresAt decodes the raw expires text. See ParseExpires.
func (c Cookie) ExpiresAt() (time.Time, bool) {
	return ParseExpires(c.Expires)
}

// HTTPCookie converts c into a *http.Cookie, e.g. for an http.CookieJar.
// Expiry text that cannot be decoded is kept in RawExpires only.
func (c Cookie) HTTPCookie() *http.Cookie {
	hc := &http.Cookie{
		Name:       c.Name,
		Value:      c.Value,
		Path:       c.Path,
		Domain:     c.Domain,
		RawExpires: c.Expires,
		Secure:     c.Secure(),
		HttpOnly:   c.HttpOnly(),
		Raw:        c.Raw,
		Unparsed:   slices.Clone(c.Unparsed),
	}
	if t, ok := c.ExpiresAt(); ok {
		hc.Expires = t
	}
	if n, ok := c.MaxAge(); ok {
		// net/http uses MaxAge<0 for "Max-Age: 0"
		if n <= 0 {
			hc.MaxAge = -1
		} else {
			hc.MaxAge = n
		}
	}
	if v, ok := c.Attributes[AttrSameSite]; ok {
		switch strings.ToLower(v) {
		case "lax":
			hc.SameSite = http.SameSiteLaxMode
		case "strict":
			hc.SameSite = http.SameSiteStrictMode
		case "none":
			hc.SameSite = http.SameSiteNoneMode
		default:
			hc.SameSite = http.SameSiteDefaultMode
		}
	}
	return hc
}
