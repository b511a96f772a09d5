package cmd

import (
	"fmt"
	"net/http"
	"strings"
)

// ParseCookieFlags converts --cookie flag values into a Cookie request header value.
// Input: ["session=abc", "user=xyz"]
// Output: "session=abc; user=xyz"
//
// Returns "" if flags is empty.
// Returns an error if any cookie is malformed (missing '=' or empty name).
func ParseCookieFlags(flags []string) (string, error) {
	if len(flags) == 0 {
		return "", nil
	}

	var cookies []string
	for _, flag := range flags {
		trimmed := strings.TrimSpace(flag)
		name, _, ok := strings.Cut(trimmed, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return "", fmt.Errorf("invalid cookie format: %q (expected 'name=value')", flag)
		}
		cookies = append(cookies, trimmed)
	}
	return strings.Join(cookies, "; "), nil
}

// ParseHeaderFlags converts --header flag values ("Key: Value") into an http.Header.
func ParseHeaderFlags(flags []string) (http.Header, error) {
	h := make(http.Header, len(flags))
	for _, flag := range flags {
		key, value, ok := strings.Cut(flag, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid header format: %q (expected 'Key: Value')", flag)
		}
		h.Add(key, strings.TrimSpace(value))
	}
	return h, nil
}

// requestHeaders merges --header and --cookie flags into the headers sent by fetch.
func requestHeaders(headerFlags, cookieFlags []string) (http.Header, error) {
	h, err := ParseHeaderFlags(headerFlags)
	if err != nil {
		return nil, err
	}
	cookie, err := ParseCookieFlags(cookieFlags)
	if err != nil {
		return nil, err
	}
	if cookie != "" {
		h.Set("Cookie", cookie)
	}
	return h, nil
}
