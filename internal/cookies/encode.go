package cookies

import "strings"

// RequestHeader builds an HTTP Cookie request header value from cookies.
// Format: "name1=val1; name2=val2"
func RequestHeader(cookies []Cookie) string {
	if len(cookies) == 0 {
		return ""
	}

	parts := make([]string, len(cookies))
	for i, c := range cookies {
		parts[i] = c.Name + "=" + c.Value
	}
	return strings.Join(parts, "; ")
}

// JoinSetCookie folds several Set-Cookie header values into the legacy
// single-header form accepted by ParseHeader. Blank values are dropped.
func JoinSetCookie(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ",")
}
