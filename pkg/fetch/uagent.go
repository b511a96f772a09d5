package fetch

import "strings"

// DefaultUserAgent is sent when the request headers carry no User-Agent.
const DefaultUserAgent = "WarpCookie/1.0"

// UserAgents maps the short names accepted by UserAgent to full strings.
var UserAgents = map[string]string{
	"warp":    DefaultUserAgent,
	"firefox": "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0",
	"chrome":  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
}

// UserAgent resolves a short name ("chrome", "firefox", "warp") to its
// user agent string. Any other value is returned unchanged.
func UserAgent(s string) string {
	if ua, ok := UserAgents[strings.ToLower(s)]; ok {
		return ua
	}
	return s
}
