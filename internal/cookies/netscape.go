package cookies

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	netscapeHeader   = "# Netscape HTTP Cookie File"
	httpOnlyPrefix   = "#HttpOnly_"
	netscapeFieldSep = "\t"
)

// WriteNetscape writes cookies in the Netscape cookies.txt format understood
// by curl, wget and browser extensions. Each line has 7 tab-separated fields:
// domain, include-subdomains, path, secure, expiry, name, value.
// HttpOnly cookies get the #HttpOnly_ domain prefix. The expiry is written as
// Unix seconds, or 0 (session cookie) when the expires text cannot be decoded.
func WriteNetscape(w io.Writer, cookies []Cookie) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, netscapeHeader)
	for _, c := range cookies {
		domain := c.Domain
		if c.HttpOnly() {
			domain = httpOnlyPrefix + domain
		}
		var expiry int64
		if t, ok := c.ExpiresAt(); ok {
			expiry = t.Unix()
		}
		fields := []string{
			domain,
			netscapeBool(strings.HasPrefix(c.Domain, ".")),
			c.Path,
			netscapeBool(c.Secure()),
			fmt.Sprintf("%d", expiry),
			c.Name,
			c.Value,
		}
		fmt.Fprintln(bw, strings.Join(fields, netscapeFieldSep))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error: failed to write Netscape cookie file: %w", err)
	}
	return nil
}

func netscapeBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
