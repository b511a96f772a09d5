package cookies

import (
	"strings"
	"time"
)

// expiresLayouts are the date formats servers put in the expires attribute.
var expiresLayouts = []string{
	time.RFC1123,                    // Mon, 02 Jan 2006 15:04:05 MST
	"Mon, 2 Jan 2006 15:04:05 MST",  // single-digit day
	"Mon, 02-Jan-2006 15:04:05 MST", // Netscape draft
	time.RFC850,                     // Monday, 02-Jan-06 15:04:05 MST
	time.ANSIC,                      // Mon Jan _2 15:04:05 2006
	time.RFC1123Z,
}

// ParseExpires decodes the raw text of an expires attribute into a UTC time.
// The weekday is not checked against the date. It only decodes; whether the
// cookie has expired is for the caller to decide.
func ParseExpires(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range expiresLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
