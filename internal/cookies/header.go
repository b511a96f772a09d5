package cookies

import (
	"errors"
	"strings"

	"github.com/warpdl/warpcookie/pkg/logger"
)

// ErrEmptyHost is returned when the default host used as the domain fallback
// is empty. No cookies are returned alongside it.
var ErrEmptyHost = errors.New("default host must not be empty")

// Parser turns legacy comma-joined cookie headers into cookies.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	log logger.Logger
}

// NewParser creates a Parser that reports skipped segments and unrecognized
// attributes to l. A nil logger discards everything.
func NewParser(l logger.Logger) *Parser {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Parser{log: l}
}

var defaultParser = NewParser(nil)

// ParseHeader parses header with a Parser that does not log.
// See Parser.Parse.
func ParseHeader(header, defaultHost string) ([]Cookie, error) {
	return defaultParser.Parse(header, defaultHost)
}

// Parse splits header into cookie segments and returns one Cookie per valid
// segment, in input order. Segments without a name=value pair are skipped.
// Cookies without a domain (or with an empty one) get defaultHost, cookies
// without a path get "/". An empty header yields an empty, non-nil slice.
func (p *Parser) Parse(header, defaultHost string) ([]Cookie, error) {
	defaultHost = strings.TrimSpace(defaultHost)
	if defaultHost == "" {
		return nil, ErrEmptyHost
	}
	segments := splitSegments(header)
	cookies := make([]Cookie, 0, len(segments))
	for i, seg := range segments {
		c, ok := p.parseSegment(seg, defaultHost)
		if !ok {
			// the segment may hold a value, so only its position is logged
			p.log.Warning("skipping malformed cookie segment %d of %d", i+1, len(segments))
			continue
		}
		cookies = append(cookies, c)
	}
	p.log.Debug("parsed %d cookies from %d segments", len(cookies), len(segments))
	return cookies, nil
}

// splitSegments cuts header at boundary commas. A comma is not a boundary
// while the scanner is inside an expires value whose text so far is a
// weekday name, as in "expires=Wed, 09 Jun 2025 10:18:14 GMT".
// Empty segments are dropped; the rest are trimmed.
func splitSegments(header string) []string {
	var (
		segments []string
		start    int
		// past the first ';' of the current segment
		inAttributes bool
		// attribute token being read
		attrStart int
		attrHasEq bool
		// expires value being read
		insideExpires bool
		expiresStart  int
	)
	flush := func(end int) {
		if seg := strings.TrimSpace(header[start:end]); seg != "" {
			segments = append(segments, seg)
		}
	}
	for i := 0; i < len(header); i++ {
		switch header[i] {
		case ';':
			inAttributes = true
			attrStart = i + 1
			attrHasEq = false
			insideExpires = false
		case '=':
			if !inAttributes || attrHasEq {
				continue
			}
			attrHasEq = true
			if strings.EqualFold(strings.TrimSpace(header[attrStart:i]), "expires") {
				insideExpires = true
				expiresStart = i + 1
			}
		case ',':
			if insideExpires && isWeekday(strings.TrimSpace(header[expiresStart:i])) {
				continue
			}
			flush(i)
			start = i + 1
			inAttributes = false
			attrHasEq = false
			insideExpires = false
		}
	}
	flush(len(header))
	return segments
}

var weekdays = map[string]bool{
	"mon": true, "tue": true, "wed": true, "thu": true, "fri": true, "sat": true, "sun": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func isWeekday(s string) bool {
	return weekdays[strings.ToLower(s)]
}

// parseSegment builds a Cookie from one trimmed segment. The second return
// value is false when the leading pair has no '=' or an empty name.
func (p *Parser) parseSegment(seg, defaultHost string) (Cookie, bool) {
	pair, attrs, _ := strings.Cut(seg, ";")
	name, value, ok := strings.Cut(pair, "=")
	if !ok {
		return Cookie{}, false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Cookie{}, false
	}
	c := Cookie{
		Name:  name,
		Value: strings.TrimSpace(value),
		Raw:   seg,
	}
	for _, tok := range strings.Split(attrs, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		key, val, _ := strings.Cut(tok, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)
		switch key {
		case "domain":
			c.Domain = val
		case "path":
			c.Path = val
		case "expires":
			c.Expires = val
		default:
			if !recognizedAttrs[key] {
				p.log.Debug("cookie %q: unrecognized attribute %q", name, key)
				c.Unparsed = append(c.Unparsed, tok)
				continue
			}
			if c.Attributes == nil {
				c.Attributes = make(map[string]string)
			}
			c.Attributes[key] = val
		}
	}
	if c.Domain == "" {
		c.Domain = defaultHost
	}
	if c.Path == "" {
		c.Path = "/"
	}
	return c, true
}
