// Package cookies parses legacy comma-joined cookie headers into ordered
// cookie records and encodes those records for downstream consumers
// (request Cookie headers, Netscape cookies.txt, net/http cookies).
//
// In the legacy form several Set-Cookie values are folded into a single
// header separated by commas, while the expires attribute carries an
// RFC 1123 date that contains a comma of its own. The parser tells the two
// apart with a small left-to-right state machine instead of splitting.
//
// Cookie values are never logged. Only names and domains may appear in logs.
package cookies
