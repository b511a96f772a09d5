// Package fetch performs the HTTP request whose Set-Cookie headers feed the
// cookie header parser. It builds clients with optional proxy support and a
// bounded redirect policy, and returns the response cookies folded into the
// legacy single-header form together with the request host.
//
// There is no retry or backoff: one request, one result.
package fetch
