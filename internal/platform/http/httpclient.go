// Package http holds HTTP plumbing shared by outbound provider clients.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client for calls to social login providers.
// http.DefaultClient has no timeout, so provider clients always use this one.
//
// Settings:
//   - Proxy honours HTTP_PROXY / HTTPS_PROXY
//   - dial and TLS handshake are capped at 5s
//   - idle connections are kept for 90s so the token and user-info calls
//     of one login can share a connection
//   - timeout bounds the whole request, including reading the body
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
