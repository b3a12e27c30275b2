// Package httpclient builds the *http.Client used for API calls.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

// New returns a client with explicit dial, TLS and idle limits.
// http.DefaultClient has no timeout, so API calls never use it.
//
// timeout bounds a whole request including reading the body; zero means
// no overall limit.
func New(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
