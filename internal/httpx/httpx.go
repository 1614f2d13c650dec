package httpx

import (
	"net"
	"net/http"
	"time"
)

// Client is a small wrapper around http.Client that stamps outgoing
// requests with a User-Agent.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// New returns a Client whose overall request timeout is timeout.
// A zero timeout leaves requests unbounded.
func New(timeout time.Duration) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          4,
		MaxIdleConnsPerHost:   2,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &Client{HTTP: &http.Client{Timeout: timeout, Transport: transport}, UserAgent: "prevclose/1.0"}
}

// Do sends req, setting the User-Agent unless the caller already did.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return c.HTTP.Do(req)
}
