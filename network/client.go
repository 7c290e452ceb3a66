// Package network provides the HTTP transport used to fetch listing and episode pages.
package network

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/samber/lo"
	"golang.org/x/net/publicsuffix"
)

// Client is the HTTP client shared across the application.
// It keeps cookies the site sets between page requests of one crawl.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newTransport(),
	Jar:       lo.Must(cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})),
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
