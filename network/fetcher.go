package network

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/comicrawl/comicrawl/log"
	"github.com/go-resty/resty/v2"
)

// Fetcher performs one HTTP GET and returns the response body as text.
type Fetcher interface {
	Fetch(ctx context.Context, url string, params, headers map[string]string) (string, error)
}

// TransportError reports a failed fetch: either the request never completed
// or the server answered with a non-2xx status.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Options configures a RestyFetcher.
type Options struct {
	UserAgent  string
	Timeout    time.Duration
	RetryCount int
}

// RestyFetcher is a Fetcher backed by a resty client sharing Client's transport and cookie jar.
type RestyFetcher struct {
	client *resty.Client
}

// NewFetcher returns a RestyFetcher configured with options.
// Client itself is left untouched; each fetcher works on its own copy.
func NewFetcher(options Options) *RestyFetcher {
	httpClient := *Client
	client := resty.NewWithClient(&httpClient).
		SetLogger(logger{}).
		SetRetryCount(options.RetryCount).
		SetHeader("Accept-Charset", "utf-8")

	if options.Timeout > 0 {
		client.SetTimeout(options.Timeout)
	}
	if options.UserAgent != "" {
		client.SetHeader("User-Agent", options.UserAgent)
	}

	return &RestyFetcher{client: client}
}

// Fetch sends a GET to url with the given query parameters and headers.
func (f *RestyFetcher) Fetch(ctx context.Context, url string, params, headers map[string]string) (string, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetHeaders(headers).
		Get(url)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}

	if !resp.IsSuccess() {
		return "", &TransportError{URL: resp.Request.URL, StatusCode: resp.StatusCode()}
	}

	log.Debugf("fetched %s (%d bytes)", resp.Request.URL, len(resp.Body()))
	// resp.String trims whitespace; the body is returned as sent.
	return string(resp.Body()), nil
}

// logger routes resty's internal messages into the application log.
type logger struct{}

func (logger) Errorf(format string, v ...interface{}) { log.Errorf(format, v...) }
func (logger) Warnf(format string, v ...interface{})  { log.Warnf(format, v...) }
func (logger) Debugf(format string, v ...interface{}) { log.Debugf(format, v...) }
