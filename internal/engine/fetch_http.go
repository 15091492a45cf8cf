package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// UserAgent is sent on every posting fetch.
const UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// maxBodyBytes caps how much of a posting page is read.
const maxBodyBytes = 4 * 1024 * 1024

var (
	fetchLimiterMu sync.RWMutex
	fetchLimiter   *rate.Limiter // nil = unlimited
)

func initFetchLimiter(perSec float64, burst int) {
	fetchLimiterMu.Lock()
	defer fetchLimiterMu.Unlock()
	if perSec <= 0 {
		fetchLimiter = nil
		return
	}
	if burst <= 0 {
		burst = 1
	}
	fetchLimiter = rate.NewLimiter(rate.Limit(perSec), burst)
}

func waitFetchSlot(ctx context.Context) error {
	fetchLimiterMu.RLock()
	l := fetchLimiter
	fetchLimiterMu.RUnlock()
	if l == nil {
		return nil
	}
	return l.Wait(ctx)
}

// newFetchClient creates an HTTP client with proper settings for posting pages.
func newFetchClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 15 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}
}

// fetchWithRetry performs an HTTP GET with exponential backoff on transient statuses.
func fetchWithRetry(ctx context.Context, fetchURL string) (*http.Response, error) {
	client := cfg.HTTPClient
	if client == nil {
		client = newFetchClient()
	}

	operation := func() (*http.Response, error) {
		if err := waitFetchSlot(ctx); err != nil {
			return nil, backoff.Permanent(err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", UserAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := client.Do(req)
		if err != nil {
			if IsRetryable(err) {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		if isRetryableStatus(resp.StatusCode) {
			resp.Body.Close()
			return nil, &httpStatusError{StatusCode: resp.StatusCode}
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, backoff.Permanent(fmt.Errorf("status %d", resp.StatusCode))
		}
		return resp, nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second

	return backoff.Retry(ctx, operation, backoff.WithBackOff(bo), backoff.WithMaxTries(3), backoff.WithMaxElapsedTime(30*time.Second))
}

// readResponseBody reads at most maxBodyBytes and decodes the page to UTF-8
// using the Content-Type charset or the document's meta tag.
func readResponseBody(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, maxBodyBytes)
	r, err := charset.NewReader(limited, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("charset: %w", err)
	}
	return io.ReadAll(r)
}

// httpStatusError carries a transient HTTP status so backoff retries it.
type httpStatusError struct {
	StatusCode int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsRetryable reports whether err is a transient network or HTTP failure.
// Callers wrap anything else in backoff.Permanent.
func IsRetryable(err error) bool {
	var httpErr *httpStatusError
	if errors.As(err, &httpErr) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}
