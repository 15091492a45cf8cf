package engine

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"status 429", &httpStatusError{StatusCode: 429}, true},
		{"wrapped status 503", fmt.Errorf("fetch: %w", &httpStatusError{StatusCode: 503}), true},
		{"dns error", &net.DNSError{IsTimeout: true}, true},
		{"dial refused", &net.OpError{Op: "dial", Err: errors.New("refused")}, true},
		{"plain error", errors.New("bad input"), false},
		{"canceled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	for code, want := range map[int]bool{
		200: false, 403: false, 404: false,
		429: true, 500: true, 502: true, 503: true, 504: true,
	} {
		assert.Equal(t, want, isRetryableStatus(code), "status %d", code)
	}
}

func TestFetchWithRetry_GivesUpAfterMaxTries(t *testing.T) {
	Init(Config{FetchTimeout: 10 * time.Second})
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := fetchWithRetry(context.Background(), srv.URL)
	require.Error(t, err)
	assert.True(t, IsRetryable(err))
	assert.Equal(t, int32(3), calls.Load())
}
