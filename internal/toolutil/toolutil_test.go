package toolutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anatolykoptev/go_jdmatch/internal/engine"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/jdmatch"
	"github.com/anatolykoptev/go_jdmatch/internal/engine/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestEngine(t *testing.T) {
	t.Helper()
	engine.Init(engine.Config{
		MaxJobTextChars: 40,
		MaxContentChars: 4000,
		FetchTimeout:    5 * time.Second,
	})
	engine.InitCache("", time.Minute, 100, 5*time.Minute)
}

func TestResolvePosting_InlineText(t *testing.T) {
	initTestEngine(t)
	p, err := ResolvePosting(context.Background(), strings.Repeat("golang ", 20), " https://jobs.example/7 ")
	require.NoError(t, err)
	assert.Equal(t, "https://jobs.example/7", p.URL)
	assert.LessOrEqual(t, len([]rune(p.Text)), 40)
	assert.True(t, strings.HasPrefix(p.Text, "golang golang"))
}

func TestResolvePosting_Missing(t *testing.T) {
	initTestEngine(t)
	_, err := ResolvePosting(context.Background(), "   ", "")
	assert.EqualError(t, err, "job_description or job_url is required")
}

func TestResolvePosting_FetchesOnceThenCaches(t *testing.T) {
	initTestEngine(t)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Go Developer</title></head><body>
			<nav>Home | Jobs</nav>
			<div id="job-description"><p>We use <b>Golang</b> and Kubernetes.</p></div>
			</body></html>`))
	}))
	defer srv.Close()

	ctx := context.Background()
	first, err := ResolvePosting(ctx, "", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Go Developer", first.Title)
	assert.Contains(t, first.Text, "Kubernetes")
	assert.NotContains(t, first.Text, "Home | Jobs")

	second, err := ResolvePosting(ctx, "", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
}

func TestResolveProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("inline wins", func(t *testing.T) {
		p := &jdmatch.Profile{Name: "Ana"}
		got, err := ResolveProfile(ctx, p, 12)
		require.NoError(t, err)
		assert.Same(t, p, got)
	})

	t.Run("neither given", func(t *testing.T) {
		_, err := ResolveProfile(ctx, nil, 0)
		assert.EqualError(t, err, "profile or profile_id is required")
	})

	t.Run("id without store", func(t *testing.T) {
		store.SetProfileDB(nil)
		_, err := ResolveProfile(ctx, nil, 3)
		assert.Error(t, err)
	})
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 5, ClampLimit(0, 5, 5))
	assert.Equal(t, 5, ClampLimit(-2, 5, 5))
	assert.Equal(t, 3, ClampLimit(3, 5, 5))
	assert.Equal(t, 5, ClampLimit(9, 5, 5))
}
