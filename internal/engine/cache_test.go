package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, CacheKey("posting", "https://a.example/1"), CacheKey("posting", "https://a.example/1"))
	})

	t.Run("different inputs differ", func(t *testing.T) {
		assert.NotEqual(t, CacheKey("posting", "a"), CacheKey("posting", "b"))
	})

	t.Run("has prefix", func(t *testing.T) {
		assert.Equal(t, "jd:", CacheKey("test")[:3])
	})
}

func TestCacheGetSet(t *testing.T) {
	InitCache("", time.Minute, 100, 5*time.Minute)
	ctx := context.Background()
	key := CacheKey("test", "round-trip")

	_, ok := CacheGet(ctx, key)
	assert.False(t, ok, "expected miss on empty cache")

	CacheSet(ctx, key, []byte("hello"))
	got, ok := CacheGet(ctx, key)
	require.True(t, ok)
	assert.Equal(t, "hello", string(got))
}

func TestCachePosting(t *testing.T) {
	InitCache("", time.Minute, 100, 5*time.Minute)
	ctx := context.Background()

	p := Posting{URL: "https://jobs.example/42", Title: "Go Engineer", Text: "Golang and Kafka"}
	CacheSetPosting(ctx, p)

	got, ok := CacheGetPosting(ctx, p.URL)
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = CacheGetPosting(ctx, "https://jobs.example/other")
	assert.False(t, ok)
}

func TestCacheLoadJSON_Corrupt(t *testing.T) {
	InitCache("", time.Minute, 100, 5*time.Minute)
	ctx := context.Background()
	key := CacheKey("corrupt")
	CacheSet(ctx, key, []byte("{not json"))

	_, ok := CacheLoadJSON[Posting](ctx, key)
	assert.False(t, ok)
}

func TestCacheExpiration(t *testing.T) {
	InitCache("", time.Millisecond, 100, 5*time.Minute)
	ctx := context.Background()
	key := CacheKey("test", "expiry")

	CacheSet(ctx, key, []byte("temp"))
	time.Sleep(5 * time.Millisecond)

	_, ok := CacheGet(ctx, key)
	assert.False(t, ok, "expected miss after TTL expiry")
}

func TestCacheEviction(t *testing.T) {
	InitCache("", time.Minute, 3, 5*time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		CacheSet(ctx, CacheKey("evict", fmt.Sprintf("item-%d", i)), []byte(fmt.Sprintf("v%d", i)))
	}

	count := 0
	postingCache.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	assert.LessOrEqual(t, count, 3)
}

func TestCacheStats(t *testing.T) {
	InitCache("", time.Minute, 100, 5*time.Minute)
	cacheHits.Store(0)
	cacheMisses.Store(0)
	ctx := context.Background()
	key := CacheKey("stats", "test")

	CacheGet(ctx, key)
	_, misses := CacheStats()
	assert.Equal(t, int64(1), misses)

	CacheSet(ctx, key, []byte("x"))
	CacheGet(ctx, key)

	hits, misses := CacheStats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}
