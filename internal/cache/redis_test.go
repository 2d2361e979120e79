package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCache connects to TEST_REDIS_URL, skipping when it is unset
func newTestCache(t *testing.T) Cache {
	t.Helper()
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	c, err := NewRedisCache(url, "users-api-test:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRedisGetMiss(t *testing.T) {
	c := newTestCache(t)

	_, err := c.Get(context.Background(), "users-test:missing")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisJSONAndPrefixDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name string `json:"name"`
	}
	for _, key := range []string{"users-test:a", "users-test:b"} {
		require.NoError(t, c.SetJSON(ctx, key, payload{Name: key}, time.Minute))
	}

	var got payload
	require.NoError(t, c.GetJSON(ctx, "users-test:a", &got))
	assert.Equal(t, "users-test:a", got.Name)

	require.NoError(t, c.DeleteByPrefix(ctx, "users-test:"))
	assert.ErrorIs(t, c.GetJSON(ctx, "users-test:b", &got), ErrCacheMiss)
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("dials the network")
	}
	_, err := NewRedisCache("redis://127.0.0.1:1/0", "")
	assert.Error(t, err)
}
