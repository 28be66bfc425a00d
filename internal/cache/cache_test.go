package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClient_BehavesLikeEmptyCache(t *testing.T) {
	var c *Client
	ctx := context.Background()

	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Close())
}

func TestNilClient_JSONHelpers(t *testing.T) {
	var c *Client
	ctx := context.Background()

	assert.NoError(t, c.SetJSON(ctx, "k", map[string]string{"a": "b"}, time.Minute))

	var dst map[string]string
	assert.False(t, c.GetJSON(ctx, "k", &dst))
	assert.Nil(t, dst)
}

// An unreachable server must look like a miss, never an error.
func TestUnreachableRedis_FailsSafe(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.Error(t, c.Ping(ctx))
}
