package cache

import (
	"context"
	"testing"
	"time"

	"github.com/invocli/invocli/internal/config"
	"github.com/invocli/invocli/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache(config.GetDefaultConfig(), logger.NewNopLogger())

	key := GenerateKey(PrefixLogo, "https://example.com/logo.png")
	assert.Equal(t, "logo:v1::https://example.com/logo.png", key)

	_, found := c.Get(ctx, key)
	assert.False(t, found)

	c.Set(ctx, key, "data:image/png;base64,AAAA", 0)
	value, found := c.Get(ctx, key)
	assert.True(t, found)
	assert.Equal(t, "data:image/png;base64,AAAA", value)

	c.Set(ctx, GenerateKey(PrefixLogo, "b"), "x", time.Minute)
	c.Set(ctx, "other:key", "y", time.Minute)
	c.DeleteByPrefix(ctx, PrefixLogo)
	assert.Equal(t, 1, c.ItemCount())

	c.Delete(ctx, "other:key")
	assert.Equal(t, 0, c.ItemCount())
}

func TestInMemoryCache_Disabled(t *testing.T) {
	ctx := context.Background()
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = false
	c := NewInMemoryCache(cfg, logger.NewNopLogger())

	c.Set(ctx, "k", "v", time.Minute)
	_, found := c.Get(ctx, "k")
	assert.False(t, found)
	assert.Equal(t, 0, c.ItemCount())
}
