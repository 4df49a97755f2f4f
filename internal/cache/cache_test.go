package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/courier-settlement/internal/domain"
)

type summary struct {
	Days  int    `json:"days"`
	Label string `json:"label"`
}

func NewMock(t *testing.T) (*SummaryCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, time.Minute), mr
}

func TestSummaryCache_SetGet(t *testing.T) {
	c, mr := NewMock(t)
	ctx := context.Background()
	scope := domain.Scope{EcommerceID: 1, CourierID: 2}

	key, err := c.Key(ctx, scope, "ecommerce", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "settlement:summary:1:2:ecommerce:2024-01-01:2024-01-31:v0", key)

	var miss summary
	found, err := c.Get(ctx, key, &miss)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, key, summary{Days: 3, Label: "jan"}))

	var hit summary
	found, err = c.Get(ctx, key, &hit)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, summary{Days: 3, Label: "jan"}, hit)

	mr.FastForward(2 * time.Minute)
	found, err = c.Get(ctx, key, &hit)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSummaryCache_InvalidateBumpsOnlyThatScope(t *testing.T) {
	c, _ := NewMock(t)
	ctx := context.Background()
	scope := domain.Scope{EcommerceID: 1, CourierID: 2}
	other := domain.Scope{EcommerceID: 1, CourierID: 3}

	before, err := c.Key(ctx, scope, "courier")
	require.NoError(t, err)
	otherBefore, err := c.Key(ctx, other, "courier")
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, before, summary{Days: 1}))

	require.NoError(t, c.Invalidate(ctx, scope))

	after, err := c.Key(ctx, scope, "courier")
	require.NoError(t, err)
	otherAfter, err := c.Key(ctx, other, "courier")
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
	assert.Equal(t, otherBefore, otherAfter)

	var got summary
	found, err := c.Get(ctx, after, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSummaryCache_UnreadableEntryIsAMiss(t *testing.T) {
	c, mr := NewMock(t)
	require.NoError(t, mr.Set("settlement:summary:1:2:v0", "{not json"))

	var got summary
	found, err := c.Get(context.Background(), "settlement:summary:1:2:v0", &got)

	assert.NoError(t, err)
	assert.False(t, found)
}

func TestSummaryCache_NilIsNoop(t *testing.T) {
	var c *SummaryCache
	ctx := context.Background()
	scope := domain.Scope{EcommerceID: 1, CourierID: 2}

	key, err := c.Key(ctx, scope, "courier")
	assert.NoError(t, err)
	assert.Equal(t, "settlement:summary:1:2:courier", key)

	found, err := c.Get(ctx, key, &summary{})
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Set(ctx, key, summary{}))
	assert.NoError(t, c.Invalidate(ctx, scope))
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewClient(context.Background(), mr.Addr())
	require.NoError(t, err)
	assert.NoError(t, client.Close())

	addr := mr.Addr()
	mr.Close()
	_, err = NewClient(context.Background(), addr)
	assert.Error(t, err)
}
