package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLPushReversesMultipleValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	// LPUSH pushes one value at a time, so a multi-value push lands reversed.
	require.NoError(t, m.LPush(ctx, "k", "a", "b", "c"))
	got, err := m.LRange(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, got)
}

func TestMemoryListOps(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.RPush(ctx, "k", "a", "b", "a"))
	require.NoError(t, m.LRem(ctx, "k", "a"))
	got, err := m.LRange(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got, "LRem removes every occurrence")

	require.NoError(t, m.Del(ctx, "k"))
	got, err = m.LRange(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryAbsentKeysAreEmptyNotError(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	v, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	v, err = m.HGet(ctx, "missing", "field")
	require.NoError(t, err)
	assert.Empty(t, v)

	all, err := m.HGetAll(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryHashOps(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.HSet(ctx, "h", map[string]string{"a": "1", "b": "2"}))
	v, err := m.HGet(ctx, "h", "a")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	require.NoError(t, m.HDel(ctx, "h", "a", "never-existed"))
	v, err = m.HGet(ctx, "h", "a")
	require.NoError(t, err)
	assert.Empty(t, v)

	all, err := m.HGetAll(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "2"}, all)
}
