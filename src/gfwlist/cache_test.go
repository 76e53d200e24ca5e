// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gfwlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheGetSet(t *testing.T) {
	c := newMemoryCache()

	// Miss on empty cache.
	_, ok := c.Get("miss")
	assert.False(t, ok, "expected miss on empty cache")

	// Set and hit.
	want := Host{Name: "example.com", Kind: HostDomain, KnownSuffix: true}
	c.Set("hit", want)

	got, ok := c.Get("hit")
	require.True(t, ok, "expected hit after Set")
	assert.Equal(t, want, got)
}

func TestMemoryCacheFlush(t *testing.T) {
	c := newMemoryCache()

	c.Set("a", Host{Name: "a.com"})
	c.Set("b", Host{Name: "b.com"})

	c.Flush()

	_, ok := c.Get("a")
	assert.False(t, ok, "expected miss after Flush for key 'a'")

	_, ok = c.Get("b")
	assert.False(t, ok, "expected miss after Flush for key 'b'")
}
