package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInMemoryStore(ttl time.Duration) *Store {
	// Nothing listens on this port, so the store falls back to the local map.
	return New("127.0.0.1:1", ttl)
}

func TestCreateAndLookup(t *testing.T) {
	store := newInMemoryStore(time.Minute)

	sid, err := store.Create(context.Background(), "demo-admin")
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	userID, ok := store.Lookup(context.Background(), sid)
	assert.True(t, ok)
	assert.Equal(t, "demo-admin", userID)
}

func TestLookup_UnknownSession(t *testing.T) {
	store := newInMemoryStore(time.Minute)

	_, ok := store.Lookup(context.Background(), "missing")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	store := newInMemoryStore(time.Minute)

	sid, err := store.Create(context.Background(), "demo-user")
	require.NoError(t, err)

	store.Delete(context.Background(), sid)

	_, ok := store.Lookup(context.Background(), sid)
	assert.False(t, ok)
}

func TestLookup_Expired(t *testing.T) {
	store := newInMemoryStore(-time.Second)

	sid, err := store.Create(context.Background(), "demo-user")
	require.NoError(t, err)

	_, ok := store.Lookup(context.Background(), sid)
	assert.False(t, ok)

	// The expired entry is evicted, not just skipped.
	store.mu.RLock()
	_, kept := store.local[sid]
	store.mu.RUnlock()
	assert.False(t, kept)
}
