// Package session tracks the currently selected profile per client session.
// Bindings are persisted in Redis so a reload restores the selection; when
// Redis is unavailable the store degrades to an in-process map.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "norms_hub:session:"

type localEntry struct {
	userID    string
	expiresAt time.Time
}

type Store struct {
	client *redis.Client
	ttl    time.Duration

	mu    sync.RWMutex
	local map[string]localEntry
}

// New connects to Redis at addr. When Redis does not answer, the store runs
// with in-memory sessions only.
func New(addr string, ttl time.Duration) *Store {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warn().Msg("Redis not available, sessions are in-memory only")
		client = nil
	} else {
		log.Info().Str("address", addr).Msg("Redis connected")
	}
	return &Store{
		client: client,
		ttl:    ttl,
		local:  make(map[string]localEntry),
	}
}

// Create binds a new session id to the selected profile.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	sid := uuid.NewString()
	if s.client != nil {
		if err := s.client.Set(ctx, keyPrefix+sid, userID, s.ttl).Err(); err != nil {
			return "", err
		}
		return sid, nil
	}

	s.mu.Lock()
	s.local[sid] = localEntry{userID: userID, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return sid, nil
}

// Lookup resolves a session id to the selected profile id.
func (s *Store) Lookup(ctx context.Context, sid string) (string, bool) {
	if s.client != nil {
		userID, err := s.client.Get(ctx, keyPrefix+sid).Result()
		if err != nil {
			return "", false
		}
		return userID, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.local[sid]
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.local, sid)
		return "", false
	}
	return entry.userID, true
}

// Delete removes a session binding (logout).
func (s *Store) Delete(ctx context.Context, sid string) {
	if s.client != nil {
		if err := s.client.Del(ctx, keyPrefix+sid).Err(); err != nil {
			log.Warn().Err(err).Msg("Failed to delete session")
		}
		return
	}

	s.mu.Lock()
	delete(s.local, sid)
	s.mu.Unlock()
}
