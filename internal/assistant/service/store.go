package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists conversation state between turns. Sessions expire
// after the configured TTL.
type SessionStore interface {
	Get(ctx context.Context, id string) (*ConversationState, error)
	Save(ctx context.Context, state *ConversationState) error
	Delete(ctx context.Context, id string) error
}

// memoryStore is the default single-process store.
type memoryStore struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]memoryEntry
}

type memoryEntry struct {
	state     *ConversationState
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory session store with the given TTL.
func NewMemoryStore(ttl time.Duration) SessionStore {
	return &memoryStore{ttl: ttl, m: make(map[string]memoryEntry)}
}

func (s *memoryStore) Get(_ context.Context, id string) (*ConversationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	entry, ok := s.m[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry.state, nil
}

func (s *memoryStore) Save(_ context.Context, state *ConversationState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()

	s.m[state.ID] = memoryEntry{state: state, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

// sweep drops expired sessions. Called under the lock on every access, which
// is cheap at this session volume.
func (s *memoryStore) sweep() {
	now := time.Now()
	for id, entry := range s.m {
		if now.After(entry.expiresAt) {
			delete(s.m, id)
		}
	}
}

// redisStore persists sessions in Redis so multiple instances can share
// them. State is stored as one JSON value per session with the TTL refreshed
// on every save.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "assistant:session:" + id
}

func (s *redisStore) Get(ctx context.Context, id string) (*ConversationState, error) {
	raw, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}

	var state ConversationState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &state, nil
}

func (s *redisStore) Save(ctx context.Context, state *ConversationState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", state.ID, err)
	}
	if err := s.client.Set(ctx, sessionKey(state.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", state.ID, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}
