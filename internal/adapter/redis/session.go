package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/azulpack/juridico-backend/internal/domain"
)

type sessionData struct {
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore keeps refresh sessions keyed by token hash, plus a per-user
// index so every session of a user can be revoked at once. The index lives
// as long as the most recently saved session.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

// NewSessionStore creates a session store. prefix namespaces every key.
func NewSessionStore(client *goredis.Client, prefix string) *SessionStore {
	return &SessionStore{client: client, prefix: prefix}
}

func (s *SessionStore) key(tokenHash string) string {
	return s.prefix + "refresh:" + tokenHash
}

func (s *SessionStore) userKey(userID uuid.UUID) string {
	return s.prefix + "user_sessions:" + userID.String()
}

// Save stores a session until its expiry.
func (s *SessionStore) Save(ctx context.Context, sess domain.RefreshSession) error {
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("save refresh session: already expired: %w", domain.ErrValidation)
	}

	data, err := json.Marshal(sessionData{UserID: sess.UserID, ExpiresAt: sess.ExpiresAt})
	if err != nil {
		return fmt.Errorf("marshal refresh session: %w", err)
	}

	userKey := s.userKey(sess.UserID)
	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, s.key(sess.TokenHash), data, ttl)
		pipe.SAdd(ctx, userKey, sess.TokenHash)
		pipe.Expire(ctx, userKey, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save refresh session: %w", err)
	}
	return nil
}

// Consume atomically removes and returns a session. A second Consume of the
// same hash returns domain.ErrNotFound, so a refresh token rotates exactly once.
func (s *SessionStore) Consume(ctx context.Context, tokenHash string) (domain.RefreshSession, error) {
	raw, err := s.client.GetDel(ctx, s.key(tokenHash)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return domain.RefreshSession{}, fmt.Errorf("refresh session: %w", domain.ErrNotFound)
	}
	if err != nil {
		return domain.RefreshSession{}, fmt.Errorf("consume refresh session: %w", err)
	}

	var data sessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return domain.RefreshSession{}, fmt.Errorf("unmarshal refresh session: %w", err)
	}

	if err := s.client.SRem(ctx, s.userKey(data.UserID), tokenHash).Err(); err != nil {
		return domain.RefreshSession{}, fmt.Errorf("unindex refresh session: %w", err)
	}

	return domain.RefreshSession{TokenHash: tokenHash, UserID: data.UserID, ExpiresAt: data.ExpiresAt}, nil
}

// Revoke deletes a session. Revoking an unknown session is not an error.
func (s *SessionStore) Revoke(ctx context.Context, tokenHash string) error {
	_, err := s.Consume(ctx, tokenHash)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// RevokeAllForUser deletes every session of a user.
func (s *SessionStore) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	userKey := s.userKey(userID)

	hashes, err := s.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return fmt.Errorf("list refresh sessions: %w", err)
	}

	keys := make([]string, 0, len(hashes)+1)
	for _, h := range hashes {
		keys = append(keys, s.key(h))
	}
	keys = append(keys, userKey)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke refresh sessions: %w", err)
	}
	return nil
}
