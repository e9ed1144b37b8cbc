package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// NavStore persists the last route each user visited.
type NavStore struct {
	client *goredis.Client
	prefix string
}

// NewNavStore creates a navigation state store. prefix namespaces every key.
func NewNavStore(client *goredis.Client, prefix string) *NavStore {
	return &NavStore{client: client, prefix: prefix}
}

func (s *NavStore) key(userID uuid.UUID) string {
	return s.prefix + "last_path:" + userID.String()
}

// SaveLastPath overwrites the saved route of a user.
func (s *NavStore) SaveLastPath(ctx context.Context, userID uuid.UUID, path string) error {
	if err := s.client.Set(ctx, s.key(userID), path, 0).Err(); err != nil {
		return fmt.Errorf("save last path: %w", err)
	}
	return nil
}

// LastPath returns the saved route of a user. ok is false when nothing was saved.
func (s *NavStore) LastPath(ctx context.Context, userID uuid.UUID) (path string, ok bool, err error) {
	path, err = s.client.Get(ctx, s.key(userID)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("load last path: %w", err)
	}
	return path, true, nil
}

// ClearLastPath forgets the saved route of a user.
func (s *NavStore) ClearLastPath(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("clear last path: %w", err)
	}
	return nil
}
