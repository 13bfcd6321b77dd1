package organization

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	activeOrgKeyPrefix = "session:active_org:"
	activeOrgTTL       = 30 * 24 * time.Hour
)

// ActiveOrgStore menyimpan pointer organisasi aktif per user di Redis.
// Resolver hanya membaca; endpoint switch yang menulis.
type ActiveOrgStore struct {
	rdb *redis.Client
}

func NewActiveOrgStore(rdb *redis.Client) *ActiveOrgStore {
	return &ActiveOrgStore{rdb: rdb}
}

func (s *ActiveOrgStore) ActiveOrgID(ctx context.Context, userID string) (string, error) {
	val, err := s.rdb.Get(ctx, activeOrgKeyPrefix+userID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *ActiveOrgStore) SetActiveOrgID(ctx context.Context, userID, orgID string) error {
	return s.rdb.Set(ctx, activeOrgKeyPrefix+userID, orgID, activeOrgTTL).Err()
}

func (s *ActiveOrgStore) ClearActiveOrgID(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, activeOrgKeyPrefix+userID).Err()
}
