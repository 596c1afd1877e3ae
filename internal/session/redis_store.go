package session

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

const (
	redisTokenKey   = "owner:session:token"
	redisProfileKey = "owner:session:profile"

	redisOpTimeout = 3 * time.Second
)

// RedisStore persists the session pair in Redis, for deployments where the
// daemon restarts or runs as more than one replica.
type RedisStore struct {
	client *goredis.Client
}

func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Token() (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	token, err := s.client.Get(ctx, redisTokenKey).Result()
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (s *RedisStore) SetToken(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.client.Set(ctx, redisTokenKey, token, 0).Err()
}

func (s *RedisStore) Profile() (*owner.UserProfile, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	data, err := s.client.Get(ctx, redisProfileKey).Result()
	if err != nil {
		return nil, false
	}
	var profile owner.UserProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, false
	}
	return &profile, true
}

func (s *RedisStore) SetProfile(profile *owner.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.client.Set(ctx, redisProfileKey, data, 0).Err()
}

// Clear removes both keys in one round trip so the pair never diverges.
func (s *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.client.Del(ctx, redisTokenKey, redisProfileKey).Err()
}
