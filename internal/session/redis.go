package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const SESSION_KEY = "session:%s" // <recordKey>

func SessionKey(name string) string {
	return fmt.Sprintf(SESSION_KEY, name)
}

type redisStorage struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) Storage {
	return &redisStorage{
		rdb: rdb,
	}
}

func (s *redisStorage) Load(ctx context.Context) (string, error) {
	value, err := s.rdb.Get(ctx, SessionKey(RecordKey)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoRecord
	}
	return value, err
}

func (s *redisStorage) Save(ctx context.Context, record string) error {
	return s.rdb.Set(ctx, SessionKey(RecordKey), record, 0).Err()
}

func (s *redisStorage) Delete(ctx context.Context) error {
	return s.rdb.Del(ctx, SessionKey(RecordKey)).Err()
}

func (s *redisStorage) Close() error {
	return s.rdb.Close()
}
