// Package session keeps the signed-in user's credential in durable client
// storage so that a restarted client opens already authenticated.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/BloggingApp/blog-client/internal/config"
	"github.com/BloggingApp/blog-client/internal/model"
	"github.com/BloggingApp/blog-client/pkg/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RecordKey names the single stored credential record.
const RecordKey = "userInfo"

var (
	ErrNoRecord      = errors.New("no stored session")
	ErrUnknownDriver = errors.New("unknown session driver")
)

// Storage holds one serialized credential record.
type Storage interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, record string) error
	Delete(ctx context.Context) error
	Close() error
}

// Open returns the storage selected by cfg.Driver.
func Open(ctx context.Context, cfg config.SessionConfig) (Storage, error) {
	switch cfg.Driver {
	case config.SessionDriverBolt, "":
		return NewBolt(cfg.Path)
	case config.SessionDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return NewRedis(rdb), nil
	case config.SessionDriverMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

// Bootstrap reads the stored credential. It returns nil when no record exists
// or the record cannot be parsed; the client then starts unauthenticated.
func Bootstrap(ctx context.Context, storage Storage, logger *zap.Logger) *model.Credential {
	record, err := storage.Load(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoRecord) {
			logger.Sugar().Errorf("failed to load stored session: %s", err.Error())
		}
		return nil
	}

	var credential *model.Credential
	if err := json.Unmarshal([]byte(record), &credential); err != nil {
		logger.Sugar().Warnf("failed to parse stored session, starting signed out: %s", err.Error())
		return nil
	}
	if credential == nil {
		return nil
	}

	if utils.TokenExpired(credential.Token, time.Now()) {
		logger.Sugar().Warnf("stored session of user(%s) carries an expired token", credential.ID)
	}

	return credential
}

// Persist overwrites the stored record with credential.
func Persist(ctx context.Context, storage Storage, credential model.Credential) error {
	record, err := json.Marshal(credential)
	if err != nil {
		return err
	}
	return storage.Save(ctx, string(record))
}
