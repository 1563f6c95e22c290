package database

import (
	"context"
	"familypoints-backend/config"

	"github.com/go-redis/redis/v8"
)

// RedisClient is nil when no redis is configured; callers treat the cache
// as optional.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis(cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if _, err := client.Ping(Ctx).Result(); err != nil {
		return err
	}
	RedisClient = client
	return nil
}
