package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/RD107924/ruandi-shop-v2/config"
	"github.com/RD107924/ruandi-shop-v2/pkg/log"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(conf *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port),
		Password:    conf.Redis.Password,
		Username:    conf.Redis.Username,
		DB:          conf.Redis.Database,
		ReadTimeout: 0,
	})
	if _, err := client.Ping(context.TODO()).Result(); err != nil {
		log.L.Fatal("connect redis error", zap.Error(err))
	}
	log.L.Info("redis client success")
	return client
}

// RedisStorage 把槽位放到 Redis，多台机器共用一份购物车时用
type RedisStorage struct {
	redis *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{redis: client}
}

func (r *RedisStorage) slotKey(key string) string {
	return fmt.Sprintf("ruandi:slot:%s", key)
}

func (r *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	val, err := r.redis.Get(ctx, r.slotKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	return val, err
}

func (r *RedisStorage) Save(ctx context.Context, key string, val []byte) error {
	return r.redis.Set(ctx, r.slotKey(key), val, 0).Err()
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	return r.redis.Del(ctx, r.slotKey(key)).Err()
}
