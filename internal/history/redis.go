package history

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	priceKeyPrefix   = "price:last:"
	balanceKeyPrefix = "points:balance:"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  24 * time.Hour,
	}
}

// RedisStore keeps the latest observed price per route and traveler point
// balances in Redis. Price entries expire after the configured TTL so a
// stale observation is never treated as "previous".
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (s *RedisStore) LastPrice(ctx context.Context, route string) (int, bool, error) {
	price, err := s.client.Get(ctx, priceKeyPrefix+route).Int()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return price, true, nil
}

func (s *RedisStore) RecordPrice(ctx context.Context, route string, priceCents int) error {
	return s.client.Set(ctx, priceKeyPrefix+route, strconv.Itoa(priceCents), s.ttl).Err()
}

func (s *RedisStore) Balance(ctx context.Context, userID string) (int, error) {
	balance, err := s.client.Get(ctx, balanceKeyPrefix+userID).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
