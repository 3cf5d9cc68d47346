package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"docgen/internal/config"
	"docgen/internal/logger"
	"docgen/internal/model"
	"docgen/internal/repository"
)

const keyPrefix = "docgen:template:"

// Client is the subset of the redis client used by TemplateCache.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// TemplateCache is a read-through cache in front of a TemplateRepository.
// Cache failures never fail a lookup; they are logged and the backing store is used.
type TemplateCache struct {
	next   repository.TemplateRepository
	client Client
	ttl    time.Duration
}

var _ repository.TemplateRepository = (*TemplateCache)(nil)

// NewTemplateCache wraps next with a redis-backed cache whose entries live for ttl.
func NewTemplateCache(next repository.TemplateRepository, client Client, ttl time.Duration) *TemplateCache {
	return &TemplateCache{next: next, client: client, ttl: ttl}
}

// NewRedisClient opens a redis client and verifies connectivity.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return cli, nil
}

// FindByID serves the template from cache when possible, otherwise loads and stores it.
// Missing templates are not cached.
func (c *TemplateCache) FindByID(ctx context.Context, id string) (*model.Template, error) {
	key := keyPrefix + id
	log := logger.FromContext(ctx).With(zap.String("template_id", id))

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var t model.Template
		decErr := json.Unmarshal(raw, &t)
		if decErr == nil {
			return &t, nil
		}
		log.Warn("template_cache_decode_failed", zap.Error(decErr))
	case !errors.Is(err, redis.Nil):
		log.Warn("template_cache_get_failed", zap.Error(err))
	}

	t, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(t)
	if err != nil {
		log.Warn("template_cache_encode_failed", zap.Error(err))
		return t, nil
	}
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		log.Warn("template_cache_set_failed", zap.Error(err))
	}
	return t, nil
}
