package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/HarryCarrig/Trimmute/internal/models"
)

const (
	shopsKey = "trimmute:shops:all"
	shopsTTL = 5 * time.Minute
)

// ShopCache is a read-through Redis cache for the shop directory. The
// directory is immutable reference data, so a short TTL is plenty; the
// availability query is deliberately never cached. A nil *ShopCache disables
// caching entirely.
type ShopCache struct {
	rdb *redis.Client
}

func NewShopCache(redisURL string) *ShopCache {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logrus.WithError(err).Warn("invalid REDIS_URL, shop cache disabled")
		return nil
	}

	return &ShopCache{rdb: redis.NewClient(opts)}
}

func (c *ShopCache) Get(ctx context.Context) ([]models.Shop, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, shopsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).Warn("shop cache read failed")
		}
		return nil, false
	}

	var shops []models.Shop
	if err := json.Unmarshal(raw, &shops); err != nil {
		return nil, false
	}

	return shops, true
}

func (c *ShopCache) Set(ctx context.Context, shops []models.Shop) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(shops)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, shopsKey, raw, shopsTTL).Err(); err != nil {
		logrus.WithError(err).Warn("shop cache write failed")
	}
}

func (c *ShopCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, shopsKey).Err(); err != nil {
		logrus.WithError(err).Warn("shop cache invalidation failed")
	}
}
