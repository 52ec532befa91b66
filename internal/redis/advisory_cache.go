package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/goowebia/hay-paso/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const advisoryKey = "haypaso:advisory:latest"

// AdvisoryCache keeps the last published advisory so restarts and replicas can skip
// a round trip to the text generator.
type AdvisoryCache struct {
	client *goredis.Client
	key    string
}

func NewAdvisoryCache(r *Redis) *AdvisoryCache {
	return &AdvisoryCache{
		client: r.Client,
		key:    advisoryKey,
	}
}

// Get returns nil, nil on a miss.
func (c *AdvisoryCache) Get(ctx context.Context) (*domain.Advisory, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var adv domain.Advisory
	if err := json.Unmarshal(data, &adv); err != nil {
		return nil, err
	}
	return &adv, nil
}

func (c *AdvisoryCache) Set(ctx context.Context, adv domain.Advisory, ttl time.Duration) error {
	b, err := json.Marshal(adv)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *AdvisoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
