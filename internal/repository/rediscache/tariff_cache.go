package rediscache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"hallbook/internal/config"
	"hallbook/internal/domain"
	"hallbook/internal/port"
)

const tariffKey = "hallbook:tariff"

// tariffCache decorates a TariffStore with a Redis read-through cache. Cache
// failures are logged and fall through to the backing store, so a dead Redis
// never blocks quoting.
type tariffCache struct {
	next   port.TariffStore
	client *redis.Client
	ttl    time.Duration
}

// NewTariffCache wraps a TariffStore with Redis caching. Returns the backing
// store unwrapped when Redis is unreachable.
func NewTariffCache(next port.TariffStore, cfg *config.RedisConfig) port.TariffStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s, tariff caching disabled: %v", cfg.Addr, err)
		return next
	}

	return &tariffCache{next: next, client: client, ttl: cfg.TTL}
}

func (c *tariffCache) Get(ctx context.Context) (*domain.TariffTable, error) {
	raw, err := c.client.Get(ctx, tariffKey).Bytes()
	if err == nil {
		var table domain.TariffTable
		if err := json.Unmarshal(raw, &table.Categories); err == nil {
			return &table, nil
		}
		log.Printf("discarding corrupt tariff cache entry")
	} else if err != redis.Nil {
		log.Printf("tariff cache read failed: %v", err)
	}

	table, err := c.next.Get(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(table.Categories); err == nil {
		if err := c.client.Set(ctx, tariffKey, raw, c.ttl).Err(); err != nil {
			log.Printf("tariff cache write failed: %v", err)
		}
	}
	return table, nil
}

func (c *tariffCache) Replace(ctx context.Context, table *domain.TariffTable) error {
	if err := c.next.Replace(ctx, table); err != nil {
		return err
	}
	// Invalidate rather than repopulate; the next read refills.
	if err := c.client.Del(ctx, tariffKey).Err(); err != nil {
		log.Printf("tariff cache invalidation failed: %v", err)
	}
	return nil
}
