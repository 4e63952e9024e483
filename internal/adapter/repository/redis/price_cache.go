package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iho/gocredit/internal/usecase"
)

// PriceCache stores oracle prices as the decimal strings the oracle returned.
type PriceCache struct {
	client *redis.Client
	prefix string
}

// NewPriceCache creates a new PriceCache.
func NewPriceCache(client *redis.Client) *PriceCache {
	return &PriceCache{
		client: client,
		prefix: "price:",
	}
}

// Get returns the cached price of symbol. ok is false on a cache miss.
func (c *PriceCache) Get(ctx context.Context, symbol string) (price string, ok bool, err error) {
	price, err = c.client.Get(ctx, c.key(symbol)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return price, true, nil
}

// Set stores the price of symbol for ttl.
func (c *PriceCache) Set(ctx context.Context, symbol, price string, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(symbol), price, ttl).Err()
}

// Delete evicts the price of symbol.
func (c *PriceCache) Delete(ctx context.Context, symbol string) error {
	return c.client.Del(ctx, c.key(symbol)).Err()
}

func (c *PriceCache) key(symbol string) string {
	return c.prefix + strings.ToUpper(symbol)
}

// CachedPriceOracle serves prices from a PriceCache and falls through to the
// wrapped oracle on a miss. Cache failures are logged and never fail a lookup.
type CachedPriceOracle struct {
	next   usecase.PriceOracle
	cache  *PriceCache
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachedPriceOracle wraps next with cache. A non-positive ttl disables caching.
func NewCachedPriceOracle(next usecase.PriceOracle, cache *PriceCache, ttl time.Duration, logger zerolog.Logger) *CachedPriceOracle {
	return &CachedPriceOracle{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// GetTokenPriceBySymbol implements usecase.PriceOracle.
func (o *CachedPriceOracle) GetTokenPriceBySymbol(ctx context.Context, symbol string) (string, error) {
	if o.ttl <= 0 {
		return o.next.GetTokenPriceBySymbol(ctx, symbol)
	}

	price, ok, err := o.cache.Get(ctx, symbol)
	if err != nil {
		o.logger.Warn().Err(err).Str("symbol", symbol).Msg("price cache read failed")
	}
	if ok {
		return price, nil
	}

	price, err = o.next.GetTokenPriceBySymbol(ctx, symbol)
	if err != nil {
		return "", err
	}

	if err := o.cache.Set(ctx, symbol, price, o.ttl); err != nil {
		o.logger.Warn().Err(err).Str("symbol", symbol).Msg("price cache write failed")
	}
	return price, nil
}
