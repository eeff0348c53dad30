// Package cache memoizes assessment results. Assessments are pure
// functions of (domain, record, include_analysis), so caching is safe:
// a hit returns a byte-identical result to recomputation.
//
// The cache is two-tier: an in-process LRU always serves, and an
// optional Redis layer shares results across replicas.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/health-risk-server/internal/domain"
)

// ResultCache stores serialized assessment results keyed by a canonical
// request digest.
type ResultCache struct {
	local  *lru.Cache[string, []byte]
	remote *redis.Client
	ttl    time.Duration
	logger logrus.FieldLogger
}

// New builds a result cache. redisURL may be empty, in which case only
// the local LRU serves.
func New(localSize int, redisURL string, ttl time.Duration, logger logrus.FieldLogger) (*ResultCache, error) {
	local, err := lru.New[string, []byte](localSize)
	if err != nil {
		return nil, fmt.Errorf("creating local cache: %w", err)
	}

	c := &ResultCache{
		local:  local,
		ttl:    ttl,
		logger: logger,
	}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		c.remote = redis.NewClient(opts)
	}

	return c, nil
}

// Key derives the canonical digest of an assessment request. Record
// fields are serialized in sorted order so equivalent records always
// produce the same key.
func Key(domainName string, record domain.RawRecord, includeAnalysis bool) string {
	names := make([]string, 0, len(record))
	for name := range record {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	fmt.Fprintf(h, "%s|%t|", domainName, includeAnalysis)
	for _, name := range names {
		value, _ := json.Marshal(record[name])
		fmt.Fprintf(h, "%s=%s;", name, value)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns a cached result, checking local first, then Redis. A
// Redis hit is promoted into the local LRU. Redis errors degrade to a
// miss, never to a request failure.
func (c *ResultCache) Get(ctx context.Context, key string) (*domain.AssessmentResult, bool) {
	if payload, ok := c.local.Get(key); ok {
		return decodeResult(payload)
	}

	if c.remote == nil {
		return nil, false
	}

	payload, err := c.remote.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Warn("Redis cache read failed")
		}
		return nil, false
	}

	c.local.Add(key, payload)
	return decodeResult(payload)
}

// Put stores a result in both tiers. Write failures are logged and
// otherwise ignored; the cache is an optimization, not a dependency.
func (c *ResultCache) Put(ctx context.Context, key string, result *domain.AssessmentResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to serialize result for cache")
		return
	}

	c.local.Add(key, payload)

	if c.remote != nil {
		if err := c.remote.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.WithError(err).Warn("Redis cache write failed")
		}
	}
}

// Close releases the Redis connection if one exists.
func (c *ResultCache) Close() error {
	if c.remote != nil {
		return c.remote.Close()
	}
	return nil
}

func decodeResult(payload []byte) (*domain.AssessmentResult, bool) {
	var result domain.AssessmentResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false
	}
	return &result, true
}
