package cache

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agendavel/agenda-rules-api/internal/config"
	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
)

// LRUCacheAdapter keeps availability query results (keyed by the
// normalized date range) and the rules summary. Both are dropped
// wholesale on any document mutation or external change announcement.
type LRUCacheAdapter struct {
	availability *lru.Cache[string, []domain.DayAvailability]
	summary      *domain.RulesSummary
	mu           sync.RWMutex
	logger       out.LoggerPort
}

// NewLRUCacheAdapter always builds a working cache. Whether caching is
// enabled at all is the caller's decision, a disabled cache means no
// adapter is constructed in the first place.
func NewLRUCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*LRUCacheAdapter, error) {
	availability, err := lru.New[string, []domain.DayAvailability](cfg.Cache.Size)
	if err != nil {
		logger.Error("cache.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.Size,
		})
		return nil, err
	}

	return &LRUCacheAdapter{
		availability: availability,
		logger:       logger.WithModule("CacheAdapter"),
	}, nil
}

func availabilityKey(dayStart, dayEnd string) string {
	return dayStart + "|" + dayEnd
}

func (c *LRUCacheAdapter) GetAvailability(ctx context.Context, dayStart, dayEnd string) ([]domain.DayAvailability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	days, exists := c.availability.Get(availabilityKey(dayStart, dayEnd))
	if !exists {
		c.logger.Debug("cache.availability.miss", out.LogFields{
			"dayStart": dayStart,
			"dayEnd":   dayEnd,
		})
		return nil, false
	}

	c.logger.Debug("cache.availability.hit", out.LogFields{
		"dayStart": dayStart,
		"dayEnd":   dayEnd,
		"days":     len(days),
	})
	return days, true
}

func (c *LRUCacheAdapter) StoreAvailability(ctx context.Context, dayStart, dayEnd string, days []domain.DayAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.availability.Add(availabilityKey(dayStart, dayEnd), days)
}

func (c *LRUCacheAdapter) GetSummary(ctx context.Context) (*domain.RulesSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.summary == nil {
		return nil, false
	}
	return c.summary, true
}

func (c *LRUCacheAdapter) StoreSummary(ctx context.Context, summary domain.RulesSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.summary = &summary
}

func (c *LRUCacheAdapter) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.availability.Purge()
	c.summary = nil

	c.logger.Debug("cache.invalidated", out.LogFields{})
}
