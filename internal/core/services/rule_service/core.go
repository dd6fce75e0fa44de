package rule_service

import (
	"context"
	"sync"

	"github.com/agendavel/agenda-rules-api/internal/config"
	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
)

// RuleService owns the single authoritative in-memory copy of the rule
// document. Every mutation runs under the write lock and persists the
// whole document before returning.
type RuleService struct {
	document     *domain.RuleDocument
	documentPort out.DocumentPort
	cachePort    out.CachePort
	logger       out.LoggerPort
	cfg          *config.Config
	mu           sync.RWMutex
}

func NewRuleService(
	document *domain.RuleDocument,
	documentPort out.DocumentPort,
	cachePort out.CachePort,
	logger out.LoggerPort,
	cfg *config.Config,
) *RuleService {
	return &RuleService{
		document:     document,
		documentPort: documentPort,
		cachePort:    cachePort,
		logger:       logger.WithModule("RuleService"),
		cfg:          cfg,
	}
}

// persist rewrites the backing document. Called with the write lock held;
// a failure is fatal to the in-flight request only, the in-memory state
// keeps serving and diverges from disk until the next successful save.
func (s *RuleService) persist(ctx context.Context) error {
	if err := s.documentPort.Save(ctx, s.document); err != nil {
		s.logger.Error("rules.persist.failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.NewInternalError(
			"Internal error!",
			"There's a internal problem, please contact the system administrator",
		)
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *RuleService) invalidateCache(ctx context.Context) {
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.Invalidate(ctx)
	}
}

// ReloadRules re-reads the document from disk, replacing the in-memory
// copy. Driven by change announcements from external producers.
func (s *RuleService) ReloadRules(ctx context.Context) error {
	document, err := s.documentPort.Load(ctx)
	if err != nil {
		s.logger.Error("rules.reload.failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.NewInternalError(
			"Internal error!",
			"There's a internal problem, please contact the system administrator",
		)
	}

	s.mu.Lock()
	s.document = document
	s.mu.Unlock()

	s.invalidateCache(ctx)

	s.logger.Info("rules.reload.done", out.LogFields{
		"specificDays": len(document.SpecificDays),
		"daily":        len(document.Daily),
		"weekly":       len(document.Weekly),
	})
	return nil
}
