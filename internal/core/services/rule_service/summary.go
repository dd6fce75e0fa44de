package rule_service

import (
	"context"
	"fmt"
	"strings"

	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
)

// joinSpans renders "<start> até as <end>, <start> até as <end>" with no
// trailing separator.
func joinSpans(spans []domain.TimeSpan) string {
	parts := make([]string, 0, len(spans))
	for _, span := range spans {
		parts = append(parts, fmt.Sprintf("%s até as %s", span.Start, span.End))
	}
	return strings.Join(parts, ", ")
}

// SummarizeRules renders every collection as human-readable sentences.
// Read-only and idempotent, so results are served from cache when warm.
func (s *RuleService) SummarizeRules(ctx context.Context) (*domain.RulesSummary, error) {
	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if summary, exists := s.cachePort.GetSummary(ctx); exists {
			s.logger.Debug("rules.summary.cache.hit", out.LogFields{})
			return summary, nil
		}
	}

	s.mu.RLock()
	summary := s.buildSummary()
	s.mu.RUnlock()

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreSummary(ctx, *summary)
	}

	return summary, nil
}

func (s *RuleService) buildSummary() *domain.RulesSummary {
	summary := &domain.RulesSummary{
		SpecificDays: []string{},
		Daily:        []string{},
		Weekly:       []string{},
	}

	dailyJoined := joinSpans(domain.SpansOfDaily(s.document.Daily))

	if len(s.document.Daily) > 0 {
		summary.Daily = append(summary.Daily,
			fmt.Sprintf("Estará disponível para atender todos os dias das: %s", dailyJoined))
	} else {
		summary.Daily = append(summary.Daily,
			"Não possui intervalos para atender todos os dias cadastrado")
	}

	weeklyJoinedByName := make(map[domain.Weekday]string)

	if len(s.document.Weekly) > 0 {
		for _, bucket := range s.document.Weekly {
			if len(bucket.Intervals) > 0 {
				joined := joinSpans(domain.SpansOfIntervals(bucket.Intervals))
				weeklyJoinedByName[bucket.WeekdayName] = joined
				summary.Weekly = append(summary.Weekly,
					fmt.Sprintf("Estará disponível para atender todas as %s nos intervalos de: %s", bucket.WeekdayName, joined))
			} else {
				summary.Weekly = append(summary.Weekly,
					fmt.Sprintf("%s: Não há intervalos cadastrados nesse dia da semana", bucket.WeekdayName))
			}
		}
	} else {
		summary.Weekly = append(summary.Weekly,
			"Não possui intervalos para atender semanalmente cadastrado")
	}

	if len(s.document.SpecificDays) > 0 {
		for _, rule := range s.document.SpecificDays {
			// The day's availability is the composition of the daily
			// intervals, the matching weekday's intervals and its own;
			// empty contributions are elided
			parts := []string{}
			if dailyJoined != "" {
				parts = append(parts, dailyJoined)
			}
			if weekly := weeklyJoinedByName[rule.WeekdayName]; weekly != "" {
				parts = append(parts, weekly)
			}
			if own := joinSpans(domain.SpansOfIntervals(rule.Intervals)); own != "" {
				parts = append(parts, own)
			}

			summary.SpecificDays = append(summary.SpecificDays,
				fmt.Sprintf("Estará disponível para atender dia %s nos intervalos de: %s", rule.Day, strings.Join(parts, ", ")))
		}
	} else {
		summary.SpecificDays = append(summary.SpecificDays,
			"Não possui intervalos para atender dias específicos cadastrado")
	}

	return summary
}
