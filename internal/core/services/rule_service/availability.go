package rule_service

import (
	"context"

	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
	"github.com/agendavel/agenda-rules-api/internal/utils"
)

// AvailableIntervals answers which specific days inside [dayStart,
// dayEnd] can be booked, each with the union of its own intervals, the
// daily intervals and the matching weekday bucket. Days that fail to
// parse are skipped by the fail-safe date comparisons. An empty result
// means no specific-day rule fell inside the range.
func (s *RuleService) AvailableIntervals(ctx context.Context, dayStart, dayEnd string) ([]domain.DayAvailability, error) {
	dayStart = utils.NormalizeDay(dayStart)
	dayEnd = utils.NormalizeDay(dayEnd)

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		if days, exists := s.cachePort.GetAvailability(ctx, dayStart, dayEnd); exists {
			s.logger.Debug("rules.availability.cache.hit", out.LogFields{
				"dayStart": dayStart,
				"dayEnd":   dayEnd,
			})
			return days, nil
		}
	}

	s.mu.RLock()
	days := s.buildAvailability(dayStart, dayEnd)
	s.mu.RUnlock()

	if s.cachePort != nil && s.cfg.Cache.Enabled {
		s.cachePort.StoreAvailability(ctx, dayStart, dayEnd, days)
	}

	return days, nil
}

func (s *RuleService) buildAvailability(dayStart, dayEnd string) []domain.DayAvailability {
	days := []domain.DayAvailability{}

	for _, rule := range s.document.SpecificDays {
		if !utils.DateGreaterOrEqual(rule.Day, dayStart) || !utils.DateLessOrEqual(rule.Day, dayEnd) {
			continue
		}

		intervals := make([]domain.TimeSpan, 0, len(rule.Intervals))
		intervals = append(intervals, domain.SpansOfIntervals(rule.Intervals)...)
		intervals = append(intervals, domain.SpansOfDaily(s.document.Daily)...)

		weekdayName := utils.WeekdayName(rule.Day)
		for _, bucket := range s.document.Weekly {
			if bucket.WeekdayName == weekdayName {
				intervals = append(intervals, domain.SpansOfIntervals(bucket.Intervals)...)
			}
		}

		days = append(days, domain.DayAvailability{
			Day:       rule.Day,
			Intervals: intervals,
		})
	}

	return days
}
