package rule_service

import (
	"context"

	"github.com/google/uuid"

	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
	"github.com/agendavel/agenda-rules-api/internal/utils"
)

// StoreSpecificDayRule appends an interval to the rule owning the given
// calendar day, creating the rule when the day is new. One rule exists
// per distinct day.
func (s *RuleService) StoreSpecificDayRule(ctx context.Context, day, intervalStart, intervalEnd string) (*domain.SpecificDayRule, error) {
	day = utils.NormalizeDay(day)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.document.SpecificDays {
		rule := &s.document.SpecificDays[i]
		if rule.Day != day {
			continue
		}

		if err := checkIntervalConflict(domain.SpansOfIntervals(rule.Intervals), intervalStart, intervalEnd); err != nil {
			return nil, err
		}

		rule.Intervals = append(rule.Intervals, domain.Interval{
			IntervalID: uuid.NewString(),
			Start:      intervalStart,
			End:        intervalEnd,
		})

		if err := s.persist(ctx); err != nil {
			return nil, err
		}

		s.logger.Info("rules.specific_day.interval_added", out.LogFields{
			"ruleId": rule.RuleID,
			"day":    day,
		})
		return rule, nil
	}

	// A fresh day has no spans to conflict with, but the endpoint shape
	// and ordering rules still apply
	if err := checkIntervalConflict(nil, intervalStart, intervalEnd); err != nil {
		return nil, err
	}

	rule := domain.SpecificDayRule{
		RuleID:      uuid.NewString(),
		Day:         day,
		WeekdayName: utils.WeekdayName(day),
		Intervals: []domain.Interval{{
			IntervalID: uuid.NewString(),
			Start:      intervalStart,
			End:        intervalEnd,
		}},
	}
	s.document.SpecificDays = append(s.document.SpecificDays, rule)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("rules.specific_day.created", out.LogFields{
		"ruleId": rule.RuleID,
		"day":    day,
	})
	return &s.document.SpecificDays[len(s.document.SpecificDays)-1], nil
}

// StoreDailyRule appends an interval to the flat every-day collection.
func (s *RuleService) StoreDailyRule(ctx context.Context, intervalStart, intervalEnd string) (*domain.DailyInterval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := checkIntervalConflict(domain.SpansOfDaily(s.document.Daily), intervalStart, intervalEnd); err != nil {
		return nil, err
	}

	interval := domain.DailyInterval{
		RuleID: uuid.NewString(),
		Start:  intervalStart,
		End:    intervalEnd,
	}
	s.document.Daily = append(s.document.Daily, interval)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("rules.daily.created", out.LogFields{
		"ruleId": interval.RuleID,
	})
	return &s.document.Daily[len(s.document.Daily)-1], nil
}

// StoreWeeklyRule appends an interval to the named weekday bucket,
// creating the bucket on first use. The weekday name is restricted to
// the five business-day labels, validated before this call.
func (s *RuleService) StoreWeeklyRule(ctx context.Context, dayOfTheWeekName, intervalStart, intervalEnd string) (*domain.WeeklyRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.document.Weekly {
		bucket := &s.document.Weekly[i]
		if bucket.WeekdayName != domain.Weekday(dayOfTheWeekName) {
			continue
		}

		if err := checkIntervalConflict(domain.SpansOfIntervals(bucket.Intervals), intervalStart, intervalEnd); err != nil {
			return nil, err
		}

		bucket.Intervals = append(bucket.Intervals, domain.Interval{
			IntervalID: uuid.NewString(),
			Start:      intervalStart,
			End:        intervalEnd,
		})

		if err := s.persist(ctx); err != nil {
			return nil, err
		}

		s.logger.Info("rules.weekly.interval_added", out.LogFields{
			"ruleId":  bucket.RuleID,
			"weekday": dayOfTheWeekName,
		})
		return bucket, nil
	}

	if err := checkIntervalConflict(nil, intervalStart, intervalEnd); err != nil {
		return nil, err
	}

	bucket := domain.WeeklyRule{
		RuleID:      uuid.NewString(),
		WeekdayName: domain.Weekday(dayOfTheWeekName),
		Intervals: []domain.Interval{{
			IntervalID: uuid.NewString(),
			Start:      intervalStart,
			End:        intervalEnd,
		}},
	}
	s.document.Weekly = append(s.document.Weekly, bucket)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("rules.weekly.created", out.LogFields{
		"ruleId":  bucket.RuleID,
		"weekday": dayOfTheWeekName,
	})
	return &s.document.Weekly[len(s.document.Weekly)-1], nil
}
