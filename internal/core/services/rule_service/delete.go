package rule_service

import (
	"context"

	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
)

// DeleteRule removes a whole rule or one interval, depending on the rule
// type and whether an interval id is given. Weekly buckets can never be
// removed wholesale, only their individual intervals.
func (s *RuleService) DeleteRule(ctx context.Context, ruleType, ruleID, intervalID string) (*domain.DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch domain.RuleType(ruleType) {
	case domain.RuleTypeSpecificDays:
		return s.deleteSpecificDay(ctx, ruleID, intervalID)
	case domain.RuleTypeDaily:
		return s.deleteDaily(ctx, ruleID)
	case domain.RuleTypeWeekly:
		return s.deleteWeekly(ctx, ruleID, intervalID)
	}

	return nil, domain.NewValidationError("rule_type invalid!", "rule_type invalid is not valid!")
}

func (s *RuleService) deleteSpecificDay(ctx context.Context, ruleID, intervalID string) (*domain.DeleteResult, error) {
	if intervalID != "" {
		for i := range s.document.SpecificDays {
			rule := &s.document.SpecificDays[i]
			if rule.RuleID != ruleID {
				continue
			}

			for index, interval := range rule.Intervals {
				if interval.IntervalID != intervalID {
					continue
				}

				rule.Intervals = append(rule.Intervals[:index], rule.Intervals[index+1:]...)

				if err := s.persist(ctx); err != nil {
					return nil, err
				}

				s.logger.Info("rules.specific_day.interval_deleted", out.LogFields{
					"ruleId":     ruleID,
					"intervalId": intervalID,
				})
				return &domain.DeleteResult{
					Status:     "SUCCESS",
					About:      "Deleted interval_id!",
					RuleType:   domain.RuleTypeSpecificDays,
					RuleID:     ruleID,
					IntervalID: intervalID,
				}, nil
			}

			return nil, domain.NewNotFoundError("interval_id not found!", "interval_id to delete not found")
		}
	}

	for i := range s.document.SpecificDays {
		if s.document.SpecificDays[i].RuleID != ruleID {
			continue
		}

		s.document.SpecificDays = append(s.document.SpecificDays[:i], s.document.SpecificDays[i+1:]...)

		if err := s.persist(ctx); err != nil {
			return nil, err
		}

		s.logger.Info("rules.specific_day.deleted", out.LogFields{
			"ruleId": ruleID,
		})
		return &domain.DeleteResult{
			Status:   "SUCCESS",
			About:    "Deleted rule!",
			RuleType: domain.RuleTypeSpecificDays,
			RuleID:   ruleID,
		}, nil
	}

	return nil, domain.NewNotFoundError("rule_id not found!", "rule_id is not present")
}

func (s *RuleService) deleteDaily(ctx context.Context, ruleID string) (*domain.DeleteResult, error) {
	for i := range s.document.Daily {
		if s.document.Daily[i].RuleID != ruleID {
			continue
		}

		s.document.Daily = append(s.document.Daily[:i], s.document.Daily[i+1:]...)

		if err := s.persist(ctx); err != nil {
			return nil, err
		}

		s.logger.Info("rules.daily.deleted", out.LogFields{
			"ruleId": ruleID,
		})
		return &domain.DeleteResult{
			Status:   "SUCCESS",
			About:    "Deleted rule!",
			RuleType: domain.RuleTypeDaily,
			RuleID:   ruleID,
		}, nil
	}

	return nil, domain.NewNotFoundError("rule_id not found!", "rule_id is not present")
}

func (s *RuleService) deleteWeekly(ctx context.Context, ruleID, intervalID string) (*domain.DeleteResult, error) {
	if intervalID == "" {
		return nil, domain.NewNotAllowedError(
			"Can't delete rule_id!",
			"you can't delete rule_id from rule_type weekly, you can only delete interval_id from rule_type weekly",
		)
	}

	for i := range s.document.Weekly {
		bucket := &s.document.Weekly[i]
		if bucket.RuleID != ruleID {
			continue
		}

		for index, interval := range bucket.Intervals {
			if interval.IntervalID != intervalID {
				continue
			}

			bucket.Intervals = append(bucket.Intervals[:index], bucket.Intervals[index+1:]...)

			if err := s.persist(ctx); err != nil {
				return nil, err
			}

			s.logger.Info("rules.weekly.interval_deleted", out.LogFields{
				"ruleId":     ruleID,
				"intervalId": intervalID,
			})
			return &domain.DeleteResult{
				Status:     "SUCCESS",
				About:      "Deleted interval_id!",
				RuleType:   domain.RuleTypeWeekly,
				RuleID:     ruleID,
				IntervalID: intervalID,
			}, nil
		}

		return nil, domain.NewNotFoundError("interval_id not found!", "interval_id to delete not found")
	}

	return nil, domain.NewNotFoundError("rule_id not found!", "rule_id is not present")
}
