package in

import (
	"context"

	"github.com/agendavel/agenda-rules-api/internal/core/domain"
)

type RuleUseCase interface {
	// Rule creation, one call per rule flavor
	StoreSpecificDayRule(ctx context.Context, day, intervalStart, intervalEnd string) (*domain.SpecificDayRule, error)
	StoreDailyRule(ctx context.Context, intervalStart, intervalEnd string) (*domain.DailyInterval, error)
	StoreWeeklyRule(ctx context.Context, dayOfTheWeekName, intervalStart, intervalEnd string) (*domain.WeeklyRule, error)

	// Removal of a whole rule or a single interval
	DeleteRule(ctx context.Context, ruleType, ruleID, intervalID string) (*domain.DeleteResult, error)

	// Read side
	SummarizeRules(ctx context.Context) (*domain.RulesSummary, error)
	AvailableIntervals(ctx context.Context, dayStart, dayEnd string) ([]domain.DayAvailability, error)

	// Re-read the document from disk after an external change announcement
	ReloadRules(ctx context.Context) error
}
