package out

import (
	"context"

	"github.com/agendavel/agenda-rules-api/internal/core/domain"
)

type CachePort interface {
	// Availability query results
	GetAvailability(ctx context.Context, dayStart, dayEnd string) ([]domain.DayAvailability, bool)
	StoreAvailability(ctx context.Context, dayStart, dayEnd string, days []domain.DayAvailability)

	// Rules summary
	GetSummary(ctx context.Context) (*domain.RulesSummary, bool)
	StoreSummary(ctx context.Context, summary domain.RulesSummary)

	// Full reset after every document mutation
	Invalidate(ctx context.Context)
}
