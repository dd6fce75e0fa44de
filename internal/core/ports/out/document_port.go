package out

import (
	"context"

	"github.com/agendavel/agenda-rules-api/internal/core/domain"
)

// DocumentPort owns the persisted rule document. Load reads the whole
// document, Save rewrites it wholesale.
type DocumentPort interface {
	Load(ctx context.Context) (*domain.RuleDocument, error)
	Save(ctx context.Context, document *domain.RuleDocument) error
}
