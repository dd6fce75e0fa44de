package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/agendavel/agenda-rules-api/internal/config"
	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
)

// JSONStoreAdapter persists the rule document as one pretty-printed JSON
// file. The whole file is read at load and rewritten on every save; the
// process is assumed to be the file's only writer.
type JSONStoreAdapter struct {
	path   string
	logger out.LoggerPort
}

func NewJSONStoreAdapter(cfg *config.Config, logger out.LoggerPort) *JSONStoreAdapter {
	return &JSONStoreAdapter{
		path:   cfg.Database.File,
		logger: logger.WithModule("JSONStoreAdapter"),
	}
}

func (a *JSONStoreAdapter) Load(ctx context.Context) (*domain.RuleDocument, error) {
	data, err := os.ReadFile(a.path)
	if err != nil {
		a.logger.Error("jsonstore.load.read_failed", out.LogFields{
			"path":  a.path,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("jsonstore: read %s: %w", a.path, err)
	}

	document := domain.NewRuleDocument()
	if err := json.Unmarshal(data, document); err != nil {
		a.logger.Error("jsonstore.load.decode_failed", out.LogFields{
			"path":  a.path,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("jsonstore: decode %s: %w", a.path, err)
	}

	a.logger.Info("jsonstore.load.done", out.LogFields{
		"path":         a.path,
		"specificDays": len(document.SpecificDays),
		"daily":        len(document.Daily),
		"weekly":       len(document.Weekly),
	})
	return document, nil
}

func (a *JSONStoreAdapter) Save(ctx context.Context, document *domain.RuleDocument) error {
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: encode: %w", err)
	}

	if err := os.WriteFile(a.path, data, 0o644); err != nil {
		a.logger.Error("jsonstore.save.write_failed", out.LogFields{
			"path":  a.path,
			"error": err.Error(),
		})
		return fmt.Errorf("jsonstore: write %s: %w", a.path, err)
	}

	return nil
}
