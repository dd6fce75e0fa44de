package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendavel/agenda-rules-api/internal/config"
	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
)

type nopLogger struct{}

func (l nopLogger) Debug(event string, fields out.LogFields)       {}
func (l nopLogger) Info(event string, fields out.LogFields)        {}
func (l nopLogger) Warn(event string, fields out.LogFields)        {}
func (l nopLogger) Error(event string, fields out.LogFields)       {}
func (l nopLogger) WithFields(fields out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(module string) out.LoggerPort        { return l }

func newTestAdapter(t *testing.T, path string) *JSONStoreAdapter {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.File = path
	return NewJSONStoreAdapter(cfg, nopLogger{})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("reads an existing document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "database.json")
		content := `{
  "specific_days": [
    {
      "rule_id": "r1",
      "day": "01-06-2024",
      "this_day_of_the_week_name": "sábados",
      "intervals": [
        {"interval_id": "i1", "start": "09:00", "end": "10:00"}
      ]
    }
  ],
  "daily": [
    {"rule_id": "d1", "start": "08:00", "end": "09:00"}
  ],
  "weekly": []
}`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		adapter := newTestAdapter(t, path)
		document, err := adapter.Load(ctx)
		require.NoError(t, err)

		require.Len(t, document.SpecificDays, 1)
		assert.Equal(t, "r1", document.SpecificDays[0].RuleID)
		assert.Equal(t, domain.WeekdaySabados, document.SpecificDays[0].WeekdayName)
		require.Len(t, document.Daily, 1)
		assert.Equal(t, "08:00", document.Daily[0].Start)
		assert.Empty(t, document.Weekly)
	})

	t.Run("fails when the file is absent", func(t *testing.T) {
		adapter := newTestAdapter(t, filepath.Join(t.TempDir(), "missing.json"))
		_, err := adapter.Load(ctx)
		assert.Error(t, err)
	})

	t.Run("fails on a malformed document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "database.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		adapter := newTestAdapter(t, path)
		_, err := adapter.Load(ctx)
		assert.Error(t, err)
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "database.json")
	adapter := newTestAdapter(t, path)

	document := &domain.RuleDocument{
		SpecificDays: []domain.SpecificDayRule{{
			RuleID:      "r1",
			Day:         "03-06-2024",
			WeekdayName: domain.WeekdaySegundas,
			Intervals: []domain.Interval{
				{IntervalID: "i1", Start: "09:00", End: "10:00"},
			},
		}},
		Daily: []domain.DailyInterval{
			{RuleID: "d1", Start: "08:00", End: "09:00"},
		},
		Weekly: []domain.WeeklyRule{{
			RuleID:      "w1",
			WeekdayName: domain.WeekdaySegundas,
			Intervals: []domain.Interval{
				{IntervalID: "i2", Start: "10:00", End: "11:00"},
			},
		}},
	}

	require.NoError(t, adapter.Save(ctx, document))

	loaded, err := adapter.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, document, loaded)

	// Save again and make sure the bytes are stable
	require.NoError(t, adapter.Save(ctx, loaded))
	reloaded, err := adapter.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, document, reloaded)
}

func TestSaveIsPrettyPrinted(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "database.json")
	adapter := newTestAdapter(t, path)

	require.NoError(t, adapter.Save(ctx, domain.NewRuleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n")
	assert.Contains(t, string(data), "  \"specific_days\"")
}
