package rule_service

import (
	"strings"

	"github.com/agendavel/agenda-rules-api/internal/core/domain"
	"github.com/agendavel/agenda-rules-api/internal/utils"
)

// checkIntervalConflict guards one conflict-free collection. It validates
// the endpoint shape, requires start < end in integer form, and rejects
// any interval sharing an exact endpoint with an existing one or landing
// inside an existing [start, end] span (inclusive on both sides).
func checkIntervalConflict(spans []domain.TimeSpan, intervalStart, intervalEnd string) error {
	if !strings.Contains(intervalStart, ":") || !strings.Contains(intervalEnd, ":") {
		return domain.NewValidationError("Malformed data", "mal formated interval time")
	}

	if len(intervalStart) < 5 || len(intervalEnd) < 5 {
		return domain.NewValidationError("Malformed data", "mal formated interval time")
	}

	intStart := utils.TimeToInt(intervalStart)
	intEnd := utils.TimeToInt(intervalEnd)

	if intStart >= intEnd {
		return domain.NewValidationError("Malformed data", "interval_end is less than interval_start")
	}

	for _, span := range spans {
		if span.Start == intervalStart || span.End == intervalEnd {
			return domain.NewConflictError("Malformed data", "Conflit between intervals available")
		}

		existingStart := utils.TimeToInt(span.Start)
		existingEnd := utils.TimeToInt(span.End)

		if intStart >= existingStart && intStart <= existingEnd {
			return domain.NewConflictError("Malformed data", "Conflit between intervals available")
		}

		if intEnd >= existingStart && intEnd <= existingEnd {
			return domain.NewConflictError("Malformed data", "Conflit between intervals available")
		}

		// A new interval swallowing an existing one whole has neither
		// endpoint inside the existing span, so check that direction too
		if existingStart >= intStart && existingEnd <= intEnd {
			return domain.NewConflictError("Malformed data", "Conflit between intervals available")
		}
	}

	return nil
}
