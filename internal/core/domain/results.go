package domain

type RuleType string

const (
	RuleTypeSpecificDays RuleType = "specific_days"
	RuleTypeDaily        RuleType = "daily"
	RuleTypeWeekly       RuleType = "weekly"
)

func IsValidRuleType(name string) bool {
	switch RuleType(name) {
	case RuleTypeSpecificDays, RuleTypeDaily, RuleTypeWeekly:
		return true
	}
	return false
}

// DeleteResult echoes back what was removed.
type DeleteResult struct {
	Status     string   `json:"status"`
	About      string   `json:"about"`
	RuleType   RuleType `json:"rule_type"`
	RuleID     string   `json:"rule_id"`
	IntervalID string   `json:"interval_id,omitempty"`
}

// RulesSummary holds the human-readable sentences per collection.
type RulesSummary struct {
	SpecificDays []string `json:"specific_days"`
	Daily        []string `json:"daily"`
	Weekly       []string `json:"weekly"`
}

// DayAvailability is one entry of the availability query: a specific day
// with the union of its own, the daily and the matching weekly intervals.
type DayAvailability struct {
	Day       string     `json:"day"`
	Intervals []TimeSpan `json:"intervals"`
}
