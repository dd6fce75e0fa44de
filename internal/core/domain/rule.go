package domain

type Weekday string

const (
	WeekdaySegundas Weekday = "segundas"
	WeekdayTercas   Weekday = "tercas"
	WeekdayQuartas  Weekday = "quartas"
	WeekdayQuintas  Weekday = "quintas"
	WeekdaySextas   Weekday = "sextas"
	WeekdaySabados  Weekday = "sábados"
	WeekdayDomingos Weekday = "domingos"
)

// BusinessWeekdays is the closed vocabulary accepted for weekly rules.
// Weekend labels exist only as derived names on specific-day rules.
var BusinessWeekdays = []Weekday{
	WeekdaySegundas,
	WeekdayTercas,
	WeekdayQuartas,
	WeekdayQuintas,
	WeekdaySextas,
}

func IsBusinessWeekday(name string) bool {
	for _, day := range BusinessWeekdays {
		if Weekday(name) == day {
			return true
		}
	}
	return false
}

// Interval is one bookable [start, end] time-of-day span, times kept in
// their HH:MM wire form.
type Interval struct {
	IntervalID string `json:"interval_id"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// DailyInterval belongs to the flat every-day collection. Entries are
// addressed by rule_id on deletion, there is no owning rule object.
type DailyInterval struct {
	RuleID string `json:"rule_id"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type SpecificDayRule struct {
	RuleID      string     `json:"rule_id"`
	Day         string     `json:"day"`
	WeekdayName Weekday    `json:"this_day_of_the_week_name"`
	Intervals   []Interval `json:"intervals"`
}

type WeeklyRule struct {
	RuleID      string     `json:"rule_id"`
	WeekdayName Weekday    `json:"day_of_the_week_name"`
	Intervals   []Interval `json:"intervals"`
}

// RuleDocument is the aggregate root and the unit of persistence. It is
// read fully at startup and rewritten wholesale on every mutation.
type RuleDocument struct {
	SpecificDays []SpecificDayRule `json:"specific_days"`
	Daily        []DailyInterval   `json:"daily"`
	Weekly       []WeeklyRule      `json:"weekly"`
}

func NewRuleDocument() *RuleDocument {
	return &RuleDocument{
		SpecificDays: []SpecificDayRule{},
		Daily:        []DailyInterval{},
		Weekly:       []WeeklyRule{},
	}
}

// TimeSpan is the endpoint pair the conflict check scans, independent of
// which collection owns the interval.
type TimeSpan struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func SpansOfIntervals(intervals []Interval) []TimeSpan {
	spans := make([]TimeSpan, 0, len(intervals))
	for _, interval := range intervals {
		spans = append(spans, TimeSpan{Start: interval.Start, End: interval.End})
	}
	return spans
}

func SpansOfDaily(intervals []DailyInterval) []TimeSpan {
	spans := make([]TimeSpan, 0, len(intervals))
	for _, interval := range intervals {
		spans = append(spans, TimeSpan{Start: interval.Start, End: interval.End})
	}
	return spans
}
