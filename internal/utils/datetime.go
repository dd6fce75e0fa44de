package utils

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/agendavel/agenda-rules-api/internal/core/domain"
)

var (
	dateFormatRegex = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])[-/. ](0[1-9]|1[012])[-/. ](19|20)\d\d$`)
	timeFormatRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

	daySeparators = strings.NewReplacer("/", "-", ".", "-", " ", "-")
)

// DateFormatIsValid checks the dd-mm-yyyy shape only. Day-of-month
// validity is not verified, 31-02-2024 passes.
func DateFormatIsValid(date string) bool {
	return dateFormatRegex.MatchString(date)
}

func TimeFormatIsValid(timeString string) bool {
	return timeFormatRegex.MatchString(timeString)
}

// TimeToInt strips the colon and parses the digits, "14:30" becomes 1430.
// The result is only meaningful for relative ordering.
func TimeToInt(timeString string) int {
	intTime, _ := strconv.Atoi(strings.Replace(timeString, ":", "", 1))
	return intTime
}

// NormalizeDay rewrites any accepted separator to "-".
func NormalizeDay(day string) string {
	return daySeparators.Replace(day)
}

func parseDay(day string) (time.Time, error) {
	parts := strings.Split(NormalizeDay(day), "-")
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return time.Parse("2006-01-02", strings.Join(parts, "-"))
}

func DatesEqual(firstDate, lastDate string) bool {
	first, err := parseDay(firstDate)
	if err != nil {
		return false
	}
	last, err := parseDay(lastDate)
	if err != nil {
		return false
	}
	return first.Equal(last)
}

func DateGreaterOrEqual(dayStart, dayEnd string) bool {
	start, err := parseDay(dayStart)
	if err != nil {
		return false
	}
	end, err := parseDay(dayEnd)
	if err != nil {
		return false
	}
	return !start.Before(end)
}

// DateLessOrEqual never raises on malformed input, it answers false so a
// range scan simply skips the unparsable day.
func DateLessOrEqual(dayStart, dayEnd string) bool {
	start, err := parseDay(dayStart)
	if err != nil {
		return false
	}
	end, err := parseDay(dayEnd)
	if err != nil {
		return false
	}
	return !start.After(end)
}

// WeekdayName maps a dd-mm-yyyy date to its business-facing weekday
// label, empty string when the date does not parse.
func WeekdayName(date string) domain.Weekday {
	parsed, err := parseDay(date)
	if err != nil {
		return ""
	}

	switch parsed.Weekday() {
	case time.Monday:
		return domain.WeekdaySegundas
	case time.Tuesday:
		return domain.WeekdayTercas
	case time.Wednesday:
		return domain.WeekdayQuartas
	case time.Thursday:
		return domain.WeekdayQuintas
	case time.Friday:
		return domain.WeekdaySextas
	case time.Saturday:
		return domain.WeekdaySabados
	default:
		return domain.WeekdayDomingos
	}
}
