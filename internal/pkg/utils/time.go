package utils

import (
	"presence-service/internal/app/models"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04:05"
)

// SecondsSinceMidnight converts a time of day to seconds elapsed since 00:00:00.
func SecondsSinceMidnight(t models.TimeOfDay) int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Interval calculates the length in seconds between two times of day. The
// result is negative when end precedes start; callers must not assume
// non-negativity.
func Interval(start, end models.TimeOfDay) int {
	return SecondsSinceMidnight(end) - SecondsSinceMidnight(start)
}

// Mean calculates the arithmetic mean. Returns zero for an empty slice.
func Mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, value := range values {
		sum += value
	}
	return float64(sum) / float64(len(values))
}

func ParseDate(value string) (models.Date, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return models.Date{}, err
	}
	return models.Date{Year: parsed.Year(), Month: parsed.Month(), Day: parsed.Day()}, nil
}

func ParseTimeOfDay(value string) (models.TimeOfDay, error) {
	parsed, err := time.Parse(TimeOfDayLayout, value)
	if err != nil {
		return models.TimeOfDay{}, err
	}
	return models.TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute(), Second: parsed.Second()}, nil
}
