package presence

import (
	"presence-service/internal/app/models"
	"presence-service/internal/pkg/utils"
)

// WeekdayStartEnd is one weekday's mean start and end, in seconds since
// midnight. Weekday is the ISO index, 0=Monday.
type WeekdayStartEnd struct {
	Weekday int
	Start   int
	End     int
}

// GroupByWeekday groups one user's presence intervals by weekday. The result
// always has exactly 7 slots, 0=Monday through 6=Sunday; a weekday without
// observations keeps an empty slot. Interval order within a slot follows map
// iteration order and is not deterministic.
func GroupByWeekday(records map[models.Date]models.PresenceRecord) [7][]int {
	var result [7][]int
	for date, record := range records {
		weekday := date.Weekday()
		result[weekday] = append(result[weekday], utils.Interval(record.Start, record.End))
	}
	return result
}

// MeanStartEndByWeekday calculates one user's mean start and end times per
// weekday. Sums are accumulated first and divided once; division is integer
// division truncating toward zero. Weekdays without observations are omitted
// entirely, and the emitted rows are always in ascending weekday order no
// matter how the input map iterates.
func MeanStartEndByWeekday(records map[models.Date]models.PresenceRecord) []WeekdayStartEnd {
	var sumStart, sumEnd, count [7]int
	for date, record := range records {
		weekday := date.Weekday()
		sumStart[weekday] += utils.SecondsSinceMidnight(record.Start)
		sumEnd[weekday] += utils.SecondsSinceMidnight(record.End)
		count[weekday]++
	}

	results := make([]WeekdayStartEnd, 0, 7)
	for weekday := 0; weekday < 7; weekday++ {
		if count[weekday] == 0 {
			continue
		}
		results = append(results, WeekdayStartEnd{
			Weekday: weekday,
			Start:   sumStart[weekday] / count[weekday],
			End:     sumEnd[weekday] / count[weekday],
		})
	}
	return results
}
