package presence

import (
	"testing"
	"time"

	"presence-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

// 2013-09-09 was a Monday.
func date(day int) models.Date {
	return models.Date{Year: 2013, Month: time.September, Day: day}
}

func record(startHour, endHour int) models.PresenceRecord {
	return models.PresenceRecord{
		Start: models.TimeOfDay{Hour: startHour},
		End:   models.TimeOfDay{Hour: endHour},
	}
}

func TestGroupByWeekday(t *testing.T) {
	t.Run("Empty Input Yields Seven Empty Slots", func(t *testing.T) {
		result := GroupByWeekday(nil)
		assert.Len(t, result, 7)
		for weekday := 0; weekday < 7; weekday++ {
			assert.Empty(t, result[weekday])
		}
	})

	t.Run("Intervals Land On The Right Weekday", func(t *testing.T) {
		records := map[models.Date]models.PresenceRecord{
			date(9):  record(9, 17),  // Monday
			date(10): record(8, 16),  // Tuesday
			date(17): record(10, 18), // the following Tuesday
		}

		result := GroupByWeekday(records)

		assert.Equal(t, []int{8 * 3600}, result[0])
		assert.ElementsMatch(t, []int{8 * 3600, 8 * 3600}, result[1])
		for weekday := 2; weekday < 7; weekday++ {
			assert.Empty(t, result[weekday])
		}
	})

	t.Run("Negative Intervals Are Kept", func(t *testing.T) {
		records := map[models.Date]models.PresenceRecord{
			date(9): record(17, 9),
		}

		result := GroupByWeekday(records)

		assert.Equal(t, []int{-8 * 3600}, result[0])
	})
}

func TestMeanStartEndByWeekday(t *testing.T) {
	t.Run("Empty Input Yields No Rows", func(t *testing.T) {
		assert.Empty(t, MeanStartEndByWeekday(nil))
	})

	t.Run("Weekdays Without Observations Are Omitted", func(t *testing.T) {
		records := map[models.Date]models.PresenceRecord{
			date(10): record(9, 17), // Tuesday
		}

		result := MeanStartEndByWeekday(records)

		assert.Len(t, result, 1)
		assert.Equal(t, WeekdayStartEnd{Weekday: 1, Start: 9 * 3600, End: 17 * 3600}, result[0])
	})

	t.Run("Rows Are In Ascending Weekday Order", func(t *testing.T) {
		records := map[models.Date]models.PresenceRecord{
			date(13): record(8, 15), // Friday
			date(9):  record(9, 17), // Monday
			date(11): record(7, 14), // Wednesday
		}

		result := MeanStartEndByWeekday(records)

		assert.Len(t, result, 3)
		assert.Equal(t, 0, result[0].Weekday)
		assert.Equal(t, 2, result[1].Weekday)
		assert.Equal(t, 4, result[2].Weekday)
	})

	t.Run("Means Accumulate Then Divide Once", func(t *testing.T) {
		records := map[models.Date]models.PresenceRecord{
			date(10): { // Tuesday
				Start: models.TimeOfDay{Hour: 9, Minute: 0, Second: 0},
				End:   models.TimeOfDay{Hour: 17, Minute: 0, Second: 0},
			},
			date(17): { // the following Tuesday
				Start: models.TimeOfDay{Hour: 9, Minute: 0, Second: 1},
				End:   models.TimeOfDay{Hour: 18, Minute: 0, Second: 0},
			},
		}

		result := MeanStartEndByWeekday(records)

		assert.Len(t, result, 1)
		// (32400 + 32401) / 2 truncates to 32400
		assert.Equal(t, 32400, result[0].Start)
		assert.Equal(t, (17*3600+18*3600)/2, result[0].End)
	})
}
