package utils

import (
	"presence-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondsSinceMidnight(t *testing.T) {
	t.Run("Midnight", func(t *testing.T) {
		assert.Equal(t, 0, SecondsSinceMidnight(models.TimeOfDay{}))
	})

	t.Run("Morning Time", func(t *testing.T) {
		got := SecondsSinceMidnight(models.TimeOfDay{Hour: 9, Minute: 39, Second: 5})
		assert.Equal(t, 9*3600+39*60+5, got)
	})

	t.Run("End Of Day", func(t *testing.T) {
		got := SecondsSinceMidnight(models.TimeOfDay{Hour: 23, Minute: 59, Second: 59})
		assert.Equal(t, 86399, got)
	})
}

func TestInterval(t *testing.T) {
	t.Run("Regular Workday", func(t *testing.T) {
		start := models.TimeOfDay{Hour: 9}
		end := models.TimeOfDay{Hour: 17, Minute: 30}
		assert.Equal(t, 8*3600+30*60, Interval(start, end))
	})

	t.Run("End Before Start Is Negative", func(t *testing.T) {
		start := models.TimeOfDay{Hour: 17}
		end := models.TimeOfDay{Hour: 9}
		assert.Equal(t, -8*3600, Interval(start, end))
	})

	t.Run("Equal Times", func(t *testing.T) {
		moment := models.TimeOfDay{Hour: 12, Minute: 1, Second: 2}
		assert.Equal(t, 0, Interval(moment, moment))
	})
}

func TestMean(t *testing.T) {
	t.Run("Empty Slice Returns Zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Mean(nil))
		assert.Equal(t, 0.0, Mean([]int{}))
	})

	t.Run("Single Value", func(t *testing.T) {
		assert.Equal(t, 42.0, Mean([]int{42}))
	})

	t.Run("Two Values", func(t *testing.T) {
		assert.Equal(t, 2.5, Mean([]int{2, 3}))
	})

	t.Run("Negative Values", func(t *testing.T) {
		assert.Equal(t, -1.0, Mean([]int{-3, 1}))
	})
}

func TestParseDate(t *testing.T) {
	t.Run("Valid Date", func(t *testing.T) {
		date, err := ParseDate("2013-09-10")
		assert.NoError(t, err)
		assert.Equal(t, models.Date{Year: 2013, Month: time.September, Day: 10}, date)
	})

	t.Run("Invalid Date", func(t *testing.T) {
		_, err := ParseDate("not-a-date")
		assert.Error(t, err)
	})

	t.Run("Out Of Range Component", func(t *testing.T) {
		_, err := ParseDate("2013-13-40")
		assert.Error(t, err)
	})
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("Valid Time", func(t *testing.T) {
		tod, err := ParseTimeOfDay("09:39:05")
		assert.NoError(t, err)
		assert.Equal(t, models.TimeOfDay{Hour: 9, Minute: 39, Second: 5}, tod)
	})

	t.Run("Invalid Time", func(t *testing.T) {
		_, err := ParseTimeOfDay("25:00:00")
		assert.Error(t, err)
	})
}
