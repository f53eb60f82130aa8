package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthLength(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "January", year: 2025, month: time.January, want: 31},
		{name: "February common year", year: 2025, month: time.February, want: 28},
		{name: "February leap year", year: 2024, month: time.February, want: 29},
		{name: "February century", year: 1900, month: time.February, want: 28},
		{name: "February 400 years", year: 2000, month: time.February, want: 29},
		{name: "April", year: 2025, month: time.April, want: 30},
		{name: "November", year: 2025, month: time.November, want: 30},
		{name: "December", year: 2025, month: time.December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthLength(tt.year, tt.month))
		})
	}
}

func TestDayExistsAndWeekdayMatchTimePackage(t *testing.T) {
	for _, year := range []int{2023, 2024, 2100} {
		for month := time.January; month <= time.December; month++ {
			for day := 1; day <= DaysPerRow; day++ {
				pos := NewPosition(year, month, day, 0)
				ref := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
				exists := ref.Month() == month

				assert.Equal(t, exists, pos.DayExists(), "%d-%02d-%02d", year, month, day)

				wd, ok := pos.Weekday()
				assert.Equal(t, exists, ok)
				if exists {
					assert.Equal(t, ref.Weekday(), wd, "%d-%02d-%02d", year, month, day)
				}
			}
		}
	}
}

func TestKnownWeekdays(t *testing.T) {
	wd, ok := NewPosition(2024, time.January, 1, 0).Weekday()
	assert.True(t, ok)
	assert.Equal(t, time.Monday, wd)

	assert.True(t, NewPosition(2024, time.January, 7, 1).IsSunday())
	assert.False(t, NewPosition(2024, time.February, 31, 0).IsSunday())
}

func TestPositionFlags(t *testing.T) {
	pos := NewPosition(2025, time.January, 1, 0)
	assert.True(t, pos.IsFirstRowOfDay())
	assert.False(t, pos.IsLastRowOfDay())
	assert.True(t, pos.IsJanuary())
	assert.False(t, pos.IsDecember())
	assert.True(t, pos.IsOddMonth())
	assert.True(t, pos.IsDay1())
	assert.False(t, pos.IsDay31())

	pos = NewPosition(2025, time.December, 31, 2)
	assert.False(t, pos.IsFirstRowOfDay())
	assert.True(t, pos.IsLastRowOfDay())
	assert.True(t, pos.IsDecember())
	assert.False(t, pos.IsOddMonth())
	assert.True(t, pos.IsDay31())
	assert.Equal(t, DayKey{Month: time.December, Day: 31}, pos.Key())
}
