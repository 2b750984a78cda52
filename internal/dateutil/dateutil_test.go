package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpessoa/budgeter/internal/dateutil"
)

func TestParseMonth(t *testing.T) {
	got, err := dateutil.ParseMonth("2024-03")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.March, got.Month())

	_, err = dateutil.ParseMonth("2024-3")
	assert.Error(t, err)

	_, err = dateutil.ParseMonth("")
	assert.Error(t, err)
}

func TestFormatMonth(t *testing.T) {
	got := dateutil.FormatMonth(time.Date(2024, time.November, 17, 13, 45, 0, 0, time.UTC))
	assert.Equal(t, "2024-11", got)
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{name: "January", year: 2024, month: time.January, want: 31},
		{name: "LeapFebruary", year: 2024, month: time.February, want: 29},
		{name: "NonLeapFebruary", year: 2023, month: time.February, want: 28},
		{name: "April", year: 2024, month: time.April, want: 30},
		{name: "December", year: 2024, month: time.December, want: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dateutil.DaysIn(tt.year, tt.month))
		})
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "LeapFebruary",
			month:     "2024-02",
			wantStart: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "ThirtyDayMonth",
			month:     "2024-04",
			wantStart: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "ThirtyOneDayMonth",
			month:     "2024-01",
			wantStart: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Invalid",
			month:   "not-a-month",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := dateutil.MonthBounds(tt.month)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestDate(t *testing.T) {
	got := dateutil.Date(time.Date(2024, time.June, 15, 23, 59, 58, 123, time.UTC))
	assert.Equal(t, time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), got)
}
