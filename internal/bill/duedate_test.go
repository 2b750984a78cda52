package bill

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	tests := []struct {
		name   string
		dueDay int
		freq   Frequency
		ref    time.Time
		want   time.Time
	}{
		{
			name:   "DueLaterThisMonth",
			dueDay: 15,
			freq:   FrequencyMonthly,
			ref:    date(2024, time.June, 10),
			want:   date(2024, time.June, 15),
		},
		{
			name:   "DueTodayStays",
			dueDay: 15,
			freq:   FrequencyMonthly,
			ref:    date(2024, time.June, 15),
			want:   date(2024, time.June, 15),
		},
		{
			name:   "MonthlyAdvancesDayAfter",
			dueDay: 15,
			freq:   FrequencyMonthly,
			ref:    date(2024, time.June, 16),
			want:   date(2024, time.July, 15),
		},
		{
			name:   "QuarterlyAdvancesThreeMonths",
			dueDay: 15,
			freq:   FrequencyQuarterly,
			ref:    date(2024, time.June, 16),
			want:   date(2024, time.September, 15),
		},
		{
			name:   "YearlyAdvancesOneYear",
			dueDay: 15,
			freq:   FrequencyYearly,
			ref:    date(2024, time.June, 16),
			want:   date(2025, time.June, 15),
		},
		{
			name:   "ClampsToLeapFebruary",
			dueDay: 31,
			freq:   FrequencyMonthly,
			ref:    date(2024, time.February, 15),
			want:   date(2024, time.February, 29),
		},
		{
			name:   "ClampsToNonLeapFebruary",
			dueDay: 30,
			freq:   FrequencyMonthly,
			ref:    date(2023, time.February, 10),
			want:   date(2023, time.February, 28),
		},
		{
			name:   "AdvancesIntoShortMonthAndClamps",
			dueDay: 30,
			freq:   FrequencyMonthly,
			ref:    date(2024, time.January, 31),
			want:   date(2024, time.February, 29),
		},
		{
			name:   "MonthlyRollsOverYearEnd",
			dueDay: 5,
			freq:   FrequencyMonthly,
			ref:    date(2024, time.December, 20),
			want:   date(2025, time.January, 5),
		},
		{
			name:   "QuarterlyRollsOverYearEnd",
			dueDay: 10,
			freq:   FrequencyQuarterly,
			ref:    date(2024, time.November, 11),
			want:   date(2025, time.February, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextDueDate(tt.dueDay, tt.freq, tt.ref)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpcomingWithin(t *testing.T) {
	today := date(2024, time.June, 1)

	dueSoon := &Bill{ID: uuid.New(), Name: "Rent", DueDay: 5, Frequency: FrequencyMonthly, IsActive: true}
	dueToday := &Bill{ID: uuid.New(), Name: "Gym", DueDay: 1, Frequency: FrequencyMonthly, IsActive: true}
	dueAtHorizon := &Bill{ID: uuid.New(), Name: "Internet", DueDay: 8, Frequency: FrequencyMonthly, IsActive: true}
	dueLater := &Bill{ID: uuid.New(), Name: "Insurance", DueDay: 20, Frequency: FrequencyMonthly, IsActive: true}
	inactive := &Bill{ID: uuid.New(), Name: "Old Sub", DueDay: 3, Frequency: FrequencyMonthly, IsActive: false}

	got := upcomingWithin([]*Bill{dueSoon, dueToday, dueAtHorizon, dueLater, inactive}, today, 7)

	assert.Len(t, got, 3)
	assert.Contains(t, got, dueSoon)
	assert.Contains(t, got, dueToday)
	assert.Contains(t, got, dueAtHorizon)

	for _, b := range got {
		assert.False(t, b.NextDueDate.IsZero())
	}
}

func TestUpcomingWithin_ZeroDays(t *testing.T) {
	today := date(2024, time.June, 1)

	dueToday := &Bill{ID: uuid.New(), DueDay: 1, Frequency: FrequencyMonthly, IsActive: true}
	dueTomorrow := &Bill{ID: uuid.New(), DueDay: 2, Frequency: FrequencyMonthly, IsActive: true}

	got := upcomingWithin([]*Bill{dueToday, dueTomorrow}, today, 0)

	assert.Len(t, got, 1)
	assert.Contains(t, got, dueToday)
}
