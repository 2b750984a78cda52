package bill

import (
	"time"

	"github.com/mpessoa/budgeter/internal/dateutil"
)

// NextDueDate computes a bill's next due date relative to ref.
//
// The candidate is dueDay in ref's own year and month. Once ref's day of
// month is strictly past dueDay the candidate moves one period ahead:
// +1 month, +3 months, or +1 year depending on frequency. ref.Day() equal to
// dueDay counts as not yet passed, so the bill stays due in the current
// period. When the target month is shorter than dueDay the date snaps to
// that month's last day.
func NextDueDate(dueDay int, freq Frequency, ref time.Time) time.Time {
	year, month := ref.Year(), ref.Month()

	if ref.Day() > dueDay {
		switch freq {
		case FrequencyMonthly:
			month++
		case FrequencyQuarterly:
			month += 3
		case FrequencyYearly:
			year++
		}
	}

	day := dueDay
	if last := dateutil.DaysIn(year, month); day > last {
		day = last
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// upcomingWithin keeps active bills whose derived next due date falls in
// [today, today+days], both ends inclusive. It stamps NextDueDate on the
// bills it returns.
func upcomingWithin(bills []*Bill, today time.Time, days int) []*Bill {
	horizon := today.AddDate(0, 0, days)

	var due []*Bill

	for _, b := range bills {
		if !b.IsActive {
			continue
		}

		b.NextDueDate = NextDueDate(b.DueDay, b.Frequency, today)

		if b.NextDueDate.Before(today) || b.NextDueDate.After(horizon) {
			continue
		}

		due = append(due, b)
	}

	return due
}
