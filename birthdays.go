package addressbook

import (
	"fmt"
	"time"
)

// upcomingWindowDays is the inclusive horizon of the upcoming-birthdays
// report: birthdays from today through today+7 are reported.
const upcomingWindowDays = 7

// UpcomingBirthday names a contact whose birthday falls within the report
// window, along with the date to congratulate them on.
type UpcomingBirthday struct {
	Name               Name
	CongratulationDate time.Time
}

// String renders the entry as "<name>: DD.MM.YYYY".
func (u UpcomingBirthday) String() string {
	return fmt.Sprintf("%s: %s", u.Name, u.CongratulationDate.Format(DateLayout))
}

// UpcomingBirthdays reports every record whose birthday next occurs within
// the coming week, today inclusive, in book insertion order. Records
// without a birthday are skipped. A birthday that already passed this year
// is projected onto next year before the window test.
//
// The congratulation date is the birthday's occurrence moved forward to
// Monday when it lands on a weekend. The window test applies to the
// occurrence itself, so a Saturday birthday near the edge of the window may
// carry a congratulation date just past it.
//
// The query never mutates the book.
func (b *Book) UpcomingBirthdays() []UpcomingBirthday {
	start := time.Now()
	today := dateOf(b.now())

	var upcoming []UpcomingBirthday
	for _, r := range b.records.Values() {
		if r.birthday == nil {
			continue
		}

		occurrence := nextOccurrence(r.birthday.Date(), today)
		if days := daysBetween(today, occurrence); days > upcomingWindowDays {
			continue
		}

		upcoming = append(upcoming, UpcomingBirthday{
			Name:               r.name,
			CongratulationDate: shiftOffWeekend(occurrence),
		})
	}

	b.metrics.ObserveScan(time.Since(start))
	b.metrics.ObserveOp("upcoming_birthdays", "ok")

	return upcoming
}

// dateOf truncates t to a calendar date: midnight UTC on t's year, month
// and day. All window arithmetic runs on such dates, which keeps day
// differences exact multiples of 24 hours.
func dateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// nextOccurrence projects a birthday onto today's year, or onto the next
// year when this year's date is already past. time.Date normalizes 29
// February to 1 March in common years, so every birthday occurs every
// year.
func nextOccurrence(birthday, today time.Time) time.Time {
	occ := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if occ.Before(today) {
		occ = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}

	return occ
}

// daysBetween returns the whole days from a to b. Both arguments must be
// UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// shiftOffWeekend advances d one day at a time until it is a weekday.
func shiftOffWeekend(d time.Time) time.Time {
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}

	return d
}
