package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/addressbook-go/addressbook"
)

// birthdaysCmd seeds a book with contacts whose birthdays cluster around
// the current date, so the report always has something to say.
var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "Print the upcoming-birthday report for a sample book",
	Long: `Seeds a book with sample contacts whose birthdays fall around the current
date, then prints who should be congratulated and when. Only birthdays
within the next seven days are reported; one landing on a weekend is
congratulated the following Monday.`,
	RunE: runBirthdays,
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	book := addressbook.New()
	now := time.Now()

	seeds := []struct {
		name      string
		phone     string
		daysAhead int // negative: seed no birthday
	}{
		{"Lewis", "2025550101", 0},
		{"Noah", "2025550102", 2},
		{"Finn", "2025550103", 5},
		{"Sabrina", "2025550104", 9},
		{"Leanne", "2025550105", -1},
	}

	for _, s := range seeds {
		rec := addressbook.NewRecord(s.name)
		if err := rec.AddPhone(s.phone); err != nil {
			return err
		}

		if s.daysAhead >= 0 {
			d := now.AddDate(0, 0, s.daysAhead)
			birthday := time.Date(1990, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
			if err := rec.AddBirthday(birthday.Format(addressbook.DateLayout)); err != nil {
				return err
			}
		}

		book.AddRecord(rec)
		slog.Debug("seeded contact", "name", s.name, "days_ahead", s.daysAhead)
	}

	upcoming := book.UpcomingBirthdays()
	slog.Info("scanned book", "records", book.Len(), "upcoming", len(upcoming))

	if len(upcoming) == 0 {
		fmt.Println("No upcoming birthdays in the next 7 days.")
		return nil
	}

	for _, u := range upcoming {
		fmt.Printf("%s (%s)\n", u, u.CongratulationDate.Weekday())
	}

	return nil
}
