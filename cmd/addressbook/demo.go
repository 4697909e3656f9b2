package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/addressbook-go/addressbook"
)

var showMetrics bool

// demoCmd replays the library's canonical walkthrough: build a small book,
// mutate it and print every intermediate result.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the address book API end to end",
	RunE:  runDemo,
}

func init() {
	demoCmd.Flags().BoolVar(&showMetrics, "show-metrics", false, "dump the run's Prometheus metrics after the walkthrough")
}

func runDemo(cmd *cobra.Command, args []string) error {
	registry := prometheus.NewRegistry()
	book := addressbook.NewWithMetrics(registry)

	john := addressbook.NewRecord("John")
	for _, number := range []string{"1234567890", "5555555555"} {
		if err := john.AddPhone(number); err != nil {
			return err
		}
	}
	book.AddRecord(john)

	jane := addressbook.NewRecord("Jane")
	if err := jane.AddPhone("9876543210"); err != nil {
		return err
	}
	book.AddRecord(jane)

	fmt.Println("All records:")
	for _, rec := range book.Records() {
		fmt.Println(rec)
	}

	found, ok := book.Find("John")
	if !ok {
		return fmt.Errorf("record %q missing from the book", "John")
	}
	if err := found.EditPhone("1234567890", "1112223333"); err != nil {
		return err
	}
	if err := found.AddBirthday("01.10.1989"); err != nil {
		return err
	}
	fmt.Println(found)
	if bd, ok := found.Birthday(); ok {
		fmt.Println(bd)
	}

	if err := found.EditPhone("5555555555", "1112223333"); err != nil {
		return err
	}
	fmt.Println(found)

	if phone, ok := found.FindPhone("5555555555"); ok {
		fmt.Printf("%s still holds %s\n", found.Name(), phone)
	} else {
		fmt.Printf("%s no longer holds 5555555555\n", found.Name())
	}

	book.Delete("Jane")

	vova := addressbook.NewRecord("Vova")
	if err := vova.AddBirthday("02.08.1989"); err != nil {
		return err
	}
	book.AddRecord(vova)

	book.AddRecord(addressbook.NewRecord("Vasya"))

	fmt.Println("Upcoming birthdays:")
	for _, u := range book.UpcomingBirthdays() {
		fmt.Println(u)
	}

	slog.Info("demo finished", "records", book.Len())

	if showMetrics {
		return dumpMetrics(os.Stdout, registry)
	}

	return nil
}

// dumpMetrics writes the registry's metrics in the Prometheus text
// exposition format.
func dumpMetrics(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode metric family %q: %w", mf.GetName(), err)
		}
	}

	return nil
}
