package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/addressbook-go/addressbook/config"
)

// rootCmd wires the demonstration subcommands. The address book itself is
// an in-process library; this binary exists to drive it and print what it
// does.
var rootCmd = &cobra.Command{
	Use:   "addressbook",
	Short: "Drive the in-memory address book library",
	Long: `addressbook exercises the contact directory library from the command
line: validated ten-digit phone numbers, optional DD.MM.YYYY birthdays and
the upcoming-birthdays report.

All state lives in process memory and is discarded on exit. Logging is
controlled by LOG_LEVEL and LOG_JSON.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.New()

		opts := &slog.HandlerOptions{Level: cfg.LogLevel}
		var handler slog.Handler
		if cfg.LogJSON {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		} else {
			handler = slog.NewTextHandler(os.Stderr, opts)
		}
		slog.SetDefault(slog.New(handler))
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(birthdaysCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
