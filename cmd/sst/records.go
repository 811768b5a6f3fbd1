package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/picotrek/internal/platform/tui"
	"github.com/vovakirdan/picotrek/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the service record",
	Long: `Display the most recent finished sessions and the career totals.

The record is kept only when a database is given with --db or SST_DB.

Examples:
  sst records --db ~/.sst/records.db
  sst records --plain --limit 5
  sst records --clear`,
	Args: cobra.NoArgs,
	Run:  runRecords,
}

func init() {
	recordsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show in plain mode")
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded session")
}

func runRecords(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no records database; set --db or SST_DB")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}

	if err := showRecords(store); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store.Close()
}

func showRecords(store *storage.Store) error {
	if flagClear {
		if err := store.ClearRecords(); err != nil {
			return err
		}
		fmt.Println("Service record cleared.")
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := terminalSize()
		return tui.RunRecords(store, width, height)
	}
	return printRecords(store, flagLimit)
}

func printRecords(store *storage.Store, limit int) error {
	if limit <= 0 {
		return errors.New("--limit must be positive")
	}

	records, err := store.RecentRecords(limit)
	if err != nil {
		return err
	}

	fmt.Println("Service Record")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sst --db %s' to start your service record.\n", flagDBPath)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-13s  %-8s  %-6s  %-5s  %s\n", "#", "Outcome", "Stardate", "Days", "Kills", "Date")
	fmt.Printf("  %-4s  %-13s  %-8s  %-6s  %-5s  %s\n", "-", "-------", "--------", "----", "-----", "----")

	for _, r := range records {
		fmt.Printf("  %-4d  %-13s  %-8.1f  %-6.1f  %-5d  %s\n",
			r.ID, r.Outcome, r.Stardate, r.Days, r.HostilesDestroyed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(tui.FormatStats(stats))
	return nil
}
