package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [match-id]",
	Short: "Browse recorded matches",
	Long: `Show recent matches and totals from the history database.

Without --plain an interactive table is shown; --plain prints a
plain table suitable for scripts. Passing a match id prints that
match in detail. --clear deletes every recorded match.

Examples:
  pong history
  pong history --plain --limit 5
  pong history 0b6f3c1e-5d1a-4c55-9a43-1f0e2a7d9c10
  pong history --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of matches to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runHistory(_ *cobra.Command, args []string) error {
	if flagClear && len(args) > 0 {
		return fmt.Errorf("--clear does not take a match id")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening match database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		return clearHistory(os.Stdout, store)
	case len(args) == 1:
		return showMatch(os.Stdout, store, args[0])
	case flagPlain:
		return printHistory(os.Stdout, store, flagLimit)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.RunHistory(store, width, height)
}

func clearHistory(w io.Writer, store *storage.Store) error {
	if err := store.ClearMatches(); err != nil {
		return err
	}
	fmt.Fprintln(w, "Match history cleared.")
	return nil
}

func showMatch(w io.Writer, store *storage.Store, matchID string) error {
	m, err := store.MatchByID(matchID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no match with id %q", matchID)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Match\t%s\n", m.MatchID)
	fmt.Fprintf(tw, "Played\t%s\n", m.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(tw, "Host\t%s\n", m.Host)
	fmt.Fprintf(tw, "Score\t%d-%d\n", m.PlayerScore, m.AIScore)
	fmt.Fprintf(tw, "Winner\t%s\n", m.Winner)
	fmt.Fprintf(tw, "Ended\t%s\n", m.EndReason)
	fmt.Fprintf(tw, "Duration\t%s\n", m.Duration.Round(time.Second))
	fmt.Fprintf(tw, "Ticks\t%d\n", m.Ticks)
	fmt.Fprintf(tw, "Hits\t%d\n", m.Hits)
	fmt.Fprintf(tw, "Longest rally\t%d\n", m.LongestRally)
	return tw.Flush()
}

func printHistory(w io.Writer, store *storage.Store, limit int) error {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}
	sum, err := store.Summary()
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSCORE\tWINNER\tRALLY\tHITS\tHOST\tEND")
	for _, m := range matches {
		fmt.Fprintf(tw, "%s\t%d-%d\t%s\t%d\t%d\t%s\t%s\n",
			m.CreatedAt.Local().Format("2006-01-02 15:04"),
			m.PlayerScore, m.AIScore, m.Winner, m.LongestRally, m.Hits, m.Host, m.EndReason)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d matches: %d won, %d lost, %d drawn. Best rally %d.\n",
		sum.Matches, sum.PlayerWins, sum.AIWins, sum.Draws, sum.BestRally)
	return nil
}
