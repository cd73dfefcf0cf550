package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"courtiq-api/packages/core/extract"
	"courtiq-api/packages/core/models"
)

var activitySource string

func init() {
	activityCmd.Flags().StringVar(&activitySource, "source", string(models.SourceTennisRecruiting), "markup dialect: tennisrecruiting or itf")
	rootCmd.AddCommand(activityCmd)
}

var activityCmd = &cobra.Command{
	Use:   "activity FILE",
	Short: "Extracts match results from a saved player activity page.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extractor := extract.ActivityExtractorFor(models.Source(activitySource))
		if extractor == nil {
			return fmt.Errorf("unsupported source %q", activitySource)
		}

		page, err := readPage(args[0])
		if err != nil {
			return err
		}

		matches := extractor.ExtractMatches(page)
		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, matches)
		}

		t := newTable(out)
		t.AppendHeader(table.Row{"Tournament", "Round", "Result", "Opponent", "Opp. rank", "Score"})
		for _, m := range matches {
			t.AppendRow(table.Row{m.TournamentName, m.Round, m.Result, m.OpponentName, optional(m.OpponentRanking), m.Score})
		}
		t.Render()
		return nil
	},
}
