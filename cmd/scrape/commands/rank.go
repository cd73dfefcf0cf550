package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"courtiq-api/packages/core/extract"
)

func init() {
	rootCmd.AddCommand(rankCmd)
}

var rankCmd = &cobra.Command{
	Use:   "rank FILE",
	Short: "Extracts the national ranking from a saved player profile page.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := readPage(args[0])
		if err != nil {
			return err
		}

		ranking, rule, ok := extract.ExtractRankingWithRule(page)
		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, map[string]interface{}{"found": ok, "ranking": ranking, "rule": rule})
		}
		if !ok {
			return fmt.Errorf("no ranking found in %s (%d bytes)", args[0], len(page))
		}

		t := newTable(out)
		t.AppendHeader(table.Row{"Ranking", "Rule"})
		t.AppendRow(table.Row{ranking, rule})
		t.Render()
		return nil
	},
}
