package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"courtiq-api/packages/core/extract"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "Extracts players from a saved class ranking list page.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := readPage(args[0])
		if err != nil {
			return err
		}

		players := extract.ExtractRankingList(page)
		out := cmd.OutOrStdout()
		if asJSON {
			return writeJSON(out, players)
		}

		t := newTable(out)
		t.AppendHeader(table.Row{"#", "Rank", "ID", "Name"})
		for i, p := range players {
			t.AppendRow(table.Row{i + 1, p.Rank, p.ExternalID, p.Name})
		}
		t.AppendFooter(table.Row{"", "", "Players", len(players)})
		t.Render()
		return nil
	},
}
