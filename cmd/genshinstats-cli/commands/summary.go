package commands

import (
	"fmt"
	"os"

	"genshinstats/lib/gachastore"
	"genshinstats/lib/osutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var summaryDb *string

func init() {
	summaryDb = summaryCmd.Flags().String("db", "gacha.db", "The database holding a dumped pull history.")
	rootCmd.AddCommand(summaryCmd)
}

var summaryCmd = &cobra.Command{
	Use:   "summary [--db <path/to/gacha.db>]",
	Short: "Prints every 5-star pull and its pity count from a dumped history.",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := gachastore.Open(*summaryDb)
		if err != nil {
			osutil.Fatal("failed to open db", err)
		}
		defer store.Close()

		banners, err := store.Banners(cmd.Context())
		if err != nil {
			osutil.Fatal("failed to list banners", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Banner", "5★ Item", "Pulls"})

		for _, banner := range banners {
			pulls, err := store.Pulls(cmd.Context(), banner)
			if err != nil {
				osutil.Fatal("failed to read pulls", err)
			}

			// walk the history oldest to newest counting pulls since
			// the last 5-star
			counter := 0
			for _, pull := range pulls {
				counter++
				if pull.Rarity() == 5 {
					t.AppendRow(table.Row{banner.String(), pull.Name, counter})
					counter = 0
				}
			}
			t.AppendRow(table.Row{banner.String(), fmt.Sprintf("(current pity: %d)", counter), ""})
			t.AppendSeparator()
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
