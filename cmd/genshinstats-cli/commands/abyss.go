package commands

import (
	"os"
	"strconv"

	"genshinstats/lib/osutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var abyssPrevious *bool

func init() {
	abyssPrevious = abyssCmd.Flags().Bool("previous", false, "Show the previous season instead of the current one.")
	rootCmd.AddCommand(abyssCmd)
}

var abyssCmd = &cobra.Command{
	Use:   "abyss <uid> [--previous]",
	Short: "Prints spiral abyss progress for a game uid.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		uid, err := strconv.Atoi(args[0])
		if err != nil {
			osutil.Fatal("uid must be a number", err)
		}

		client := newCookieClient()
		abyss, err := client.GetSpiralAbyss(cmd.Context(), uid, "", *abyssPrevious)
		if err != nil {
			osutil.Fatal("failed to fetch spiral abyss", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Season", "Deepest Descent", "Stars", "Battles", "Wins"})
		t.AppendRow(table.Row{
			abyss.ScheduleID,
			abyss.MaxFloor,
			abyss.TotalStars,
			abyss.TotalBattles,
			abyss.TotalWins,
		})
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
