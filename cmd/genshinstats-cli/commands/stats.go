package commands

import (
	"fmt"
	"os"
	"strconv"

	"genshinstats/lib/osutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats <uid>",
	Short: "Prints the game stats behind a game uid.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		uid, err := strconv.Atoi(args[0])
		if err != nil {
			osutil.Fatal("uid must be a number", err)
		}

		client := newCookieClient()
		stats, err := client.GetUserStats(cmd.Context(), uid, "")
		if err != nil {
			osutil.Fatal("failed to fetch user stats", err)
		}

		fmt.Printf("%s (AR %d, %s)\n", stats.Role.Nickname, stats.Role.Level, stats.Role.Region)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Stat", "Value"})
		t.AppendRows([]table.Row{
			{"Days Active", stats.Stats.ActiveDays},
			{"Achievements", stats.Stats.Achievements},
			{"Characters", stats.Stats.Avatars},
			{"Anemoculi", stats.Stats.Anemoculi},
			{"Geoculi", stats.Stats.Geoculi},
			{"Waypoints Unlocked", stats.Stats.UnlockedWaypoints},
			{"Domains Unlocked", stats.Stats.UnlockedDomains},
			{"Spiral Abyss", stats.Stats.SpiralAbyss},
		})
		t.SetStyle(table.StyleRounded)
		t.Render()

		if len(stats.Explorations) == 0 {
			return
		}
		e := table.NewWriter()
		e.SetOutputMirror(os.Stdout)
		e.AppendHeader(table.Row{"Region", "Exploration", "Level"})
		for _, exploration := range stats.Explorations {
			e.AppendRow(table.Row{
				exploration.Name,
				fmt.Sprintf("%.1f%%", float64(exploration.Percentage)/10),
				exploration.Level,
			})
		}
		e.SetStyle(table.StyleRounded)
		e.Render()
	},
}
