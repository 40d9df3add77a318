package commands

import (
	"log/slog"
	"time"

	"genshinstats/lib/gachastore"
	"genshinstats/lib/osutil"

	"github.com/spf13/cobra"
)

var dumpDb *string

func init() {
	dumpDb = dumpCmd.Flags().String("db", "gacha.db", "The database to write the pull history to.")
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump [--db <path/to/gacha.db>]",
	Short: "Fetches the entire gacha pull history into a local database.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newGachaClient()

		t1 := time.Now()
		pulls, err := client.GetEntireLog(cmd.Context())
		if err != nil {
			osutil.Fatal("failed to fetch gacha log", err)
		}
		slog.Info("fetched gacha log", "pulls", len(pulls), "seconds", time.Since(t1).Seconds())

		store, err := gachastore.Open(*dumpDb)
		if err != nil {
			osutil.Fatal("failed to open db", err)
		}
		defer store.Close()

		inserted, err := store.InsertPulls(cmd.Context(), pulls)
		if err != nil {
			osutil.Fatal("failed to write pulls", err)
		}
		slog.Info("saved gacha log", "db", *dumpDb, "new_pulls", inserted)
	},
}
