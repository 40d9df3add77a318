package commands

import (
	"errors"
	"fmt"

	"genshinstats/lib/osutil"
	"genshinstats/lib/scrapers/mihoyo/gachalog"

	"github.com/spf13/cobra"
)

var authkeyLog *string
var authkeyURL *string

func init() {
	authkeyLog = authkeyCmd.Flags().String("log", "", "Game client log file to scan.")
	authkeyURL = authkeyCmd.Flags().String("url", "", "Wish-history url to extract from.")
	rootCmd.AddCommand(authkeyCmd)
}

var authkeyCmd = &cobra.Command{
	Use:   "authkey [--log <file>] [--url <url>]",
	Short: "Extracts a gacha-log authkey from a game client log or a pasted url.",
	Run: func(cmd *cobra.Command, args []string) {
		var key string
		var err error
		switch {
		case *authkeyURL != "":
			key, err = gachalog.AuthkeyFromURL(*authkeyURL)
		case *authkeyLog != "":
			key, err = gachalog.AuthkeyFromLogFile(*authkeyLog)
		default:
			err = errors.New("one of --log or --url is required")
		}
		if err != nil {
			osutil.Fatal("failed to extract authkey", err)
		}
		fmt.Println(key)
	},
}
