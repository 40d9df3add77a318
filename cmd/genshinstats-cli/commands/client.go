package commands

import (
	"genshinstats/lib/configutil"
	"genshinstats/lib/osutil"
	"genshinstats/lib/restyutil"
	"genshinstats/lib/scrapers/mihoyo"
	"genshinstats/lib/scrapers/mihoyo/gachalog"
)

type Config struct {
	AccountID   string `json:"account_id"`
	CookieToken string `json:"cookie_token"`
	Authkey     string `json:"authkey"`
	// path to the game client log to extract an authkey from, used
	// when authkey isn't given directly
	AuthkeyLog string `json:"authkey_log"`
	Lang       string `json:"lang"`
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config](configPath)
	if err != nil {
		osutil.Fatal("failed to read config", err)
	}
	return cfg
}

func newClient(cfg Config) *mihoyo.Client {
	opts := mihoyo.ClientOptions{Lang: cfg.Lang}
	if verbose {
		opts.InstrumentOutput = restyutil.NewFilesystemOutput(".dev/resty")
	}
	client, err := mihoyo.NewClient(opts)
	if err != nil {
		osutil.Fatal("failed to initialize client", err)
	}
	return client
}

// a client with the login cookie pair attached, for the game-record
// endpoints
func newCookieClient() *mihoyo.Client {
	cfg := readConfig()
	client := newClient(cfg)
	err := client.SetCookie(cfg.AccountID, cfg.CookieToken)
	if err != nil {
		osutil.Fatal("account_id and cookie_token must both be set in the config", err)
	}
	return client
}

// a client with an authkey attached, for the gacha-log endpoints. the
// authkey comes from the config directly or is extracted from the
// configured game client log.
func newGachaClient() gachalog.Client {
	cfg := readConfig()
	client := newClient(cfg)

	authkey := cfg.Authkey
	if authkey == "" && cfg.AuthkeyLog != "" {
		var err error
		authkey, err = gachalog.AuthkeyFromLogFile(cfg.AuthkeyLog)
		if err != nil {
			osutil.Fatal("failed to extract authkey from log file", err)
		}
	}
	err := client.SetAuthkey(authkey)
	if err != nil {
		osutil.Fatal("an authkey or authkey_log must be set in the config", err)
	}
	return gachalog.NewClient(client)
}
