package mihoyo

import (
	"net/http/cookiejar"
	"strings"
	"time"

	"genshinstats/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"golang.org/x/net/publicsuffix"
)

var tracer = otel.Tracer("scrapers/mihoyo")

const (
	defaultRecordBaseURL = "https://bbs-api-os.hoyolab.com"
	defaultGachaBaseURL  = "https://hk4e-api-os.mihoyo.com/event/gacha_info/api"
	defaultLang          = "en-us"
)

// Client is a session against the hoyolab game-record api and the
// mihoyo gacha-log api. credentials are attached per call depending on
// what the endpoint requires; set them before issuing concurrent
// calls, the client does no locking of its own.
type Client struct {
	http       *resty.Client
	recordBase string
	gachaBase  string
	lang       string

	accountID   string
	cookieToken string
	authkey     string
}

type ClientOptions struct {
	// overrides for the upstream hosts, mainly useful in tests
	RecordBaseURL string
	GachaBaseURL  string
	// response language, defaults to "en-us"
	Lang    string
	Timeout time.Duration
	// optional destination for raw http message dumps
	InstrumentOutput restyutil.InstrumentOutput
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.RecordBaseURL == "" {
		opts.RecordBaseURL = defaultRecordBaseURL
	}
	if opts.GachaBaseURL == "" {
		opts.GachaBaseURL = defaultGachaBaseURL
	}
	if opts.Lang == "" {
		opts.Lang = defaultLang
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
	})
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.SetTimeout(opts.Timeout)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) miHoYoBBS/2.11.1")
	client.SetHeader("x-rpc-app_version", "1.5.0")
	client.SetHeader("x-rpc-client_type", "4")
	client.SetHeader("x-rpc-language", opts.Lang)

	restyutil.InstrumentClient(client, tracer, opts.InstrumentOutput)

	return &Client{
		http:       client,
		recordBase: strings.TrimSuffix(opts.RecordBaseURL, "/"),
		gachaBase:  strings.TrimSuffix(opts.GachaBaseURL, "/"),
		lang:       opts.Lang,
	}, nil
}

// Lang returns the response language the client was configured with.
func (c *Client) Lang() string {
	return c.lang
}

// SetCookie stores the account_id/cookie_token pair copied from a
// logged-in browser session. both values are required for the
// game-record endpoints.
func (c *Client) SetCookie(accountID, cookieToken string) error {
	if accountID == "" || cookieToken == "" {
		return ErrNotLoggedIn
	}
	c.accountID = accountID
	c.cookieToken = cookieToken
	return nil
}

// SetAuthkey stores the authkey required by the gacha-log endpoints.
// authkeys expire server-side after roughly a day, tracking that is
// the caller's responsibility.
func (c *Client) SetAuthkey(key string) error {
	if key == "" {
		return ErrNoAuthkey
	}
	c.authkey = key
	return nil
}

func (c *Client) cookie() (accountID, cookieToken string, err error) {
	if c.accountID == "" || c.cookieToken == "" {
		return "", "", ErrNotLoggedIn
	}
	return c.accountID, c.cookieToken, nil
}

func (c *Client) getAuthkey() (string, error) {
	if c.authkey == "" {
		return "", ErrNoAuthkey
	}
	return c.authkey, nil
}
