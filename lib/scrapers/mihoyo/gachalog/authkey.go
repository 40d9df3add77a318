package gachalog

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
)

// no authkey pattern could be found in the given text or file
var ErrAuthkeyNotFound = errors.New("no authkey found")

var authkeyRegex = regexp.MustCompile(`authkey=([^&#"'\s]+)`)

// ExtractAuthkey scans text for an authkey embedded in a url query
// string and returns the url-unescaped token. this is the only way to
// obtain an authkey short of intercepting game traffic: the game
// client writes the wish-history url, authkey included, into its log.
func ExtractAuthkey(text string) (string, error) {
	groups := authkeyRegex.FindStringSubmatch(text)
	if len(groups) < 2 {
		return "", ErrAuthkeyNotFound
	}
	key, err := url.QueryUnescape(groups[1])
	if err != nil {
		return "", fmt.Errorf("unescape authkey: %w", err)
	}
	return key, nil
}

// AuthkeyFromLogFile extracts an authkey from a game client log file.
func AuthkeyFromLogFile(path string) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return ExtractAuthkey(string(contents))
}

// AuthkeyFromURL extracts an authkey from a pasted wish-history url.
func AuthkeyFromURL(rawurl string) (string, error) {
	return ExtractAuthkey(rawurl)
}
