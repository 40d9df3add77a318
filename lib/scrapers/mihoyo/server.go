package mihoyo

import (
	"regexp"
	"strconv"
)

var uidServers = map[byte]string{
	'1': "cn_gf01",
	'5': "cn_qd01",
	'6': "os_usa",
	'7': "os_euro",
	'8': "os_asia",
	'9': "os_cht",
}

// recognizes which server a game uid belongs to based on its first
// digit, returns ErrInvalidUID for uids outside any known range
func RecognizeServer(uid int) (string, error) {
	s := strconv.Itoa(uid)
	server, ok := uidServers[s[0]]
	if !ok {
		return "", ErrInvalidUID
	}
	return server, nil
}

var gameUIDRegex = regexp.MustCompile(`^[156789]\d{8}$`)

// reports whether the uid is a 9-digit game uid rather than a
// community uid
func IsGameUID(uid int) bool {
	return gameUIDRegex.MatchString(strconv.Itoa(uid))
}
