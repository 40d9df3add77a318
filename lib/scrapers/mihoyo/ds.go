package mihoyo

import (
	"crypto/md5"
	"fmt"
	"time"

	"github.com/mazen160/go-random"
)

const dsSalt = "6cqshh5dhw73bzxn20oexa9k516chk7s"

// creates a new ds token, the per-request md5 check the game-record
// api expects in the "ds" header alongside login cookies. the format
// is "t,r,c" where t is unix seconds, r is 6 random chars and c is
// md5("salt=<salt>&t=<t>&r=<r>") in hex.
func dsToken() (string, error) {
	t := time.Now().Unix()
	r, err := random.Random(6, random.ASCIILettersLowercase+random.Digits, true)
	if err != nil {
		return "", err
	}
	c := md5.Sum([]byte(fmt.Sprintf("salt=%s&t=%d&r=%s", dsSalt, t, r)))
	return fmt.Sprintf("%d,%s,%x", t, r, c), nil
}
