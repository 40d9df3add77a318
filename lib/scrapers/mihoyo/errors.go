package mihoyo

import (
	"errors"
	"fmt"
)

var (
	// login cookies were never set on the client
	ErrNotLoggedIn = errors.New("login cookies have not been provided")
	// an authkey was never set on the client
	ErrNoAuthkey = errors.New("an authkey has not been provided")
	// the response body is not the expected {retcode, message, data} envelope
	ErrInvalidResponse = errors.New("invalid api response")
	// the uid does not map onto any known game server
	ErrInvalidUID = errors.New("uid is not associated with any server")
)

// a well-formed api envelope reporting a non-zero retcode. the message
// is passed through from upstream verbatim so callers can branch on
// Code for the known conditions below.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// retcodes observed from the api, kept for callers to compare against
// UpstreamError.Code
const (
	RetcodeInvalidScheduleType = 1
	RetcodeInvalidUID          = 1009
	RetcodeNotLoggedIn         = 10001
	RetcodeDataNotPublic       = 10102
	RetcodeInvalidDS           = -401
	RetcodeAuthkeyExpired      = -101
	RetcodeVisitTooFrequently  = -110
)
