package user

import (
	"encoding/base64"
	"errors"
	"strconv"
	"time"

	"userblock/app/database"
	"userblock/pkg/utils"
)

var ErrMalformedKey = errors.New("malformed password reset key")

// The reset key is the base64 encoding of
//
//	<24-char user id><10-digit random spacer><millisecond timestamp>
//
// It is reversible plain encoding, not a MAC: anyone holding a valid user
// id can construct one. Single-use or expiry semantics live outside this
// module.
const resetKeySpacerLength = 10

// PasswordResetKey builds a reset key for the given user.
func PasswordResetKey(u *database.User) string {
	raw := u.ID + utils.GenerateSpacer() + strconv.FormatInt(time.Now().UnixMilli(), 10)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodePasswordResetKey recovers the user id and issue time from a reset
// key. Only the structure is checked; the content is trusted as-is.
func DecodePasswordResetKey(key string) (string, time.Time, error) {
	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return "", time.Time{}, ErrMalformedKey
	}
	if len(raw) <= utils.UserIDLength+resetKeySpacerLength {
		return "", time.Time{}, ErrMalformedKey
	}

	userID := string(raw[:utils.UserIDLength])

	ms, err := strconv.ParseInt(string(raw[utils.UserIDLength+resetKeySpacerLength:]), 10, 64)
	if err != nil {
		return "", time.Time{}, ErrMalformedKey
	}

	return userID, time.UnixMilli(ms), nil
}
