package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/exp/rand"
)

const (
	iterationRounds = 10000
	subkeyLength    = 256 / 8
)

// UserIDLength is the length of generated user identifiers. The password
// reset key format depends on it, see platform/user.
const UserIDLength = 24

func init() {
	rand.Seed(uint64(time.Now().UnixNano()))
}

// Hash is a deterministic one-way hash. The caller is expected to mix the
// per-user salt into the input, as in Hash(password + salt).
func Hash(input string) string {
	subkey := pbkdf2.Key([]byte(input), nil, iterationRounds, subkeyLength, sha256.New)
	return base64.StdEncoding.EncodeToString(subkey)
}

// VerifyHash compares Hash(input) against an expected hash in constant time.
func VerifyHash(input, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(input)), []byte(expected)) == 1
}

// GenerateUserID returns a 24-character lowercase hex identifier.
func GenerateUserID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:UserIDLength]
}

// GenerateSalt returns a random numeric string used in password hashing.
// The salt is generated once at account creation and never rotated.
func GenerateSalt() string {
	return fmt.Sprintf("%d", 10_000_000+rand.Intn(90_000_000))
}

// GenerateSpacer returns exactly 10 random digits.
func GenerateSpacer() string {
	return fmt.Sprintf("%010d", rand.Int63n(10_000_000_000))
}

func GenerateRandomString(limit int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, limit)
	for i := range result {
		result[i] = chars[rand.Intn(len(chars))]
	}

	return string(result)
}
