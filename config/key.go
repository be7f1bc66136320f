package config

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateRandomKey returns a random signing key. Tokens signed with it stop
// validating when the process restarts.
func GenerateRandomKey() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}
