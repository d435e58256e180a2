// Package auth owns the bearer credential and its refresh lifecycle.
package auth

import (
	"time"
)

// Credential is the current bearer token state. It is created at sign-in,
// replaced by refresh and discarded at sign-out. Once Invalid is set the
// credential must never be used for a fetch again.
type Credential struct {
	AccessToken  string
	RefreshToken string
	// ExpiresAt is the unix-seconds expiry of the access token. Zero means
	// the expiry is unknown and the token is used as-is.
	ExpiresAt int64
	Invalid   bool
}

func (c Credential) Expired(now time.Time) bool {
	return c.ExpiresAt != 0 && now.Unix() >= c.ExpiresAt
}
