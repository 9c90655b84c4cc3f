package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info is what can be said about a token without verifying it.
type Info struct {
	Opaque    bool
	Subject   string
	Issuer    string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Expired reports whether the token carries an expiry that is before now.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// Describe inspects token. Signatures are not checked: the console cannot
// verify them and only uses the result for display.
func Describe(token string) Info {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Info{Opaque: true}
	}

	info := Info{Subject: claims.Subject, Issuer: claims.Issuer}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	return info
}
