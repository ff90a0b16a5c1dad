package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time
// function for predictable expiry testing. Intended for use in tests
// only.
func NewTestJWTService(secret string, tokenLifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
