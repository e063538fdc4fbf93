package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token errors. Verify never returns the subject alongside any of these.
var (
	ErrMalformed    = errors.New("malformed token")
	ErrBadSignature = errors.New("invalid token signature")
	ErrExpired      = errors.New("token expired")
)

const defaultTTL = 24 * time.Hour

// Codec mints and verifies HS256-signed bearer tokens carrying the account
// email as subject. It holds no mutable state and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a Codec with the given signing secret and token lifetime.
// A non-positive ttl falls back to 24 hours.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Mint signs a token for the given subject, valid from now until now+ttl.
func (c *Codec) Mint(subject string) (string, error) {
	now := c.now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(c.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates a token and returns its subject. Expiry is
// strict: a token is rejected from the instant now >= exp. Tokens signed with
// any non-HMAC algorithm are rejected as having a bad signature, so a forged
// "alg" header cannot downgrade verification.
func (c *Codec) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrBadSignature
	default:
		return "", ErrMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrMalformed
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrMalformed
	}
	return sub, nil
}
