package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every session token failure: bad signature,
// malformed payload, expired. Callers are not told which.
var ErrInvalidToken = errors.New("invalid or expired token")

const (
	SessionTTL = 1 * time.Hour
	ResetTTL   = 1 * time.Hour

	resetTokenBytes = 20
)

// Service signs and verifies session tokens, and mints password reset
// tokens. The signing key is injected at construction instead of read
// from the environment, so tests can run with a known key.
type Service struct {
	secret []byte
}

func New(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// IssueSessionToken produces a stateless signed token for userID,
// expiring SessionTTL from now. The role is deliberately not embedded:
// it is re-read from the store on every request so role changes take
// effect immediately.
func (s *Service) IssueSessionToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// VerifySessionToken checks signature and expiry and returns the subject
// user ID. Every failure mode collapses into ErrInvalidToken.
func (s *Service) VerifySessionToken(tokenStr string) (uint, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return uint(id), nil
}

// IssueResetToken returns an opaque random token and its absolute expiry.
// The token is a lookup key, not a signed payload: reset tokens are
// store-backed so consumption can revoke them with certainty.
func IssueResetToken() (string, time.Time, error) {
	b := make([]byte, resetTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", time.Time{}, err
	}
	return hex.EncodeToString(b), time.Now().Add(ResetTTL), nil
}

// VerifyResetToken reports whether supplied matches the stored token and
// the stored expiry has not passed.
func VerifyResetToken(supplied, stored string, expiresAt time.Time) bool {
	return stored != "" && supplied == stored && time.Now().Before(expiresAt)
}
