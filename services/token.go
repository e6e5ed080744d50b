package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const resetPurpose = "reset"

type resetClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// ResetTokenIssuer mints and checks the short-lived capability that
// stands in for re-authentication during a password reset. Expiry is the
// only revocation mechanism: any holder of a valid, unexpired token for
// an email may reset that password.
type ResetTokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewResetTokenIssuer(secret string, ttl time.Duration) *ResetTokenIssuer {
	return &ResetTokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a reset capability for email, valid for the configured TTL.
func (i *ResetTokenIssuer) Issue(email string) (string, error) {
	now := i.now()
	claims := resetClaims{
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Authenticate validates a reset token and extracts the email it was
// issued for. Bad signature, wrong purpose and expiry all collapse into
// ErrInvalidResetToken.
func (i *ResetTokenIssuer) Authenticate(tokenString string) (string, error) {
	claims := new(resetClaims)

	// Claim validation is done by hand against the injected clock.
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return "", ErrInvalidResetToken
	}

	if claims.Purpose != resetPurpose || claims.Subject == "" {
		return "", ErrInvalidResetToken
	}
	if claims.ExpiresAt == nil || !i.now().Before(claims.ExpiresAt.Time) {
		return "", ErrInvalidResetToken
	}

	return claims.Subject, nil
}
