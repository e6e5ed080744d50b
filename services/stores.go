package services

import (
	"time"

	"menucard/models"
)

// AdminStore is the credential-store contract.
// Implemented by repository.AdminRepository.
type AdminStore interface {
	Create(admin *models.Admin) error
	// FindByEmail returns nil, nil when no admin matches.
	FindByEmail(email string) (*models.Admin, error)
	// FindByPhone returns nil, nil when no admin matches.
	FindByPhone(phone string) (*models.Admin, error)
	UpdatePasswordHash(email, passwordHash string) error
}

// OtpStore persists at most one live code per email address.
// Implemented by repository.OtpRepository.
type OtpStore interface {
	// Upsert replaces any existing record for email with a fresh,
	// unverified one. Must be atomic: last writer wins.
	Upsert(email, code string, issuedAt time.Time) error
	// MarkVerified flips verified on the record matching email and code,
	// provided it is still unverified and was issued after notBefore.
	// Must be a single conditional update; returns false when nothing
	// matched.
	MarkVerified(email, code string, notBefore time.Time) (bool, error)
	// FindVerified returns the verified record for email issued after
	// notBefore, or nil, nil.
	FindVerified(email string, notBefore time.Time) (*models.OTP, error)
	DeleteByEmail(email string) error
}
