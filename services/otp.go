package services

import (
	"time"

	"menucard/utils"
)

// OtpEngine owns the issued → verified lifecycle of one-time codes.
type OtpEngine struct {
	store  OtpStore
	ttl    time.Duration
	length int
	now    func() time.Time
}

func NewOtpEngine(store OtpStore, ttl time.Duration, length int) *OtpEngine {
	return &OtpEngine{store: store, ttl: ttl, length: length, now: time.Now}
}

// Generate issues a fresh numeric code for email, replacing any earlier
// one. The old code stops verifying the moment the upsert lands.
func (e *OtpEngine) Generate(email string) (string, error) {
	code := utils.GenerateOTP(e.length)
	if err := e.store.Upsert(email, code, e.now()); err != nil {
		return "", err
	}
	return code, nil
}

// Verify flips the matching record to verified. Verification is
// single-shot: an already-verified or expired record fails the same way
// a wrong code or unknown email does, so callers learn nothing about
// which it was.
func (e *OtpEngine) Verify(email, code string) error {
	ok, err := e.store.MarkVerified(email, code, e.notBefore())
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOtp
	}
	return nil
}

// HasVerified reports whether a live, verified record still exists for
// email. The reset step re-checks this before touching credentials.
func (e *OtpEngine) HasVerified(email string) (bool, error) {
	record, err := e.store.FindVerified(email, e.notBefore())
	if err != nil {
		return false, err
	}
	return record != nil, nil
}

// Consume removes the record for email once the reset completes, closing
// the flow for good.
func (e *OtpEngine) Consume(email string) error {
	return e.store.DeleteByEmail(email)
}

func (e *OtpEngine) notBefore() time.Time {
	return e.now().Add(-e.ttl)
}
