// Package services holds the password-reset core and its collaborator contracts.
package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email address is already registered")
	ErrPhoneTaken         = errors.New("phone number is already registered")
	ErrInvalidCredentials = errors.New("invalid email address or password")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidOtp         = errors.New("invalid OTP")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrOtpNotVerified     = errors.New("no verified OTP for this email address")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrDelivery           = errors.New("failed to send OTP email")
)
