package services

import (
	"log"

	"menucard/models"

	"golang.org/x/crypto/bcrypt"
)

// Mailer delivers one-time codes. Injected so the orchestrator is
// testable without network I/O.
type Mailer interface {
	SendOtpEmail(email, otp string) error
}

type RegisterRequest struct {
	FullName       string
	EmailAddress   string
	PhoneNumber    string
	Password       string
	RestaurantName string
}

// AuthService sequences registration, login and the three-step
// password-reset flow (request → verify → reset).
type AuthService struct {
	admins    AdminStore
	engine    *OtpEngine
	issuer    *ResetTokenIssuer
	mailer    Mailer
	saltRound int
}

func NewAuthService(admins AdminStore, engine *OtpEngine, issuer *ResetTokenIssuer, mailer Mailer, saltRound int) *AuthService {
	return &AuthService{
		admins:    admins,
		engine:    engine,
		issuer:    issuer,
		mailer:    mailer,
		saltRound: saltRound,
	}
}

// Register creates a new admin after checking email and phone uniqueness.
func (s *AuthService) Register(req RegisterRequest) (*models.Admin, error) {
	existing, err := s.admins.FindByEmail(req.EmailAddress)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.admins.FindByPhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.saltRound)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		FullName:       req.FullName,
		EmailAddress:   req.EmailAddress,
		PhoneNumber:    req.PhoneNumber,
		PasswordHash:   string(hash),
		RestaurantName: req.RestaurantName,
	}
	if err := s.admins.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Login authenticates an admin by email and password. Unknown email and
// wrong password return the same error.
func (s *AuthService) Login(email, password string) (*models.Admin, error) {
	admin, err := s.admins.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// ForgotPassword starts the reset flow: a fresh OTP is stored for the
// admin's email and handed to the mailer.
func (s *AuthService) ForgotPassword(email string) error {
	admin, err := s.admins.FindByEmail(email)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrAdminNotFound
	}

	code, err := s.engine.Generate(email)
	if err != nil {
		return err
	}

	// Delivery failure does not roll the code back: it stays stored, and
	// a retried request simply supersedes it.
	if err := s.mailer.SendOtpEmail(email, code); err != nil {
		log.Printf("Error sending OTP email to %s: %v", email, err)
		return ErrDelivery
	}
	return nil
}

// VerifyOtp checks the code and, on success, mints the reset capability
// returned to the caller.
func (s *AuthService) VerifyOtp(email, otp string) (string, error) {
	if err := s.engine.Verify(email, otp); err != nil {
		return "", err
	}
	return s.issuer.Issue(email)
}

// ResetPassword finishes the flow. Check order is fixed: password
// mismatch first, then the reset token, then the verified OTP record —
// the first failing check decides the error when several would fail.
func (s *AuthService) ResetPassword(token, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	email, err := s.issuer.Authenticate(token)
	if err != nil {
		return err
	}

	verified, err := s.engine.HasVerified(email)
	if err != nil {
		return err
	}
	if !verified {
		return ErrOtpNotVerified
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		return err
	}
	if err := s.admins.UpdatePasswordHash(email, string(hash)); err != nil {
		return err
	}

	// Terminal transition: the flow cannot be replayed with this record.
	return s.engine.Consume(email)
}
