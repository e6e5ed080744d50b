package services

import (
	"errors"
	"testing"
	"time"

	"menucard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminStore struct {
	byEmail map[string]*models.Admin
	err     error
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{byEmail: make(map[string]*models.Admin)}
}

func (s *fakeAdminStore) Create(admin *models.Admin) error {
	if s.err != nil {
		return s.err
	}
	s.byEmail[admin.EmailAddress] = admin
	return nil
}

func (s *fakeAdminStore) FindByEmail(email string) (*models.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byEmail[email], nil
}

func (s *fakeAdminStore) FindByPhone(phone string) (*models.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, admin := range s.byEmail {
		if admin.PhoneNumber == phone {
			return admin, nil
		}
	}
	return nil, nil
}

func (s *fakeAdminStore) UpdatePasswordHash(email, passwordHash string) error {
	if s.err != nil {
		return s.err
	}
	admin, ok := s.byEmail[email]
	if !ok {
		return errors.New("admin not found")
	}
	admin.PasswordHash = passwordHash
	return nil
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	email string
	otp   string
}

func (m *recordingMailer) SendOtpEmail(email, otp string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{email: email, otp: otp})
	return nil
}

type authFixture struct {
	svc    *AuthService
	admins *fakeAdminStore
	otps   *fakeOtpStore
	mailer *recordingMailer
	issuer *ResetTokenIssuer
	clock  *fakeClock
}

func newAuthFixture() *authFixture {
	clock := newFakeClock()
	admins := newFakeAdminStore()
	otps := newFakeOtpStore()
	mailer := &recordingMailer{}

	engine := newTestOtpEngine(otps, clock)
	issuer := newTestIssuer(clock)

	return &authFixture{
		svc:    NewAuthService(admins, engine, issuer, mailer, bcrypt.MinCost),
		admins: admins,
		otps:   otps,
		mailer: mailer,
		issuer: issuer,
		clock:  clock,
	}
}

func (f *authFixture) register(t *testing.T, email string) *models.Admin {
	t.Helper()
	admin, err := f.svc.Register(RegisterRequest{
		FullName:       "Ada Lovelace",
		EmailAddress:   email,
		PhoneNumber:    "+2348012345678",
		Password:       "OldP@ss1",
		RestaurantName: "Chop Central",
	})
	require.NoError(t, err)
	return admin
}

func TestRegisterHashesPassword(t *testing.T) {
	f := newAuthFixture()

	admin := f.register(t, "a@x.com")
	assert.NotEqual(t, "OldP@ss1", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("OldP@ss1")))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "a@x.com")

	_, err := f.svc.Register(RegisterRequest{
		FullName:     "Other Admin",
		EmailAddress: "a@x.com",
		PhoneNumber:  "+2348099999999",
		Password:     "OldP@ss1",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = f.svc.Register(RegisterRequest{
		FullName:     "Other Admin",
		EmailAddress: "b@x.com",
		PhoneNumber:  "+2348012345678",
		Password:     "OldP@ss1",
	})
	assert.ErrorIs(t, err, ErrPhoneTaken)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "a@x.com")

	admin, err := f.svc.Login("a@x.com", "OldP@ss1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", admin.EmailAddress)

	// Unknown email and wrong password fail identically.
	_, err = f.svc.Login("a@x.com", "WrongP@ss1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.Login("nobody@x.com", "OldP@ss1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.ForgotPassword("nobody@x.com")
	assert.ErrorIs(t, err, ErrAdminNotFound)
	assert.Empty(t, f.mailer.sent)
	assert.Empty(t, f.otps.records)
}

func TestForgotPasswordDeliversStoredCode(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "a@x.com")

	require.NoError(t, f.svc.ForgotPassword("a@x.com"))
	require.Len(t, f.mailer.sent, 1)

	record := f.otps.records["a@x.com"]
	require.NotNil(t, record)
	assert.Equal(t, record.Code, f.mailer.sent[0].otp)
}

func TestForgotPasswordDeliveryFailureKeepsCodeLive(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "a@x.com")
	f.mailer.err = errors.New("smtp unreachable")

	err := f.svc.ForgotPassword("a@x.com")
	assert.ErrorIs(t, err, ErrDelivery)

	// The stored code is not rolled back and still verifies.
	record := f.otps.records["a@x.com"]
	require.NotNil(t, record)
	_, err = f.svc.VerifyOtp("a@x.com", record.Code)
	assert.NoError(t, err)
}

func TestVerifyOtpRejectsWrongCode(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "a@x.com")
	require.NoError(t, f.svc.ForgotPassword("a@x.com"))

	wrong := "000000"
	if f.otps.records["a@x.com"].Code == wrong {
		wrong = "111111"
	}
	_, err := f.svc.VerifyOtp("a@x.com", wrong)
	assert.ErrorIs(t, err, ErrInvalidOtp)
}

func TestPasswordResetFlow(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "a@x.com")

	require.NoError(t, f.svc.ForgotPassword("a@x.com"))
	code := f.mailer.sent[0].otp

	token, err := f.svc.VerifyOtp("a@x.com", code)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	oldHash := f.admins.byEmail["a@x.com"].PasswordHash
	require.NoError(t, f.svc.ResetPassword(token, "NewP@ss1", "NewP@ss1"))

	// Hash replaced, record consumed, new password logs in.
	assert.NotEqual(t, oldHash, f.admins.byEmail["a@x.com"].PasswordHash)
	assert.Empty(t, f.otps.records)
	_, err = f.svc.Login("a@x.com", "NewP@ss1")
	assert.NoError(t, err)
	_, err = f.svc.Login("a@x.com", "OldP@ss1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPasswordReplayFails(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "a@x.com")

	require.NoError(t, f.svc.ForgotPassword("a@x.com"))
	token, err := f.svc.VerifyOtp("a@x.com", f.mailer.sent[0].otp)
	require.NoError(t, err)

	require.NoError(t, f.svc.ResetPassword(token, "NewP@ss1", "NewP@ss1"))

	// The token is still unexpired, but the OTP record is gone.
	err = f.svc.ResetPassword(token, "NewerP@ss1", "NewerP@ss1")
	assert.ErrorIs(t, err, ErrOtpNotVerified)
}

func TestResetPasswordMismatchCheckedFirst(t *testing.T) {
	f := newAuthFixture()

	// Mismatch wins even when the token is garbage too.
	err := f.svc.ResetPassword("garbage", "NewP@ss1", "OtherP@ss1")
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestResetPasswordRejectsInvalidToken(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.ResetPassword("garbage", "NewP@ss1", "NewP@ss1")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestResetPasswordRequiresVerifiedOtp(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "a@x.com")

	// OTP requested but never verified; token minted out of band.
	require.NoError(t, f.svc.ForgotPassword("a@x.com"))
	token, err := f.issuer.Issue("a@x.com")
	require.NoError(t, err)

	err = f.svc.ResetPassword(token, "NewP@ss1", "NewP@ss1")
	assert.ErrorIs(t, err, ErrOtpNotVerified)
}

func TestResetPasswordRejectsExpiredToken(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "a@x.com")

	require.NoError(t, f.svc.ForgotPassword("a@x.com"))
	token, err := f.svc.VerifyOtp("a@x.com", f.mailer.sent[0].otp)
	require.NoError(t, err)

	f.clock.Advance(10*time.Minute + time.Second)
	err = f.svc.ResetPassword(token, "NewP@ss1", "NewP@ss1")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
