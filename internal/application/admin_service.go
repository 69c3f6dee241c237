package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	repo "github.com/anujyadav2244/cricriser/internal/domain/repository"
	"github.com/anujyadav2244/cricriser/internal/infrastructure/postgres"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
	"github.com/anujyadav2244/cricriser/pkg/mailer"
	"github.com/anujyadav2244/cricriser/pkg/mailer/templates"
)

var (
	ErrEmailRegistered   = errors.New("Email already registered!")
	ErrNoAccount         = errors.New("No account found with this email")
	ErrEmailNotVerified  = errors.New("Email not verified. Please verify your email first.")
	ErrIncorrectPassword = errors.New("Incorrect password")
	ErrInvalidOTP        = errors.New("Invalid OTP!")
	ErrAlreadyVerified   = errors.New("User already verified!")
	ErrOTPFormat         = errors.New("Enter 6 digit OTP")
	ErrPasswordTooShort  = errors.New("Password must be at least 6 characters")
	ErrWrongOldPassword  = errors.New("Current password is incorrect!")
	ErrAdminNotFound     = errors.New("User not found!")
)

// EmailPublisher enqueues outbound mail jobs; the worker binary consumes them.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type AdminService struct {
	Repo     repo.AdminRepository
	OTP      *OTPStore
	Sessions *SessionStore
	JWT      *helpers.JWTManager
	Mail     EmailPublisher
	AppName  string
	Logger   *logrus.Logger
}

func NewAdminService(r repo.AdminRepository, otp *OTPStore, sessions *SessionStore, jwt *helpers.JWTManager, mail EmailPublisher, appName string, logger *logrus.Logger) *AdminService {
	return &AdminService{Repo: r, OTP: otp, Sessions: sessions, JWT: jwt, Mail: mail, AppName: appName, Logger: logger}
}

type AdminProfile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsVerified bool   `json:"isVerified"`
}

func profileOf(a *entity.Admin) *AdminProfile {
	return &AdminProfile{ID: a.ID, Name: a.Name, Email: a.Email, IsVerified: a.IsVerified}
}

type LoginResult struct {
	Token  string        `json:"token"`
	Expiry time.Time     `json:"expiresAt"`
	Admin  *AdminProfile `json:"admin"`
}

// Signup registers an unverified admin and emails a signup OTP.
func (s *AdminService) Signup(ctx context.Context, name, email, password string) error {
	if existing, err := s.Repo.GetByEmail(email); err == nil && existing != nil {
		return ErrEmailRegistered
	} else if err != nil && !postgres.ErrNotFound(err) {
		return err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	a := &entity.Admin{
		Name:     name,
		Email:    email,
		Password: hash,
	}
	if err := s.Repo.Create(a); err != nil {
		return err
	}
	return s.sendOTP(ctx, PurposeSignupVerify, a)
}

// VerifyOTP confirms a signup code and marks the account verified.
func (s *AdminService) VerifyOTP(ctx context.Context, email, code string) error {
	if !helpers.IsOTPFormat(code) {
		return ErrOTPFormat
	}
	a, err := s.getByEmail(email)
	if err != nil {
		return err
	}
	if a.IsVerified {
		return ErrAlreadyVerified
	}
	ok, err := s.OTP.Consume(ctx, PurposeSignupVerify, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOTP
	}
	return s.Repo.SetVerified(a.ID)
}

// Login authenticates and returns a bearer token plus the profile. The
// session hash is written together with the token.
func (s *AdminService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	a, err := s.Repo.GetByEmail(email)
	if err != nil || a == nil {
		if err != nil && !postgres.ErrNotFound(err) {
			return nil, err
		}
		return nil, ErrNoAccount
	}
	if !a.IsVerified {
		return nil, ErrEmailNotVerified
	}
	if !helpers.CompareHashAndPassword(a.Password, password) {
		return nil, ErrIncorrectPassword
	}

	token, exp, err := s.JWT.Generate(a.ID, a.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("admin_id", a.ID).Error("generate token failed")
		return nil, err
	}
	sid := uuid.NewString()
	if err := s.Sessions.Set(ctx, a, sid); err != nil {
		s.Logger.WithError(err).WithField("admin_id", a.ID).Warn("session write failed")
	}
	return &LoginResult{Token: token, Expiry: exp, Admin: profileOf(a)}, nil
}

// ForgotPassword emails a reset OTP to a known account.
func (s *AdminService) ForgotPassword(ctx context.Context, email string) error {
	a, err := s.getByEmail(email)
	if err != nil {
		return err
	}
	return s.sendOTP(ctx, PurposePasswordReset, a)
}

// VerifyForgotOTP confirms a reset code and rewrites the password.
func (s *AdminService) VerifyForgotOTP(ctx context.Context, email, code, newPassword string) error {
	if !helpers.IsOTPFormat(code) {
		return ErrOTPFormat
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}
	a, err := s.getByEmail(email)
	if err != nil {
		return err
	}
	ok, err := s.OTP.Consume(ctx, PurposePasswordReset, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOTP
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.Repo.UpdatePassword(a.ID, hash)
}

// ResetPassword changes the password for an authenticated admin.
func (s *AdminService) ResetPassword(ctx context.Context, adminID, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}
	a, err := s.getByID(adminID)
	if err != nil {
		return err
	}
	if !helpers.CompareHashAndPassword(a.Password, oldPassword) {
		return ErrWrongOldPassword
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.Repo.UpdatePassword(a.ID, hash)
}

type UpdateProfileInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (s *AdminService) UpdateProfile(ctx context.Context, adminID string, in UpdateProfileInput) (*AdminProfile, error) {
	a, err := s.getByID(adminID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		a.Name = in.Name
	}
	if in.Password != "" {
		if len(in.Password) < 6 {
			return nil, ErrPasswordTooShort
		}
		hash, hErr := helpers.HashPassword(in.Password)
		if hErr != nil {
			return nil, hErr
		}
		a.Password = hash
	}
	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return profileOf(a), nil
}

func (s *AdminService) Profile(ctx context.Context, adminID string) (*AdminProfile, error) {
	a, err := s.getByID(adminID)
	if err != nil {
		return nil, err
	}
	return profileOf(a), nil
}

// Logout blacklists the presented token and clears the session hash.
func (s *AdminService) Logout(ctx context.Context, claims *helpers.Claims) error {
	if err := s.Sessions.Blacklist(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return err
	}
	return s.Sessions.Clear(ctx, claims.AdminID)
}

func (s *AdminService) DeleteAccount(ctx context.Context, adminID string) error {
	if err := s.Repo.Delete(adminID); err != nil {
		return err
	}
	return s.Sessions.Clear(ctx, adminID)
}

func (s *AdminService) sendOTP(ctx context.Context, purpose OTPPurpose, a *entity.Admin) error {
	code, err := s.OTP.Issue(ctx, purpose, a.Email)
	if err != nil {
		return err
	}
	tmpl := templates.SignupOTP
	if purpose == PurposePasswordReset {
		tmpl = templates.ResetOTP
	}
	job := mailer.EmailJob{
		To:       a.Email,
		Subject:  templates.Subject(tmpl),
		Template: tmpl,
		Data:     templates.NewOTPData(s.AppName, a.Name, a.Email, code, s.OTP.TTL).Map(),
	}
	if err := s.Mail.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("email", a.Email).Error("enqueue otp email failed")
		return err
	}
	return nil
}

func (s *AdminService) getByEmail(email string) (*entity.Admin, error) {
	a, err := s.Repo.GetByEmail(email)
	if err != nil || a == nil {
		if err != nil && !postgres.ErrNotFound(err) {
			return nil, err
		}
		return nil, ErrAdminNotFound
	}
	return a, nil
}

func (s *AdminService) getByID(id string) (*entity.Admin, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil || a == nil {
		if err != nil && !postgres.ErrNotFound(err) {
			return nil, err
		}
		return nil, ErrAdminNotFound
	}
	return a, nil
}
