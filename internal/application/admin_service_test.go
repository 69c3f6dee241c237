package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/sirupsen/logrus"

	"github.com/anujyadav2244/cricriser/internal/domain/entity"
	"github.com/anujyadav2244/cricriser/pkg/helpers"
)

type fakeAdminRepo struct {
	byEmail map[string]*entity.Admin
	byID    map[string]*entity.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{byEmail: map[string]*entity.Admin{}, byID: map[string]*entity.Admin{}}
}

func (f *fakeAdminRepo) add(a *entity.Admin) {
	f.byEmail[a.Email] = a
	f.byID[a.ID] = a
}

func (f *fakeAdminRepo) Create(a *entity.Admin) error {
	if a.ID == "" {
		a.ID = "admin-" + a.Email
	}
	f.add(a)
	return nil
}

func (f *fakeAdminRepo) GetByID(id string) (*entity.Admin, error)       { return f.byID[id], nil }
func (f *fakeAdminRepo) GetByEmail(email string) (*entity.Admin, error) { return f.byEmail[email], nil }
func (f *fakeAdminRepo) Update(a *entity.Admin) error                   { f.add(a); return nil }

func (f *fakeAdminRepo) UpdatePassword(id, hash string) error {
	a, ok := f.byID[id]
	if !ok {
		return errors.New("not found")
	}
	a.Password = hash
	return nil
}

func (f *fakeAdminRepo) SetVerified(id string) error {
	a, ok := f.byID[id]
	if !ok {
		return errors.New("not found")
	}
	a.IsVerified = true
	return nil
}

func (f *fakeAdminRepo) Delete(id string) error {
	a, ok := f.byID[id]
	if !ok {
		return errors.New("not found")
	}
	delete(f.byEmail, a.Email)
	delete(f.byID, id)
	return nil
}

type fakePublisher struct{ jobs []any }

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	f.jobs = append(f.jobs, body)
	return nil
}

func newAdminFixture(t *testing.T) (*AdminService, *fakeAdminRepo, redismock.ClientMock) {
	t.Helper()
	db, mock := redismock.NewClientMock()
	repo := newFakeAdminRepo()
	svc := NewAdminService(
		repo,
		NewOTPStore(db, 10*time.Minute),
		NewSessionStore(db, time.Hour),
		helpers.NewJWTManager("test-secret", time.Hour),
		&fakePublisher{},
		"cricriser-test",
		logrus.New(),
	)
	return svc, repo, mock
}

func verifiedAdmin(t *testing.T) *entity.Admin {
	t.Helper()
	hash, err := helpers.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &entity.Admin{ID: "admin-1", Name: "Admin", Email: "a@b.c", Password: hash, IsVerified: true}
}

// Malformed codes are rejected before the store is ever consulted, so the
// mock carries no expectations.
func TestVerifyOTPRejectsBadFormatBeforeStore(t *testing.T) {
	svc, repo, mock := newAdminFixture(t)
	repo.add(verifiedAdmin(t))

	for _, code := range []string{"", "12345", "1234567", "12345a"} {
		if err := svc.VerifyOTP(context.Background(), "a@b.c", code); !errors.Is(err, ErrOTPFormat) {
			t.Errorf("code %q: got %v, want ErrOTPFormat", code, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestVerifyForgotOTPRejectsShortPasswordBeforeStore(t *testing.T) {
	svc, repo, mock := newAdminFixture(t)
	repo.add(verifiedAdmin(t))

	err := svc.VerifyForgotOTP(context.Background(), "a@b.c", "123456", "12345")
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("got %v, want ErrPasswordTooShort", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestVerifyForgotOTPConsumesAndRewritesPassword(t *testing.T) {
	svc, repo, mock := newAdminFixture(t)
	a := verifiedAdmin(t)
	repo.add(a)
	oldHash := a.Password

	mock.ExpectGet("reset:otp:a@b.c").SetVal("123456")
	mock.ExpectDel("reset:otp:a@b.c").SetVal(1)

	if err := svc.VerifyForgotOTP(context.Background(), "a@b.c", "123456", "newpassword"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if a.Password == oldHash {
		t.Error("password hash should change")
	}
	if !helpers.CompareHashAndPassword(a.Password, "newpassword") {
		t.Error("new password should verify against the stored hash")
	}
}

func TestVerifyOTPWrongCode(t *testing.T) {
	svc, repo, mock := newAdminFixture(t)
	a := verifiedAdmin(t)
	a.IsVerified = false
	repo.add(a)

	mock.ExpectGet("signup:otp:a@b.c").SetVal("123456")

	if err := svc.VerifyOTP(context.Background(), "a@b.c", "654321"); !errors.Is(err, ErrInvalidOTP) {
		t.Errorf("got %v, want ErrInvalidOTP", err)
	}
	if a.IsVerified {
		t.Error("wrong code must not verify the account")
	}
}

func TestVerifyOTPMarksVerified(t *testing.T) {
	svc, repo, mock := newAdminFixture(t)
	a := verifiedAdmin(t)
	a.IsVerified = false
	repo.add(a)

	mock.ExpectGet("signup:otp:a@b.c").SetVal("123456")
	mock.ExpectDel("signup:otp:a@b.c").SetVal(1)

	if err := svc.VerifyOTP(context.Background(), "a@b.c", "123456"); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !a.IsVerified {
		t.Error("account should be verified")
	}
}

// An already-verified account fails fast without touching the OTP store.
func TestVerifyOTPAlreadyVerified(t *testing.T) {
	svc, repo, mock := newAdminFixture(t)
	repo.add(verifiedAdmin(t))

	if err := svc.VerifyOTP(context.Background(), "a@b.c", "123456"); !errors.Is(err, ErrAlreadyVerified) {
		t.Errorf("got %v, want ErrAlreadyVerified", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestLoginErrors(t *testing.T) {
	svc, repo, _ := newAdminFixture(t)

	if _, err := svc.Login(context.Background(), "nobody@b.c", "password123"); !errors.Is(err, ErrNoAccount) {
		t.Errorf("unknown email: got %v, want ErrNoAccount", err)
	}

	a := verifiedAdmin(t)
	a.IsVerified = false
	repo.add(a)
	if _, err := svc.Login(context.Background(), "a@b.c", "password123"); !errors.Is(err, ErrEmailNotVerified) {
		t.Errorf("unverified: got %v, want ErrEmailNotVerified", err)
	}

	a.IsVerified = true
	if _, err := svc.Login(context.Background(), "a@b.c", "wrong-pass"); !errors.Is(err, ErrIncorrectPassword) {
		t.Errorf("wrong password: got %v, want ErrIncorrectPassword", err)
	}
}

func TestResetPasswordRequiresCurrentPassword(t *testing.T) {
	svc, repo, _ := newAdminFixture(t)
	repo.add(verifiedAdmin(t))

	err := svc.ResetPassword(context.Background(), "admin-1", "wrong-pass", "newpassword")
	if !errors.Is(err, ErrWrongOldPassword) {
		t.Errorf("got %v, want ErrWrongOldPassword", err)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, repo, _ := newAdminFixture(t)
	repo.add(verifiedAdmin(t))

	err := svc.Signup(context.Background(), "Other", "a@b.c", "password123")
	if !errors.Is(err, ErrEmailRegistered) {
		t.Errorf("got %v, want ErrEmailRegistered", err)
	}
}
