package application

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anujyadav2244/cricriser/pkg/helpers"
)

// OTPPurpose selects which flow a code belongs to. The two flows never share
// codes: a signup code cannot authorize a password reset.
type OTPPurpose int

const (
	PurposeSignupVerify OTPPurpose = iota
	PurposePasswordReset
)

func (p OTPPurpose) key(email string) string {
	if p == PurposePasswordReset {
		return helpers.KeyResetOTP(email)
	}
	return helpers.KeySignupOTP(email)
}

// OTPStore issues and consumes one-time codes in Redis. Expiry is enforced
// by key TTL; a consumed code is deleted so it cannot be replayed.
type OTPStore struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewOTPStore(rdb *redis.Client, ttl time.Duration) *OTPStore {
	return &OTPStore{RDB: rdb, TTL: ttl}
}

// Issue generates a fresh 6-digit code for the email and stores it with TTL.
func (s *OTPStore) Issue(ctx context.Context, purpose OTPPurpose, email string) (string, error) {
	code, err := helpers.GenOTPCode()
	if err != nil {
		return "", err
	}
	if err := s.RDB.Set(ctx, purpose.key(email), code, s.TTL).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Consume compares the submitted code against the stored one and deletes it
// on success. Returns false for a missing, expired, or mismatched code.
func (s *OTPStore) Consume(ctx context.Context, purpose OTPPurpose, email, code string) (bool, error) {
	key := purpose.key(email)
	stored, err := s.RDB.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}
	if err := s.RDB.Del(ctx, key).Err(); err != nil {
		return false, err
	}
	return true, nil
}
