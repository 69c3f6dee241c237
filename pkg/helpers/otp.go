package helpers

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// OTP helpers shared by the signup-verify and password-reset flows.

// KeySignupOTP is the Redis key holding the signup verification code.
func KeySignupOTP(email string) string {
	return "signup:otp:" + email
}

// KeyResetOTP is the Redis key holding the password-reset code.
func KeyResetOTP(email string) string {
	return "reset:otp:" + email
}

var otpFormat = regexp.MustCompile(`^\d{6}$`)

// IsOTPFormat reports whether code is exactly six digits. Callers check this
// before touching the store so malformed codes never reach Redis.
func IsOTPFormat(code string) bool {
	return otpFormat.MatchString(code)
}

// GenOTPCode generates a secure random 6-digit code as a zero-padded string.
func GenOTPCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	n := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("%06d", n%1000000), nil
}
