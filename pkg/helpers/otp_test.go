package helpers

import "testing"

func TestIsOTPFormat(t *testing.T) {
	valid := []string{"000000", "123456", "999999"}
	for _, code := range valid {
		if !IsOTPFormat(code) {
			t.Errorf("IsOTPFormat(%q) = false, want true", code)
		}
	}

	invalid := []string{"", "12345", "1234567", "12345a", "abcdef", " 23456", "12 456"}
	for _, code := range invalid {
		if IsOTPFormat(code) {
			t.Errorf("IsOTPFormat(%q) = true, want false", code)
		}
	}
}

func TestGenOTPCodeShape(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenOTPCode()
		if err != nil {
			t.Fatalf("gen: %v", err)
		}
		if !IsOTPFormat(code) {
			t.Fatalf("generated code %q is not six digits", code)
		}
	}
}

func TestOTPKeysSeparateFlows(t *testing.T) {
	email := "admin@example.com"
	if KeySignupOTP(email) == KeyResetOTP(email) {
		t.Error("signup and reset OTP keys must not collide")
	}
}
