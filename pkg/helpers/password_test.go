package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CompareHashAndPassword(hash, "s3cret-pass") {
		t.Error("correct password should verify")
	}
	if CompareHashAndPassword(hash, "wrong-pass") {
		t.Error("wrong password should not verify")
	}
}
