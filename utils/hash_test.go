package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hashed == "s3cret-password" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPassword(hashed, "s3cret-password") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hashed, "wrong-password") {
		t.Error("wrong password accepted")
	}
}
