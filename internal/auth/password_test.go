package auth

import "testing"

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash must not equal the plain password")
	}
	if err := VerifyPassword("hunter2", hash); err != nil {
		t.Fatalf("verify correct password: %v", err)
	}
	if err := VerifyPassword("wrong", hash); err == nil {
		t.Fatal("expected verification to fail for a wrong password")
	}
}
