package utils

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!", 4)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatal("hash equals the plain password")
	}
	if !VerifyPassword(hash, "s3cret!") {
		t.Error("correct password did not verify")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password verified")
	}
}

func TestHashPasswordCostFallback(t *testing.T) {
	// Cost below the bcrypt minimum falls back to the library default
	// instead of failing.
	hash, err := HashPassword("pw", 0)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !VerifyPassword(hash, "pw") {
		t.Error("password did not verify after cost fallback")
	}
}
