package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2hunter2" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, "hunter2hunter2") {
		t.Error("correct password should verify")
	}
	if CheckPassword(hash, "hunter3hunter3") {
		t.Error("wrong password should not verify")
	}
	if CheckPassword("not-a-hash", "hunter2hunter2") {
		t.Error("malformed hash should not verify")
	}
}
