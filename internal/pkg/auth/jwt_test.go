package auth

import (
	"errors"
	"testing"
	"time"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    exp,
		TokenIssuer: "test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, expiresIn, err := svc.GenerateToken(42, "instructor")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "instructor" {
		t.Errorf("Role = %q, want %q", claims.Role, "instructor")
	}
	if claims.ID == "" {
		t.Error("expected a token id claim")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, _, err := svc.GenerateToken(1, "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, _, err := newTestService(time.Hour).GenerateToken(1, "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "another-key", TokenExp: time.Hour, TokenIssuer: "test"})
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken = %v, want ErrInvalidToken", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService(time.Hour)
	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing prefix", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"lowercase scheme", "bearer abc.def.ghi", "", true},
		{"empty token", "Bearer ", "", true},
		{"empty header", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tc.header)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("err = %v, want ErrInvalidFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("token = %q, want %q", got, tc.want)
			}
		})
	}
}
