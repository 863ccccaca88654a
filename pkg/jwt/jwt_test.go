package jwt

import (
	"strings"
	"testing"
	"time"

	"go-hospital-management/config"
)

func newService(expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: expiry,
	})
}

func TestGenerateValidate_RoundTrip(t *testing.T) {
	svc := newService(30 * time.Minute)

	token, err := svc.Generate("drsmith", "doctor")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "drsmith" {
		t.Errorf("subject = %q, want %q", claims.Subject, "drsmith")
	}
	if claims.Role != "doctor" {
		t.Errorf("role = %q, want %q", claims.Role, "doctor")
	}
	if claims.TokenID == "" {
		t.Error("token id should not be empty")
	}
}

func TestValidate_Expired(t *testing.T) {
	// NewJWTService rejects non-positive TTLs, so build the expired service
	// directly.
	svc := &JWTService{config: config.JWTConfig{Secret: "test-secret", AccessExpiry: -1 * time.Minute}}

	token, err := svc.Generate("drsmith", "doctor")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := svc.Validate(token); err == nil {
		t.Error("expected error validating expired token")
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	svc := newService(30 * time.Minute)
	token, err := svc.Generate("drsmith", "doctor")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: 30 * time.Minute})
	if _, err := other.Validate(token); err == nil {
		t.Error("expected error validating token signed with another secret")
	}
}

func TestValidate_Tampered(t *testing.T) {
	svc := newService(30 * time.Minute)
	token, err := svc.Generate("drsmith", "doctor")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format")
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]
	if _, err := svc.Validate(tampered); err == nil {
		t.Error("expected error validating tampered token")
	}
}

func TestValidate_Malformed(t *testing.T) {
	svc := newService(30 * time.Minute)
	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(bad); err == nil {
			t.Errorf("expected error validating %q", bad)
		}
	}
}

func TestDefaultExpiry(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "test-secret"})
	if got := svc.GetAccessExpiry(); got != 15*time.Minute {
		t.Errorf("default expiry = %v, want 15m", got)
	}
}
