package auth

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	name := "Jane Wanjiku"
	role := RoleWaiter

	token, err := GenerateToken(userID, name, role)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	extractedUserID, extractedName, extractedRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if extractedUserID != userID {
		t.Fatalf("Expected userID %s, got %s", userID, extractedUserID)
	}
	if extractedName != name {
		t.Fatalf("Expected name %s, got %s", name, extractedName)
	}
	if extractedRole != role {
		t.Fatalf("Expected role %s, got %s", role, extractedRole)
	}
}

func TestJWTRejectsEmptyUserID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", "nobody", RoleWaiter); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	token, err := GenerateToken(uuid.New().String(), "Peter", RoleCashier)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if _, _, _, err := ValidateToken(token + "x"); err == nil {
		t.Fatal("expected error for tampered token")
	}
}
