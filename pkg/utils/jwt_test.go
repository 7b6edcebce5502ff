package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")

	userID := primitive.NewObjectID()
	token, err := GenerateToken(userID, "Alice", "COUNSELOR")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != userID.Hex() || claims.Name != "Alice" || claims.Role != "COUNSELOR" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.IsAdmin() {
		t.Error("counselor must not be admin")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	SetSecret("test-secret")

	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	SetSecret("secret-one")
	token, err := GenerateToken(primitive.NewObjectID(), "Alice", "ADMIN")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	SetSecret("secret-two")
	if _, err := ValidateToken(token); err == nil {
		t.Error("expected error for token signed with different secret")
	}
}
