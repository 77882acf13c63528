package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerror "github.com/pennywise/backend/internal/domain/error"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")
	ctx := context.Background()

	userID := uuid.New()
	token, err := svc.GenerateAccessToken(ctx, userID, "ada@example.com", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := svc.ValidateAccessToken(ctx, token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "ada@example.com" {
		t.Errorf("expected email ada@example.com, got %s", claims.Email)
	}
	if claims.ExpiresAt.Before(time.Now()) {
		t.Error("expiry should be in the future")
	}
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret")
	ctx := context.Background()

	token, err := svc.GenerateAccessToken(ctx, uuid.New(), "ada@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = svc.ValidateAccessToken(ctx, token)
	if !errors.Is(err, domainerror.ErrExpiredToken) {
		t.Errorf("expected expired token error, got %v", err)
	}
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := NewTokenService("one-secret").GenerateAccessToken(ctx, uuid.New(), "", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	_, err = NewTokenService("another-secret").ValidateAccessToken(ctx, token)
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected invalid token error, got %v", err)
	}
}

func TestTokenService_RejectsWrongTokenType(t *testing.T) {
	secret := "test-secret"
	now := time.Now().UTC()
	claims := CustomClaims{
		UserID:    uuid.NewString(),
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = NewTokenService(secret).ValidateAccessToken(context.Background(), token)
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected invalid token error, got %v", err)
	}
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	_, err := NewTokenService("test-secret").ValidateAccessToken(context.Background(), "not.a.jwt")
	if !errors.Is(err, domainerror.ErrInvalidToken) {
		t.Errorf("expected invalid token error, got %v", err)
	}
}
