package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndDecodeJWTPair(t *testing.T) {
	accessSecret := []byte("access-secret")
	refreshSecret := []byte("refresh-secret")

	pair, err := GenerateJWTPair(GenerateJWTPairDto{
		Method: jwt.SigningMethodHS256,
		AccessSecret: accessSecret,
		AccessClaims: jwt.MapClaims{"id": "user-1"},
		AccessExpiry: time.Hour,
		RefreshSecret: refreshSecret,
		RefreshClaims: jwt.MapClaims{"id": "user-1"},
		RefreshExpiry: time.Hour * 24,
	})
	if err != nil {
		t.Fatalf("unexpected error generating pair: %v", err)
	}

	claims, err := DecodeJWT(pair.AccessToken, accessSecret)
	if err != nil {
		t.Fatalf("unexpected error decoding access token: %v", err)
	}
	if claims["id"] != "user-1" {
		t.Errorf("want id claim %q, got %v", "user-1", claims["id"])
	}

	claims, err = DecodeJWT(pair.RefreshToken, refreshSecret)
	if err != nil {
		t.Fatalf("unexpected error decoding refresh token: %v", err)
	}
	if claims["id"] != "user-1" {
		t.Errorf("want id claim %q, got %v", "user-1", claims["id"])
	}

	// Tokens are bound to their own secrets.
	if _, err := DecodeJWT(pair.AccessToken, refreshSecret); err == nil {
		t.Error("want error decoding access token with refresh secret, got nil")
	}
}
