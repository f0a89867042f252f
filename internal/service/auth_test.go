package service

import (
	"context"
	"errors"
	"testing"

	"github.com/BloggingApp/blog-service/internal/dto"
	"go.uber.org/zap"
)

func TestAuthService_SignUpAndSignIn(t *testing.T) {
	t.Setenv("ACCESS_SECRET", "test-access-secret")
	t.Setenv("REFRESH_SECRET", "test-refresh-secret")

	ctx := context.Background()
	_, repo := newTestRepo()
	auth := newAuthService(zap.NewNop(), repo)

	userDto, pair, err := auth.SignUp(ctx, dto.CreateUserDto{
		Email: "leo@example.com",
		Username: "leo",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userDto.Username != "leo" {
		t.Errorf("signed up username = %q, want %q", userDto.Username, "leo")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("sign up returned empty token pair")
	}

	if _, _, err := auth.SignUp(ctx, dto.CreateUserDto{
		Email: "leo@example.com",
		Username: "other",
		Password: "password123",
	}); !errors.Is(err, ErrEmailOrUsernameTaken) {
		t.Errorf("sign up with taken email: err = %v, want ErrEmailOrUsernameTaken", err)
	}

	for _, login := range []string{"leo", "leo@example.com"} {
		if _, _, err := auth.SignIn(ctx, dto.SignInDto{EmailOrUsername: login, Password: "password123"}); err != nil {
			t.Errorf("sign in as %q: unexpected error: %v", login, err)
		}
	}

	if _, _, err := auth.SignIn(ctx, dto.SignInDto{EmailOrUsername: "leo", Password: "wrongpassword"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("sign in with wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := auth.SignIn(ctx, dto.SignInDto{EmailOrUsername: "nobody", Password: "password123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("sign in as unknown user: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_Tokens(t *testing.T) {
	t.Setenv("ACCESS_SECRET", "test-access-secret")
	t.Setenv("REFRESH_SECRET", "test-refresh-secret")

	ctx := context.Background()
	_, repo := newTestRepo()
	auth := newAuthService(zap.NewNop(), repo)

	userDto, pair, err := auth.SignUp(ctx, dto.CreateUserDto{
		Email: "leo@example.com",
		Username: "leo",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := auth.UserFromAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != userDto.ID {
		t.Errorf("access token resolved to user %s, want %s", user.ID, userDto.ID)
	}

	if _, err := auth.UserFromAccessToken(ctx, "not-a-token"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("garbage access token: err = %v, want ErrInvalidCredentials", err)
	}
	// Tokens are bound to their purpose: a refresh token is not an access token.
	if _, err := auth.UserFromAccessToken(ctx, pair.RefreshToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("refresh token used as access token: err = %v, want ErrInvalidCredentials", err)
	}

	refreshed, err := auth.RefreshTokens(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := auth.UserFromAccessToken(ctx, refreshed.AccessToken); err != nil {
		t.Errorf("refreshed access token rejected: %v", err)
	}
}
