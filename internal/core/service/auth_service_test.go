package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/openblog/bloglist/internal/core/domain"
)

func registerTestUser(t *testing.T, users *stubUserRepo, username, password string) *domain.User {
	t.Helper()
	user, err := newUserService(users, newStubBlogRepo()).Register(context.Background(), username, "", password)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	users := newStubUserRepo()
	user := registerTestUser(t, users, "xyl", "0117")
	svc := NewAuthService(users, newStubThrottle(), "secret", time.Hour, zerolog.Nop())

	token, got, err := svc.Login(context.Background(), "xyl", "0117")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty")
	}
	if got.ID != user.ID {
		t.Fatalf("unexpected user: %+v", got)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "xyl" || claims["id"] != user.ID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatal("expected exp claim")
	}
	if _, ok := claims["iat"]; !ok {
		t.Fatal("expected iat claim")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	users := newStubUserRepo()
	registerTestUser(t, users, "dave", "goodpass")
	throttle := newStubThrottle()
	svc := NewAuthService(users, throttle, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures["dave"] != 1 {
		t.Fatalf("expected one recorded failure, got %d", throttle.failures["dave"])
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubThrottle(), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubThrottle(), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	users := newStubUserRepo()
	registerTestUser(t, users, "carol", "s3cret")
	throttle := newStubThrottle()
	throttle.blocked = true
	svc := NewAuthService(users, throttle, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "carol", "s3cret"); !errors.Is(err, domain.ErrTooManyLogins) {
		t.Fatalf("expected ErrTooManyLogins, got %v", err)
	}
}

func TestAuthService_Login_ClearsThrottleOnSuccess(t *testing.T) {
	users := newStubUserRepo()
	registerTestUser(t, users, "carol", "s3cret")
	throttle := newStubThrottle()
	throttle.failures["carol"] = 3
	svc := NewAuthService(users, throttle, "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, ok := throttle.failures["carol"]; ok {
		t.Fatal("expected failure counter to be cleared")
	}
}
