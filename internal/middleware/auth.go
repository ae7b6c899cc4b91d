package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/worktrackhq/worktrack/internal/domain"
	"github.com/worktrackhq/worktrack/internal/repository"
)

type contextKey string

const (
	// ContextKeyUser is the key for storing the authenticated user in the
	// request context.
	ContextKeyUser contextKey = "user"
)

// AuthMiddleware handles Bearer token authentication. Tokens are HS256 JWTs
// whose subject is the user ID; the user row is loaded per request so
// deactivation takes effect immediately.
type AuthMiddleware struct {
	userRepo *repository.UserRepository
	secret   []byte
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(userRepo *repository.UserRepository, secret []byte) *AuthMiddleware {
	return &AuthMiddleware{
		userRepo: userRepo,
		secret:   secret,
	}
}

// IssueToken mints a signed token for a user, used by the issue-token
// command. Login and registration live outside this service.
func IssueToken(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// parseToken validates a token and extracts the user ID from its subject.
func parseToken(tokenStr string, secret []byte) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}

	return claims.Subject, nil
}

// Authenticate validates the Bearer token and adds the user to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			http.Error(w, "invalid authorization header format", http.StatusUnauthorized)
			return
		}

		userID, err := parseToken(parts[1], m.secret)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		if !user.IsActive {
			http.Error(w, "user inactive", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext retrieves the authenticated user from request context.
func GetUserFromContext(ctx context.Context) (*domain.User, error) {
	user, ok := ctx.Value(ContextKeyUser).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
