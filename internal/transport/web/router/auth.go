package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jbeshir/question-survey/internal/transport/web/session"
)

const auth0AuthHeaderPrefix = "Bearer auth0|"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_ = json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				logger := domain.LoggerFromContext(ctx).With("user_id", result.UserID)
				ctx = domain.ContextWithLogger(ctx, logger)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// SessionReader reads the logged-in user from a request.
type SessionReader interface {
	UserID(r *http.Request) (string, error)
}

// NewSessionValidator creates a validator for session cookies set by the login endpoint.
// An unreadable cookie is treated as no session, so a stale cookie never blocks public pages.
func NewSessionValidator(sessions SessionReader) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		userID, err := sessions.UserID(r)
		if errors.Is(err, session.ErrNoUser) {
			return nil, nil
		}
		if err != nil {
			logger := domain.LoggerFromContext(r.Context())
			logger.DebugContext(r.Context(), "ignoring unreadable session cookie", "error", err)
			return nil, nil
		}

		return &AuthResult{
			UserID: userID,
			Method: domain.AuthMethodSession,
		}, nil
	}
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return newBearerValidator(jwtValidator.ValidateToken), nil
}

type tokenValidator func(ctx context.Context, token string) (any, error)

func newBearerValidator(validateToken tokenValidator) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}

		token, err := validateToken(r.Context(), authHeader[len(auth0AuthHeaderPrefix):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims, ok := token.(*validator.ValidatedClaims)
		if !ok || claims.RegisteredClaims.Subject == "" {
			return nil, fmt.Errorf("JWT token has no subject")
		}

		return &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodAuth0,
		}, nil
	}
}
