package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a username and password do not match a user.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthenticateUserRequest is the request for the AuthenticateUser command.
type AuthenticateUserRequest struct {
	Username string
	Password string
}

// AuthenticateUser checks a username and password against the stored bcrypt hash.
type AuthenticateUser struct {
	Getter datasources.UserByUsernameGetter
}

// NewAuthenticateUser creates a properly initialized AuthenticateUser command.
func NewAuthenticateUser(getter datasources.UserByUsernameGetter) *AuthenticateUser {
	return &AuthenticateUser{Getter: getter}
}

func (c *AuthenticateUser) Execute(ctx context.Context, req AuthenticateUserRequest) (domain.User, error) {
	if req.Username == "" || req.Password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := c.Getter.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, datasources.ErrNotFound) {
		return domain.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("comparing password hash: %w", err)
	}

	return user, nil
}
