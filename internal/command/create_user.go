package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jbeshir/question-survey/internal/datasources"
	"github.com/jbeshir/question-survey/internal/domain"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest password bcrypt will hash.
const maxPasswordBytes = 72

// ErrInvalidUser is returned when a user cannot be created from the given details.
var ErrInvalidUser = errors.New("invalid user details")

// CreateUserRequest is the request for the CreateUser command.
type CreateUserRequest struct {
	Username string
	Password string
	Email    string
}

// CreateUserResponse is the response from the CreateUser command.
type CreateUserResponse struct {
	UserID string
}

// CreateUser stores a new local user with a bcrypt-hashed password.
type CreateUser struct {
	Creator  datasources.UserCreator
	Clock    clockwork.Clock
	HashCost int
}

// NewCreateUser creates a properly initialized CreateUser command.
func NewCreateUser(creator datasources.UserCreator, clock clockwork.Clock) *CreateUser {
	return &CreateUser{
		Creator:  creator,
		Clock:    clock,
		HashCost: bcrypt.DefaultCost,
	}
}

func (c *CreateUser) Execute(ctx context.Context, req CreateUserRequest) (CreateUserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return CreateUserResponse{}, fmt.Errorf("%w: username is required", ErrInvalidUser)
	}
	if req.Password == "" {
		return CreateUserResponse{}, fmt.Errorf("%w: password is required", ErrInvalidUser)
	}
	if len(req.Password) > maxPasswordBytes {
		return CreateUserResponse{}, fmt.Errorf("%w: password longer than %d bytes", ErrInvalidUser, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), c.HashCost)
	if err != nil {
		return CreateUserResponse{}, fmt.Errorf("hashing password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		CreatedAt:    c.Clock.Now().UTC(),
	}

	if err := c.Creator.CreateUser(ctx, user); err != nil {
		return CreateUserResponse{}, fmt.Errorf("creating user: %w", err)
	}

	return CreateUserResponse{UserID: user.ID}, nil
}
