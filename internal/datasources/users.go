package datasources

import (
	"context"

	"github.com/jbeshir/question-survey/internal/domain"
)

// UserCreator stores a new user. Returns ErrUsernameTaken if the username is in use.
type UserCreator interface {
	CreateUser(ctx context.Context, user domain.User) error
}

// UserByUsernameGetter retrieves a user by username. Returns ErrNotFound if there is none.
type UserByUsernameGetter interface {
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

type UserRepository interface {
	UserCreator
	UserByUsernameGetter
}
