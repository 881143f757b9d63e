package datasources

import "errors"

// ErrNotFound is returned when a requested record does not exist or is not
// visible to the requesting user.
var ErrNotFound = errors.New("not found")

// ErrUsernameTaken is returned when creating a user whose username already exists.
var ErrUsernameTaken = errors.New("username already taken")

type DatasetRepository interface {
	QuestionRepository
	VoteRepository
	UserRepository
}
