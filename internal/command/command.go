package command

import (
	"context"
	"errors"
)

// Command is implemented by every business operation.
// Req is the request type and Res is the result type.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

// Empty is used as the result type for commands that only return an error.
type Empty struct{}

// ErrUnauthenticated is returned by commands acting on behalf of a user when no user is given.
var ErrUnauthenticated = errors.New("command requires an authenticated user")
