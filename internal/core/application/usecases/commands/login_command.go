package commands

import (
	"errors"

	"artisan/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand carries the password presented by the administrator.
type LoginCommand struct { //nolint:recvcheck //using for validation
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand accepts any password, including an empty one; checking it is
// the handler's job.
func NewLoginCommand(password string) (LoginCommand, error) {
	return LoginCommand{
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Password() string {
	return c.password
}
