package commands

import (
	"context"
	"crypto/subtle"
	"fmt"

	"artisan/internal/core/ports"
)

// LoginMessage accompanies every issued token.
const LoginMessage = "Login successful"

var ErrInvalidPassword = fmt.Errorf("%w: invalid password", ports.ErrUnauthorized)

type LoginResult struct {
	Token   string
	Message string
}

// LoginCommandHandler exchanges the shared administrator password for a
// session token.
//
// Example:
//
//	handler := NewLoginCommandHandler(cfg.AdminPassword, tokens)
//	cmd, _ := NewLoginCommand("admin123")
//	res, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ports.ErrUnauthorized) {
//	    // wrong password, no token issued
//	}
type LoginCommandHandler struct {
	adminPassword []byte
	tokens        ports.TokenService
}

func NewLoginCommandHandler(adminPassword string, tokens ports.TokenService) LoginCommandHandler {
	return LoginCommandHandler{
		adminPassword: []byte(adminPassword),
		tokens:        tokens,
	}
}

// Handle compares the password in constant time and issues a token only on an
// exact match.
func (h *LoginCommandHandler) Handle(_ context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	if subtle.ConstantTimeCompare([]byte(cmd.Password()), h.adminPassword) != 1 {
		return LoginResult{}, ErrInvalidPassword
	}

	token, err := h.tokens.Issue()
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	return LoginResult{Token: token, Message: LoginMessage}, nil
}
