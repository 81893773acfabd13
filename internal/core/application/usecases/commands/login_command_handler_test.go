package commands_test

import (
	"errors"
	"testing"

	"artisan/internal/core/application/usecases/commands"
	"artisan/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCommandHandler_Handle_Success(t *testing.T) {
	tokens := new(MockTokenService)
	tokens.On("Issue").Return("signed.token.value", nil).Once()
	cmd, err := commands.NewLoginCommand("admin123")
	require.NoError(t, err)

	h := commands.NewLoginCommandHandler("admin123", tokens)
	res, err := h.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "signed.token.value", res.Token)
	assert.Equal(t, commands.LoginMessage, res.Message)
	tokens.AssertExpectations(t)
}

func TestLoginCommandHandler_Handle_WrongPassword(t *testing.T) {
	testCases := map[string]string{
		"different":      "wrong",
		"empty":          "",
		"prefix":         "admin",
		"case differs":   "ADMIN123",
		"trailing space": "admin123 ",
	}

	for name, password := range testCases {
		t.Run(name, func(t *testing.T) {
			tokens := new(MockTokenService)
			cmd, err := commands.NewLoginCommand(password)
			require.NoError(t, err)

			h := commands.NewLoginCommandHandler("admin123", tokens)
			res, err := h.Handle(t.Context(), cmd)

			require.ErrorIs(t, err, commands.ErrInvalidPassword)
			require.ErrorIs(t, err, ports.ErrUnauthorized)
			assert.Empty(t, res.Token)
			tokens.AssertNotCalled(t, "Issue")
		})
	}
}

func TestLoginCommandHandler_Handle_IssueError(t *testing.T) {
	tokens := new(MockTokenService)
	tokens.On("Issue").Return("", errors.New("signing failed")).Once()
	cmd, _ := commands.NewLoginCommand("admin123")

	h := commands.NewLoginCommandHandler("admin123", tokens)
	_, err := h.Handle(t.Context(), cmd)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrUnauthorized)
}

func TestLoginCommandHandler_Handle_NotConstructed(t *testing.T) {
	tokens := new(MockTokenService)
	h := commands.NewLoginCommandHandler("admin123", tokens)

	_, err := h.Handle(t.Context(), commands.LoginCommand{})

	require.ErrorIs(t, err, commands.ErrLoginCommandIsNotConstructed)
	tokens.AssertNotCalled(t, "Issue")
}
