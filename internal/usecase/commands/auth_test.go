//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"beautyspace/internal/domain/user"
	"beautyspace/internal/pkg/jwt"
	"beautyspace/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (*fakeUoW, commands.AuthCommands) {
	uow := newFakeUoW(newFakeState())
	jwtService := jwt.NewService("test-secret", time.Hour)
	return uow, commands.NewAuthUseCase(uow, jwtService)
}

func TestRegisterAndLogin(t *testing.T) {
	_, uc := newAuthFixture()

	registered, err := uc.Register(context.Background(), commands.RegisterRequest{
		Email:    "Anna@Example.com",
		Name:     "Anna",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	// Email is normalized and the default role applies.
	assert.Equal(t, "anna@example.com", registered.Email)
	assert.Equal(t, user.RoleUser, registered.Role)
	assert.NotEmpty(t, registered.AccessToken)

	loggedIn, err := uc.Login(context.Background(), "anna@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, loggedIn.UserID)
	assert.NotEmpty(t, loggedIn.AccessToken)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	_, uc := newAuthFixture()

	_, err := uc.Register(context.Background(), commands.RegisterRequest{
		Email:    "anna@example.com",
		Name:     "Anna",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), commands.RegisterRequest{
		Email:    "anna@example.com",
		Name:     "Other Anna",
		Password: "another-pass",
	})
	assert.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
}

func TestLogin_WrongPassword(t *testing.T) {
	_, uc := newAuthFixture()

	_, err := uc.Register(context.Background(), commands.RegisterRequest{
		Email:    "anna@example.com",
		Name:     "Anna",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), "anna@example.com", "wrong")
	assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	_, uc := newAuthFixture()

	_, err := uc.Login(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
}
