package commands

import (
	"context"
	"log/slog"
	"strings"

	"beautyspace/internal/domain/user"
	"beautyspace/internal/infra"
	"beautyspace/internal/pkg/errs"
	"beautyspace/internal/pkg/jwt"
	"beautyspace/internal/pkg/password"
	"beautyspace/internal/usecase/shared"
)

var (
	ErrEmailAlreadyRegistered = errs.New("email already registered")
	ErrInvalidCredentials     = errs.New("invalid credentials")
	ErrTokenGeneration        = errs.New("token generation failed")
)

type RegisterRequest struct {
	Email    string
	Name     string
	Password string
}

type AuthResult struct {
	UserID      int64
	Email       string
	Name        string
	Role        user.Role
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtService *jwt.Service) AuthCommands {
	return &authUseCaseImpl{uow: uow, jwtService: jwtService}
}

// Register creates the account with the default role; privileged roles are
// granted through the back office only.
func (a *authUseCaseImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var userID int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Users().Create(ctx, email, req.Name, hash, user.RoleUser)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrEmailAlreadyRegistered)
			}
			return err
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(userID, user.RoleUser)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		UserID:      userID,
		Email:       email,
		Name:        req.Name,
		Role:        user.RoleUser,
		AccessToken: token,
	}, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	creds, err := a.uow.Reads().UserByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	if err := password.ComparePassword(creds.PasswordHash, plainPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(creds.ID, creds.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastSignedIn(ctx, creds.ID)
	})
	if err != nil {
		// Sign-in succeeded; the timestamp is best effort.
		slog.Warn("failed to update last signed in", "user_id", creds.ID, "error", err.Error())
	}

	return &AuthResult{
		UserID:      creds.ID,
		Email:       creds.Email,
		Name:        creds.Name,
		Role:        creds.Role,
		AccessToken: token,
	}, nil
}
