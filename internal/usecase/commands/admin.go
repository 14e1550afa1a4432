package commands

import (
	"context"

	"beautyspace/internal/domain/booking"
	"beautyspace/internal/domain/loyalty"
	"beautyspace/internal/domain/user"
	"beautyspace/internal/domain/workspace"
	"beautyspace/internal/infra"
	"beautyspace/internal/pkg/errs"
	"beautyspace/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrUserHasRecords       = errs.New("user still has ledger or booking records")
	ErrInvalidRole          = errs.New("invalid role")
	ErrInvalidWorkspaceType = errs.New("invalid workspace type")
	ErrInvalidBookingState  = errs.New("invalid booking state")
)

type AdminUpdateUserRequest struct {
	Name   *string
	Role   *string
	Points *int
}

type AdminCreateWorkspaceRequest struct {
	Name         string
	Description  string
	Type         string
	PricePerHour int64
	PricePerDay  int64
	ImageURL     string
	IsAvailable  bool
}

type AdminUpdateWorkspaceRequest struct {
	Name         *string
	Description  *string
	Type         *string
	PricePerHour *int64
	PricePerDay  *int64
	ImageURL     *string
	IsAvailable  *bool
}

type AdminCommands interface {
	UpdateUser(ctx context.Context, userID int64, req AdminUpdateUserRequest) error
	DeleteUser(ctx context.Context, userID int64) error
	CreateWorkspace(ctx context.Context, req AdminCreateWorkspaceRequest) (int64, error)
	UpdateWorkspace(ctx context.Context, workspaceID int64, req AdminUpdateWorkspaceRequest) error
	DeleteWorkspace(ctx context.Context, workspaceID int64) error
	UpdateBookingStatus(ctx context.Context, bookingID int64, status string) error
	UpdateBookingPaymentStatus(ctx context.Context, bookingID int64, status string) error
}

type adminUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewAdminUseCase(uow shared.UnitOfWork) AdminCommands {
	return &adminUseCaseImpl{uow: uow}
}

// userPatchState is the merge target for partial user updates.
type userPatchState struct {
	Name   string
	Role   string
	Points int
}

// UpdateUser merges the patch over the current state. A points correction
// recomputes the tier so status never drifts from points.
func (uc *adminUseCaseImpl) UpdateUser(ctx context.Context, userID int64, req AdminUpdateUserRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			return err
		}

		state := userPatchState{
			Name:   snap.Name,
			Role:   snap.Role.String(),
			Points: snap.Points,
		}
		if err := copier.CopyWithOption(&state, &req, copier.Option{IgnoreEmpty: true}); err != nil {
			return errs.Wrap(err, "failed to merge user patch")
		}

		role, err := user.NewRole(state.Role)
		if err != nil {
			return errs.Mark(err, ErrInvalidRole)
		}

		if err := tx.Users().UpdateProfile(ctx, userID, state.Name, role); err != nil {
			return err
		}

		if req.Points != nil {
			if err := tx.Users().SetPoints(ctx, userID, state.Points); err != nil {
				return err
			}
			if err := tx.Users().SetStatus(ctx, userID, loyalty.TierFor(state.Points).Status); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *adminUseCaseImpl) DeleteUser(ctx context.Context, userID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Users().Delete(ctx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrUserNotFound)
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.Mark(err, ErrUserHasRecords)
			}
			return err
		}
		return nil
	})
}

func (uc *adminUseCaseImpl) CreateWorkspace(ctx context.Context, req AdminCreateWorkspaceRequest) (int64, error) {
	if !workspace.Type(req.Type).IsValid() {
		return 0, ErrInvalidWorkspaceType
	}

	var workspaceID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Workspaces().Create(ctx, shared.CreateWorkspaceParams{
			Name:         req.Name,
			Description:  req.Description,
			Type:         req.Type,
			PricePerHour: req.PricePerHour,
			PricePerDay:  req.PricePerDay,
			ImageURL:     req.ImageURL,
			IsAvailable:  req.IsAvailable,
		})
		if err != nil {
			return err
		}
		workspaceID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return workspaceID, nil
}

func (uc *adminUseCaseImpl) UpdateWorkspace(ctx context.Context, workspaceID int64, req AdminUpdateWorkspaceRequest) error {
	if req.Type != nil && !workspace.Type(*req.Type).IsValid() {
		return ErrInvalidWorkspaceType
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Workspaces().Update(ctx, workspaceID, shared.UpdateWorkspaceParams{
			Name:         req.Name,
			Description:  req.Description,
			Type:         req.Type,
			PricePerHour: req.PricePerHour,
			PricePerDay:  req.PricePerDay,
			ImageURL:     req.ImageURL,
			IsAvailable:  req.IsAvailable,
		})
		if err != nil && infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrWorkspaceNotFound)
		}
		return err
	})
}

func (uc *adminUseCaseImpl) DeleteWorkspace(ctx context.Context, workspaceID int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Workspaces().Delete(ctx, workspaceID)
		if err != nil && infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrWorkspaceNotFound)
		}
		return err
	})
}

func (uc *adminUseCaseImpl) UpdateBookingStatus(ctx context.Context, bookingID int64, status string) error {
	s := booking.Status(status)
	if !s.IsValid() {
		return ErrInvalidBookingState
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Bookings().UpdateStatus(ctx, bookingID, s)
		if err != nil && infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return err
	})
}

func (uc *adminUseCaseImpl) UpdateBookingPaymentStatus(ctx context.Context, bookingID int64, status string) error {
	s := booking.PaymentStatus(status)
	if !s.IsValid() {
		return ErrInvalidBookingState
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Bookings().UpdatePaymentStatus(ctx, bookingID, s)
		if err != nil && infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return err
	})
}
