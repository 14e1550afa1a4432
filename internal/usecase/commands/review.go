package commands

import (
	"context"

	"beautyspace/internal/domain/loyalty"
	domreview "beautyspace/internal/domain/review"
	"beautyspace/internal/domain/user"
	"beautyspace/internal/infra"
	"beautyspace/internal/pkg/clock"
	"beautyspace/internal/pkg/errs"
	"beautyspace/internal/usecase/shared"
)

var (
	ErrReviewNotFound       = errs.New("review not found")
	ErrReviewNotOwned       = errs.New("review not owned by user")
	ErrReviewBookingInvalid = errs.New("booking does not match the review")
)

type CreateReviewRequest struct {
	WorkspaceID int64
	BookingID   *int64
	Rating      int
	Comment     string
}

type CreateReviewResult struct {
	ReviewID      int64
	AwardedPoints int
	NewStatus     loyalty.Status
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID int64) (*CreateReviewResult, error)
	DeleteReview(ctx context.Context, reviewID, actorID int64, actorRole user.Role) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview writes the review, rebuilds the workspace aggregate and awards
// the flat review bonus in one transaction.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID int64) (*CreateReviewResult, error) {
	var result CreateReviewResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().WorkspaceByID(ctx, req.WorkspaceID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrWorkspaceNotFound)
			}
			return err
		}

		if req.BookingID != nil {
			b, err := tx.Reads().BookingByID(ctx, *req.BookingID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, ErrReviewBookingInvalid)
				}
				return err
			}
			if b.UserID() != userID || b.WorkspaceID() != req.WorkspaceID {
				return ErrReviewBookingInvalid
			}
		}

		rev, err := domreview.NewReview(req.WorkspaceID, userID, req.BookingID, req.Rating, req.Comment, uc.clock.Now())
		if err != nil {
			return err
		}

		reviewID, err := tx.Reviews().Create(ctx, rev)
		if err != nil {
			return err
		}

		if err := tx.Workspaces().RecalcRating(ctx, req.WorkspaceID); err != nil {
			return err
		}

		newStatus, err := awardPoints(ctx, tx, userID, loyalty.PointsForReview())
		if err != nil {
			return err
		}

		result = CreateReviewResult{
			ReviewID:      reviewID,
			AwardedPoints: loyalty.PointsForReview(),
			NewStatus:     newStatus,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteReview removes the review and rebuilds the workspace aggregate.
// Points granted for the review are kept.
func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID, actorID int64, actorRole user.Role) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReviewByID(ctx, reviewID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReviewNotFound)
			}
			return err
		}
		if actorRole != user.RoleAdmin && snap.UserID != actorID {
			return ErrReviewNotOwned
		}

		if err := tx.Reviews().Delete(ctx, reviewID); err != nil {
			return err
		}
		return tx.Workspaces().RecalcRating(ctx, snap.WorkspaceID)
	})
}
