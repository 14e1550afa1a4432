package components

import (
	"beautyspace/internal/handler"
	"beautyspace/internal/handler/api"
	"beautyspace/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewWorkspaceHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewWalletHandler,
		api.NewUserHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	workspace *api.WorkspaceHandler,
	booking *api.BookingHandler,
	review *api.ReviewHandler,
	wallet *api.WalletHandler,
	user *api.UserHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Workspace: workspace,
		Booking:   booking,
		Review:    review,
		Wallet:    wallet,
		User:      user,
		Admin:     admin,
	}
}
