package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"beautyspace/internal/domain/user"
	"beautyspace/internal/handler/api"
	"beautyspace/internal/handler/middleware"
	"beautyspace/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Workspace *api.WorkspaceHandler
	Booking   *api.BookingHandler
	Review    *api.ReviewHandler
	Wallet    *api.WalletHandler
	User      *api.UserHandler
	Admin     *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, redisClient *redis.Client, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, redisClient, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, redisClient *redis.Client, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authRateLimit := middleware.RateLimitMiddleware(redisClient, 10, time.Minute)
	topUpRateLimit := middleware.RateLimitMiddleware(redisClient, 5, time.Minute)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{authRateLimit}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{authRateLimit}},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		workspaces := apiGroup.Group("/workspaces")
		{
			addRoutes(workspaces, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Workspace.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Workspace.Get},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Workspace.ListReviews},
				{Method: http.MethodGet, Path: "/:id/occupied-slots", Handler: h.Booking.OccupiedSlots},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
				{Method: http.MethodPatch, Path: "/:id/reschedule", Handler: h.Booking.Reschedule},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.Delete},
			})
		}

		wallet := apiGroup.Group("")
		wallet.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wallet, []route{
				{Method: http.MethodGet, Path: "/transactions", Handler: h.Wallet.ListTransactions},
				{Method: http.MethodPost, Path: "/transactions", Handler: h.Wallet.CreateTransaction},
				{Method: http.MethodGet, Path: "/balance", Handler: h.Wallet.Balance},
				{Method: http.MethodPost, Path: "/topups", Handler: h.Wallet.CreateTopUp, Mw: []gin.HandlerFunc{topUpRateLimit}},
				{Method: http.MethodPost, Path: "/topups/confirm", Handler: h.Wallet.ConfirmTopUp, Mw: []gin.HandlerFunc{topUpRateLimit}},
				{Method: http.MethodGet, Path: "/users/me/stats", Handler: h.User.MyStats},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/stats", Handler: h.Admin.Stats},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodPatch, Path: "/users/:id", Handler: h.Admin.UpdateUser},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: h.Admin.DeleteUser},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.ListBookings},
				{Method: http.MethodGet, Path: "/reviews", Handler: h.Admin.ListReviews},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Admin.UpdateBookingStatus},
				{Method: http.MethodPatch, Path: "/bookings/:id/payment-status", Handler: h.Admin.UpdateBookingPaymentStatus},
				{Method: http.MethodPost, Path: "/workspaces", Handler: h.Admin.CreateWorkspace},
				{Method: http.MethodPatch, Path: "/workspaces/:id", Handler: h.Admin.UpdateWorkspace},
				{Method: http.MethodDelete, Path: "/workspaces/:id", Handler: h.Admin.DeleteWorkspace},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
