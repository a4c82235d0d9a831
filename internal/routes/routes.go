package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/CampusPayServices/fee-slot-booking/internal/audit"
	"github.com/CampusPayServices/fee-slot-booking/internal/config"
	domain "github.com/CampusPayServices/fee-slot-booking/internal/domain/booking"
	"github.com/CampusPayServices/fee-slot-booking/internal/handlers"
	"github.com/CampusPayServices/fee-slot-booking/internal/middleware"
	ucbooking "github.com/CampusPayServices/fee-slot-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	sessions domain.SessionStore,
	catalogs *domain.CatalogCache,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditLogger := audit.New(log)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	loginUC := ucbooking.NewLogin(sessions, catalogs, cfg, auditDispatcher)
	logoutUC := ucbooking.NewLogout(sessions, auditDispatcher)
	getSessionUC := ucbooking.NewGetSession(sessions)

	selectFeeUC := ucbooking.NewSelectFee(sessions, auditDispatcher)
	changeDateUC := ucbooking.NewChangeDate(
		sessions,
		catalogs.EndDate(),
		catalogs.Location(),
		auditDispatcher,
	)
	listSlotsUC := ucbooking.NewListSlots(sessions, catalogs)
	selectSlotUC := ucbooking.NewSelectSlot(sessions, catalogs, auditDispatcher)
	confirmUC := ucbooking.NewConfirmBooking(sessions, catalogs, auditDispatcher)
	resetUC := ucbooking.NewReset(sessions, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, logoutUC, cfg)
	meHandler := handlers.NewMeHandler(getSessionUC)

	bookingHandler := handlers.NewBookingHandler(
		selectFeeUC,
		changeDateUC,
		listSlotsUC,
		selectSlotUC,
		confirmUC,
		resetUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// SESSION API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/fees", bookingHandler.ListFees)
			secured.POST("/me/fee", bookingHandler.SelectFee)

			secured.POST("/me/date", bookingHandler.ChangeDate)
			secured.GET("/me/slots", bookingHandler.ListSlots)
			secured.POST("/me/slots/select", bookingHandler.SelectSlot)

			// ------------------------------
			// BOOKING
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.ConfirmBooking)
			secured.POST("/me/reset", bookingHandler.Reset)

			secured.POST("/auth/logout", authHandler.Logout)
		}
	}
}
