package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/dockwise/dock-scheduler/internal/audit"
	"github.com/dockwise/dock-scheduler/internal/config"
	"github.com/dockwise/dock-scheduler/internal/handlers"
	infraRepo "github.com/dockwise/dock-scheduler/internal/infra/repository"
	"github.com/dockwise/dock-scheduler/internal/locks"
	"github.com/dockwise/dock-scheduler/internal/middleware"
	ucScheduling "github.com/dockwise/dock-scheduler/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	locker := newLocker(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucScheduling.NewGetAvailability(bookingRepo)

	admissionUC := ucScheduling.NewRequestAdmission(
		bookingRepo,
		locker,
		auditDispatcher,
	)

	checkInUC := ucScheduling.NewCheckInBooking(bookingRepo, auditDispatcher)
	checkOutUC := ucScheduling.NewCheckOutBooking(bookingRepo, auditDispatcher)
	cancelUC := ucScheduling.NewCancelBooking(bookingRepo, auditDispatcher)

	listByDateUC := ucScheduling.NewListBookingsByDate(bookingRepo)
	listByMonthUC := ucScheduling.NewListBookingsByMonth(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	facilityHandler := handlers.NewFacilityHandler(db)
	operatingHoursHandler := handlers.NewOperatingHoursHandler(db)
	dockHandler := handlers.NewDockHandler(db)
	appointmentTypeHandler := handlers.NewAppointmentTypeHandler(db)
	carrierHandler := handlers.NewCarrierHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	bookingHandler := handlers.NewBookingHandler(
		db,
		availabilityUC,
		admissionUC,
		checkInUC,
		checkOutUC,
		cancelUC,
		listByDateUC,
		listByMonthUC,
	)

	publicHandler := handlers.NewPublicHandler(db, availabilityUC, admissionUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC CARRIER SURFACE
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetFacility)
			publicAPI.GET("/:slug/appointment-types", publicHandler.ListAppointmentTypes)
			publicAPI.GET("/:slug/availability", publicHandler.GetAvailability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE (FACILITY STAFF)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me/facility", facilityHandler.GetMeFacility)
			secured.PATCH("/me/facility", facilityHandler.UpdateMeFacility)

			secured.GET("/me/operating-hours", operatingHoursHandler.Get)
			secured.PUT("/me/operating-hours", operatingHoursHandler.Update)

			secured.GET("/me/docks", dockHandler.List)
			secured.POST("/me/docks", dockHandler.Create)
			secured.PATCH("/me/docks/:id", dockHandler.Update)

			secured.GET("/me/appointment-types", appointmentTypeHandler.List)
			secured.POST("/me/appointment-types", appointmentTypeHandler.Create)
			secured.PATCH("/me/appointment-types/:id", appointmentTypeHandler.Update)

			secured.GET("/me/carriers", carrierHandler.List)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/availability", bookingHandler.GetAvailability)
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListByDate)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/me/bookings/:id/check-in", bookingHandler.CheckIn)
			secured.PATCH("/me/bookings/:id/check-out", bookingHandler.CheckOut)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}

// newLocker picks the admission lock backend: Redis when configured, an
// in-process keyed mutex otherwise. Multi-replica deployments must set
// REDIS_URL or two replicas could both admit into the last slot.
func newLocker(cfg *config.Config) locks.Locker {
	if cfg.RedisURL == "" {
		return locks.NewKeyedMutex(cfg.AdmissionLockWait)
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		panic("invalid REDIS_URL: " + err.Error())
	}

	return locks.NewRedisLocker(redis.NewClient(opts), cfg.AdmissionLockWait)
}
