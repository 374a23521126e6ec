package router

import (
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"

	"github.com/vmihailov/reservation-app/config"
	"github.com/vmihailov/reservation-app/controllers"
	"github.com/vmihailov/reservation-app/middlewares"
	"github.com/vmihailov/reservation-app/realtime"
	"github.com/vmihailov/reservation-app/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	loc, err := config.RestaurantLocation()
	if err != nil {
		panic(err)
	}
	numTables := config.NumTables()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi service dan controller
	reservationSvc := services.NewReservationService(db, loc, numTables)
	layoutSvc := services.NewTableLayoutService(db, loc, numTables)

	userCtrl := controllers.NewUserController(db)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	layoutCtrl := controllers.NewTableLayoutController(layoutSvc)
	waiterCtrl := controllers.NewWaiterController(db)
	sectionCtrl := controllers.NewSectionController(db)
	backupCtrl := controllers.NewBackupController(db, config.BackupDir())
	reportCtrl := controllers.NewReportController(db, loc)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Layar resepsionis boleh membaca tanpa login
	r.GET("/reservations", reservationCtrl.GetAllReservations)
	r.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	r.GET("/tables/layout", layoutCtrl.GetTableLayout)
	r.GET("/waiters", waiterCtrl.GetAllWaiters)
	r.GET("/sections", sectionCtrl.GetAllSections)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// RESERVATIONS (staff/admin)
	auth.POST("/reservations", reservationCtrl.CreateReservation)
	auth.PATCH("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
	auth.DELETE("/reservations/:reservation_id", reservationCtrl.CancelReservation)

	// WAITERS (staff/admin)
	auth.POST("/waiters", waiterCtrl.CreateWaiter)
	auth.PATCH("/waiters/:waiter_id", waiterCtrl.UpdateWaiter)
	auth.DELETE("/waiters/:waiter_id", waiterCtrl.DeleteWaiter)

	// SECTIONS (staff/admin)
	auth.POST("/sections", sectionCtrl.CreateSection)
	auth.PUT("/sections/:section_id/tables", sectionCtrl.AssignTables)
	auth.DELETE("/sections/:section_id", sectionCtrl.DeleteSection)

	// REPORTS (staff/admin)
	auth.GET("/reports", reportCtrl.GetReport)
	auth.GET("/reports/export-pdf", reportCtrl.ExportPDF)

	// BACKUPS (admin only)
	backups := auth.Group("/backups")
	backups.Use(middlewares.AdminOnly())
	{
		backups.POST("", backupCtrl.CreateBackup)
		backups.GET("", backupCtrl.ListBackups)
		backups.POST("/:backup_name/restore", backupCtrl.RestoreBackup)
	}

	// WebSocket endpoint untuk layar realtime
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("", realtime.Handler)
	}

	return r
}
