package routes

import (
	"os"

	authController "agency-backend/controllers/auth"
	bookingController "agency-backend/controllers/booking"
	contentController "agency-backend/controllers/content"
	"agency-backend/httpServices/scheduler"
	"agency-backend/logger"
	"agency-backend/middleware"
	bookingService "agency-backend/services/booking"
	"agency-backend/services/notification"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	schedulerClient := scheduler.NewClient(
		os.Getenv("SCHEDULER_BASE_URL"),
		os.Getenv("SCHEDULER_API_KEY"),
	)
	mailer := notification.NewMailer()
	store := bookingService.NewGormStore(db)
	bookings := bookingService.NewService(store, schedulerClient, mailer)

	asyncLogger := logger.NewAsyncLogger(db)
	bookingCtrl := bookingController.NewBookingController(bookings)
	authCtrl := authController.NewAuthController()
	blogCtrl := contentController.NewBlogController(db)
	caseStudyCtrl := contentController.NewCaseStudyController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api", middleware.RequestLogger(asyncLogger))
	api.Post("/auth/login", authCtrl.Login)

	/*=============================================================================
	| Booking Routes (token is the credential, no login required)
	===============================================================================*/
	bookingGroup := api.Group("/bookings")
	bookingGroup.Post("/", bookingCtrl.Store)
	bookingGroup.Get("/verify-token", bookingCtrl.VerifyToken)
	bookingGroup.Post("/cancel", bookingCtrl.Cancel)
	bookingGroup.Post("/reschedule", bookingCtrl.Reschedule)

	/*=============================================================================
	| Public Content Routes
	===============================================================================*/
	api.Get("/blogs", blogCtrl.Index)
	api.Get("/blogs/:slug", blogCtrl.Show)
	api.Get("/case-studies", caseStudyCtrl.Index)
	api.Get("/case-studies/:slug", caseStudyCtrl.Show)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	admin := api.Group("/admin").Use(middleware.RequireAdmin())
	admin.Get("/bookings", bookingCtrl.Index)

	admin.Post("/blogs", blogCtrl.Store)
	admin.Put("/blogs/:id", blogCtrl.Update)
	admin.Delete("/blogs/:id", blogCtrl.Destroy)

	admin.Post("/case-studies", caseStudyCtrl.Store)
	admin.Put("/case-studies/:id", caseStudyCtrl.Update)
	admin.Delete("/case-studies/:id", caseStudyCtrl.Destroy)
}
