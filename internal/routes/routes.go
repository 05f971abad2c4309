package routes

import (
	"hospital-app-server/internal/cache"
	"hospital-app-server/internal/config"
	"hospital-app-server/internal/handlers"
	"hospital-app-server/internal/middleware"
	"hospital-app-server/internal/models"
	"hospital-app-server/internal/scheduling"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, statsCache *cache.StatsCache) {
	// Build the scheduling engine over the database-backed collaborators
	schedulingService := scheduling.NewService(
		scheduling.NewGormAppointmentStore(db),
		scheduling.NewGormStaffDirectory(db),
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(schedulingService, statsCache)
	messageHandler := handlers.NewMessageHandler(db)

	auth := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.RoleAuthMiddleware(models.RoleAdmin)
	patientOnly := middleware.RoleAuthMiddleware(models.RolePatient)

	api := router.Group("/api/v1")

	userRoutes := api.Group("/user")
	{
		userRoutes.POST("/patient/register", authHandler.PatientRegister)
		userRoutes.POST("/login", authHandler.Login)
		userRoutes.GET("/doctors", userHandler.GetAllDoctors)

		userRoutes.POST("/admin/addnew", auth, adminOnly, userHandler.AddNewAdmin)
		userRoutes.POST("/doctor/addnew", auth, adminOnly, userHandler.AddNewDoctor)
		userRoutes.GET("/admin/me", auth, adminOnly, authHandler.GetProfile)
		userRoutes.GET("/patient/me", auth, patientOnly, authHandler.GetProfile)
		userRoutes.GET("/admin/logout", auth, adminOnly, authHandler.AdminLogout)
		userRoutes.GET("/patient/logout", auth, patientOnly, authHandler.PatientLogout)
	}

	appointmentRoutes := api.Group("/appointment")
	{
		appointmentRoutes.POST("/post", auth, patientOnly, appointmentHandler.PostAppointment)
		appointmentRoutes.GET("/getall", auth, adminOnly, appointmentHandler.GetAllAppointments)
		appointmentRoutes.GET("/patient-appointments", auth, patientOnly, appointmentHandler.GetPatientAppointments)
		appointmentRoutes.GET("/dashboard-stats", auth, adminOnly, appointmentHandler.GetDashboardStats)
		appointmentRoutes.PUT("/update/:id", auth, adminOnly, appointmentHandler.UpdateAppointment)
		appointmentRoutes.DELETE("/delete/:id", auth, adminOnly, appointmentHandler.DeleteAppointment)
	}

	messageRoutes := api.Group("/message")
	{
		messageRoutes.POST("/send", messageHandler.SendMessage)
		messageRoutes.GET("/getall", auth, adminOnly, messageHandler.GetAllMessages)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
