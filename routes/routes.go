package routes

import (
	"os"
	"strings"

	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	{
		// Public browsing
		salons := api.Group("/salons")
		{
			salons.GET("", controllers.ListSalons)
			salons.GET("/:id", controllers.GetSalon)
			salons.GET("/:id/availability", controllers.GetAvailability)
		}

		authed := api.Group("")
		authed.Use(utils.AuthMiddleware())
		{
			// Client routes
			client := authed.Group("", utils.RequireRole(models.RoleClient))
			{
				client.POST("/bookings", controllers.CreateBooking)
				client.GET("/bookings", controllers.GetMyBookings)
				client.PUT("/bookings/:id/cancel", controllers.CancelBooking)
			}

			// Provider routes
			provider := authed.Group("", utils.RequireRole(models.RoleProvider))
			{
				provider.POST("/salon", controllers.CreateSalon)
				provider.GET("/salon", controllers.GetMySalon)
				provider.PUT("/salon", controllers.UpdateMySalon)

				provider.GET("/salon/working-hours", controllers.GetWorkingHours)
				provider.PUT("/salon/working-hours", controllers.UpdateWorkingHours)

				services := provider.Group("/services")
				{
					services.POST("", controllers.CreateService)
					services.GET("", controllers.GetServices)
					services.GET("/:id", controllers.GetService)
					services.PUT("/:id", controllers.UpdateService)
					services.DELETE("/:id", controllers.DeleteService)
				}

				provider.GET("/salon/bookings", controllers.GetSalonBookings)
				provider.PUT("/bookings/:id/status", controllers.UpdateBookingStatus)

				provider.GET("/dashboard", controllers.GetDashboardOverview)
			}
		}
	}

	return r
}
