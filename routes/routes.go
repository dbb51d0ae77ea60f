package routes

import (
	"barberpro-backend/config"
	"barberpro-backend/controllers"
	"barberpro-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(app *services.App) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	serviceController := controllers.ServiceController{Catalog: app.Catalog}
	professionalController := controllers.ProfessionalController{Professionals: app.Professionals}
	subscriptionController := controllers.SubscriptionController{Subscriptions: app.Subscriptions}
	appointmentController := controllers.AppointmentController{Bookings: app.Bookings}
	dashboardController := controllers.DashboardController{Bookings: app.Bookings}

	api := r.Group("/api")
	{
		// Catalog routes
		catalog := api.Group("/services")
		{
			catalog.POST("", serviceController.CreateService)
			catalog.GET("", serviceController.GetServices)
			catalog.PUT("/:id", serviceController.UpdateService)
			catalog.DELETE("/:id", serviceController.DeleteService)
		}

		// Professional routes
		professionals := api.Group("/professionals")
		{
			professionals.POST("", professionalController.CreateProfessional)
			professionals.GET("", professionalController.GetProfessionals)
			professionals.DELETE("/:id", professionalController.DeleteProfessional)
			professionals.POST("/:id/edit", professionalController.BeginEdit)
			professionals.DELETE("/:id/edit", professionalController.CancelEdit)
			professionals.PUT("/:id/settings", professionalController.SaveSettings)
			professionals.GET("/:id/services", professionalController.GetOfferedServices)
		}

		// Subscription routes
		api.GET("/plans", subscriptionController.GetPlans)
		api.POST("/subscription", subscriptionController.SelectPlan)
		api.GET("/subscription", subscriptionController.GetSubscription)

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.PUT("/:id/confirm", appointmentController.ConfirmAppointment)
			appointments.PUT("/:id/cancel", appointmentController.CancelAppointment)
		}
		api.GET("/availability", appointmentController.GetAvailability)

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
