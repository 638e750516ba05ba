package appointments

import (
	"github.com/gin-gonic/gin"
)

func SetupAppointmentRoutes(rg *gin.RouterGroup, controller *Controller) {

	appointments := rg.Group("/appointments")
	{
		appointments.GET("/services", controller.GetServices) // GET /api/v1/appointments/services

		sessions := appointments.Group("/sessions")
		{
			sessions.POST("", controller.StartSession) // POST /api/v1/appointments/sessions
			sessions.GET("/:id", controller.GetSession)
			sessions.GET("/:id/slots", controller.GetSlots) // ?date=2026-08-31

			sessions.PUT("/:id/service", controller.SelectService)
			sessions.PUT("/:id/datetime", controller.SelectDateTime)

			sessions.POST("/:id/next", controller.Next)
			sessions.POST("/:id/back", controller.Back)
			sessions.POST("/:id/submit", controller.Submit)
			sessions.POST("/:id/reset", controller.Reset)

			sessions.GET("/:id/notifications", controller.GetNotifications)
		}
	}
}
