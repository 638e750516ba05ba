package bookings

import (
	"github.com/gin-gonic/gin"
)

func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {

	bus := rg.Group("/bus")
	{
		bus.POST("/search", controller.Search) // POST /api/v1/bus/search

		sessions := bus.Group("/sessions")
		{
			sessions.GET("/:id", controller.GetSession)
			sessions.GET("/:id/results", controller.GetResults) // ?min_price=&max_price=&departure=&type=

			sessions.POST("/:id/bus", controller.SelectBus)
			sessions.GET("/:id/seats", controller.GetSeats)
			sessions.POST("/:id/seats/toggle", controller.ToggleSeat)

			sessions.POST("/:id/checkout", controller.Checkout)
			sessions.GET("/:id/ticket", controller.GetTicket)

			sessions.GET("/:id/notifications", controller.GetNotifications)
		}

		bus.GET("/bookings/:reference", controller.GetBookingByReference)
	}
}
