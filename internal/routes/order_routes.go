package routes

import (
	"freight_marketplace/internal/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(r *gin.Engine) {
	orders := r.Group("/orders")
	{
		orders.GET("", controllers.ListOrders)
		orders.POST("", controllers.CreateOrder)
		orders.POST("/estimate-miles", controllers.EstimateMiles)
		orders.GET("/:id", controllers.GetOrder)
		orders.PUT("/:id/stops", controllers.UpdateOrderStops)
	}
}
