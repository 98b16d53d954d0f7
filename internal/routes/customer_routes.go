package routes

import (
	"freight_marketplace/internal/controllers"

	"github.com/gin-gonic/gin"
)

func CustomerRoutes(r *gin.Engine) {
	customers := r.Group("/customers")
	{
		customers.GET("", controllers.SearchCustomers)
	}
}
