package routes

import (
	"freight_marketplace/internal/controllers"

	"github.com/gin-gonic/gin"
)

func LaneRoutes(r *gin.Engine) {
	lanes := r.Group("/lanes")
	{
		lanes.GET("", controllers.GetLane)
	}
}
