package points

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, adminGuard gin.HandlerFunc) {
	group := router.Group("/points")
	{
		group.GET("", GetPoints)
		group.POST("", adminGuard, MutatePoints)
		group.PUT("", adminGuard, SetPoints)
		group.DELETE("", adminGuard, DeleteTransaction)
	}
}
