package bank

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, adminGuard gin.HandlerFunc) {
	group := router.Group("/bank")
	{
		group.GET("", GetBalance)
		group.PUT("", adminGuard, SetBalance)
		group.POST("", Credit)
		group.GET("/transactions", ListTransactions)
		group.DELETE("/transactions", adminGuard, DeleteTransaction)
	}
}
