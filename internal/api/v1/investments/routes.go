package investments

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, adminGuard gin.HandlerFunc) {
	group := router.Group("/investments")
	{
		group.GET("", ListInvestments)
		group.POST("", CreateInvestment)
		group.PUT("", ReleaseInvestment)
	}

	products := router.Group("/financial-products")
	{
		products.GET("", ListProducts)
		products.POST("", adminGuard, CreateProduct)
		products.DELETE("", adminGuard, DeleteProduct)
	}
}
