package catalog

import (
	"familypoints-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, adminGuard gin.HandlerFunc) {
	conversions := router.Group("/conversions")
	{
		conversions.GET("", listItems(models.CatalogKindConversion))
		conversions.POST("", adminGuard, createItem(models.CatalogKindConversion))
		conversions.DELETE("", adminGuard, deleteItem(models.CatalogKindConversion))
	}

	tasks := router.Group("/tasks")
	{
		tasks.GET("", listItems(models.CatalogKindTask))
		tasks.POST("", adminGuard, createItem(models.CatalogKindTask))
		tasks.DELETE("", adminGuard, deleteItem(models.CatalogKindTask))
	}
}
