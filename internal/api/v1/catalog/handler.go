package catalog

import (
	"errors"
	"familypoints-backend/internal/models"
	"familypoints-backend/internal/services"
	"familypoints-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Conversions and tasks share the same shape; the handlers are closures
// over the catalog kind. Tasks are stored with pointsRequired pre-negated.

func listItems(kind models.CatalogKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := services.ListCatalogItems(kind)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch catalog"))
			return
		}

		response := make([]CatalogItemResponse, 0, len(items))
		for _, item := range items {
			response = append(response, toResponse(item))
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", response))
	}
}

func createItem(kind models.CatalogKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateItemRequest
		if !utils.BindAndValidate(c, &req) {
			return
		}

		item, err := services.CreateCatalogItem(kind, req.Name, req.Description,
			req.PointsRequired, req.Emoji, models.CatalogCategory(req.Category), req.Amount)
		if err != nil {
			if errors.Is(err, services.ErrInvalidPointAmount) {
				c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create catalog item"))
			return
		}

		c.JSON(http.StatusCreated, utils.NewSuccessResponse("Catalog item created", toResponse(*item)))
	}
}

func deleteItem(kind models.CatalogKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Query("id"))
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid item ID"))
			return
		}

		if err := services.DeleteCatalogItem(kind, uint(id)); err != nil {
			if errors.Is(err, services.ErrCatalogItemNotFound) {
				c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Catalog item not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete catalog item"))
			return
		}

		c.JSON(http.StatusOK, utils.NewSuccessResponse("Catalog item deleted", nil))
	}
}

func toResponse(item models.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:             item.ID,
		Name:           item.Name,
		Description:    item.Description,
		PointsRequired: item.PointsRequired,
		Emoji:          item.Emoji,
		Category:       string(item.Category),
		Amount:         item.Amount,
	}
}
