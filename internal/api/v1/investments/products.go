package investments

import (
	"errors"
	"familypoints-backend/internal/services"
	"familypoints-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func ListProducts(c *gin.Context) {
	products, err := services.ListFinancialProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch products"))
		return
	}

	items := make([]ProductItem, 0, len(products))
	for _, p := range products {
		items = append(items, ProductItem{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Emoji:        p.Emoji,
			InterestRate: p.InterestRate,
			DurationDays: p.DurationDays,
			Active:       p.Active,
		})
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", items))
}

func CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	product, err := services.CreateFinancialProduct(req.Name, req.Description, req.Emoji,
		*req.InterestRate, *req.DurationDays)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInterestRate):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Taux d'intérêt invalide (0-100%)"))
		case errors.Is(err, services.ErrInvalidDuration):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Durée invalide (minimum 1 jour)"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create product"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Product created", ProductItem{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Emoji:        product.Emoji,
		InterestRate: product.InterestRate,
		DurationDays: product.DurationDays,
		Active:       product.Active,
	}))
}

// DeleteProduct removes a product from the catalog. Running investments
// that reference it keep their snapshotted terms.
func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid product ID"))
		return
	}

	if err := services.DeleteFinancialProduct(uint(id)); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Produit financier introuvable"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete product"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Product deleted", nil))
}
