package exchange

import (
	"errors"
	"familypoints-backend/internal/models"
	"familypoints-backend/internal/services"
	"familypoints-backend/internal/utils"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Exchange godoc
// @Summary Spend points on a conversion
// @Tags exchange
// @Accept json
// @Produce json
// @Param request body ExchangeRequest true "Conversion to redeem"
// @Success 200 {object} utils.Response{data=ExchangeResponse}
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /exchange [post]
func Exchange(c *gin.Context) {
	var req ExchangeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	result, err := services.Exchange(req.ConversionID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrConversionNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Conversion introuvable"))
		case errors.Is(err, services.ErrInsufficientPoints):
			c.JSON(http.StatusBadRequest, utils.NewResponse(http.StatusBadRequest, "Points insuffisants", InsufficientPointsData{
				Required: result.Required,
				Current:  result.Current,
			}))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to exchange"))
		}
		return
	}

	message := fmt.Sprintf("%s échangé avec succès !", result.Item.Name)
	if result.Item.Category == models.CategoryMoney {
		message = fmt.Sprintf("%s ajouté à ton compte banque !", result.Item.Name)
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(message, ExchangeResponse{
		TotalPoints:    result.TotalPoints,
		BankCredited:   result.BankCredited,
		CreditedAmount: result.CreditedAmount,
	}))
}
