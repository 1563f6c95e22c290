package investments

import (
	"errors"
	"familypoints-backend/internal/services"
	"familypoints-backend/internal/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ListInvestments godoc
// @Summary List active investments with accrued interest
// @Tags investments
// @Produce json
// @Success 200 {object} utils.Response{data=[]InvestmentItem}
// @Router /investments [get]
func ListInvestments(c *gin.Context) {
	views, err := services.ListActiveInvestments(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch investments"))
		return
	}

	items := make([]InvestmentItem, 0, len(views))
	for _, v := range views {
		items = append(items, InvestmentItem{
			ID:             v.Investment.ID,
			ProductID:      v.Investment.ProductID,
			ProductName:    v.Investment.ProductName,
			ProductEmoji:   v.Investment.ProductEmoji,
			InitialAmount:  v.Investment.InitialAmount,
			CurrentAmount:  v.CurrentAmount,
			InterestEarned: v.InterestEarned,
			StartDate:      v.Investment.StartDate,
			MaturityDate:   v.Investment.MaturityDate,
			DaysElapsed:    v.DaysElapsed,
			TotalDays:      v.TotalDays,
			Progress:       v.Progress,
		})
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", items))
}

// CreateInvestment locks bank money into a product. The balance check is
// the only place the system refuses to let the bank go negative.
func CreateInvestment(c *gin.Context) {
	var req CreateInvestmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	investment, newBalance, err := services.CreateInvestment(req.ProductID, *req.Amount, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Produit financier introuvable"))
		case errors.Is(err, services.ErrProductInactive):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Ce produit financier n'est plus disponible"))
		case errors.Is(err, services.ErrInvalidInvestmentAmount):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Montant invalide"))
		case errors.Is(err, services.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Solde insuffisant"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create investment"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Investment created", CreateInvestmentResponse{
		ID:           investment.ID,
		ProductName:  investment.ProductName,
		Amount:       investment.Amount,
		MaturityDate: investment.MaturityDate,
		NewBalance:   newBalance,
	}))
}

// ReleaseInvestment credits the accrued value back to the bank and closes
// the position. Releasing twice fails.
func ReleaseInvestment(c *gin.Context) {
	var req ReleaseRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	finalAmount, interestEarned, newBalance, err := services.ReleaseInvestment(req.InvestmentID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvestmentNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Investissement introuvable"))
		case errors.Is(err, services.ErrAlreadyReleased):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Cet investissement a déjà été libéré"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to release investment"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Investment released", ReleaseResponse{
		FinalAmount:    finalAmount,
		InterestEarned: interestEarned,
		NewBalance:     newBalance,
	}))
}
