package points

import (
	"errors"
	"familypoints-backend/internal/models"
	"familypoints-backend/internal/services"
	"familypoints-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPoints godoc
// @Summary Get the points total and full history
// @Tags points
// @Produce json
// @Success 200 {object} utils.Response{data=PointsResponse}
// @Router /points [get]
func GetPoints(c *gin.Context) {
	summary, err := services.GetPoints()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch points"))
		return
	}

	items := make([]TransactionItem, 0, len(summary.Transactions))
	for _, t := range summary.Transactions {
		items = append(items, TransactionItem{
			ID:        t.ID,
			Type:      string(t.Type),
			Amount:    t.Amount,
			Reason:    t.Reason,
			Timestamp: t.Timestamp,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", PointsResponse{
		TotalPoints:  summary.TotalPoints,
		Transactions: items,
	}))
}

// MutatePoints godoc
// @Summary Add or remove points
// @Tags points
// @Accept json
// @Produce json
// @Param request body MutatePointsRequest true "Mutation"
// @Success 200 {object} utils.Response{data=TotalResponse}
// @Failure 400 {object} utils.Response
// @Router /points [post]
func MutatePoints(c *gin.Context) {
	var req MutatePointsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var total int
	var err error
	if req.Type == string(models.PointTransactionAdd) {
		total, err = services.AddPoints(req.Amount, req.Reason)
	} else {
		total, err = services.RemovePoints(req.Amount, req.Reason)
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidPointAmount) || errors.Is(err, services.ErrMissingReason) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update points"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Points updated", TotalResponse{TotalPoints: total}))
}

// SetPoints overwrites the total without recording history, for manual
// admin corrections.
func SetPoints(c *gin.Context) {
	var req SetPointsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := services.SetPoints(*req.TotalPoints); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to set points"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Points overwritten", TotalResponse{TotalPoints: *req.TotalPoints}))
}

// DeleteTransaction removes a single history row; the total is untouched.
func DeleteTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction ID"))
		return
	}

	if err := services.DeleteTransaction(uint(id)); err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Transaction not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete transaction"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction deleted", nil))
}
