package bank

import (
	"errors"
	"familypoints-backend/internal/services"
	"familypoints-backend/internal/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func GetBalance(c *gin.Context) {
	balance, err := services.GetBalance()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch balance"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", BalanceResponse{Balance: balance}))
}

// SetBalance overwrites the balance; a history row is only written when
// the caller asks for one and the balance actually changed.
func SetBalance(c *gin.Context) {
	var req SetBalanceRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	balance, err := services.SetBalance(*req.Balance, req.CreateTransaction, req.Reason)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to set balance"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Balance updated", BalanceResponse{Balance: balance}))
}

// Credit adds money to the account, always recording a credit row. Used by
// point conversions.
func Credit(c *gin.Context) {
	var req CreditRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	balance, err := services.CreditBank(*req.Amount, req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrInvalidBankAmount) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Montant invalide"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to credit account"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Account credited", BalanceResponse{Balance: balance}))
}

func ListTransactions(c *gin.Context) {
	transactions, err := services.ListBankTransactions()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transactions"))
		return
	}

	items := make([]BankTransactionItem, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, BankTransactionItem{
			ID:        t.ID,
			Type:      string(t.Type),
			Amount:    t.Amount,
			Reason:    t.Reason,
			Timestamp: t.Timestamp,
		})
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", items))
}

func DeleteTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid transaction ID"))
		return
	}

	if err := services.DeleteBankTransaction(uint(id)); err != nil {
		if errors.Is(err, services.ErrBankTransactionNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Bank transaction not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete transaction"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transaction deleted", nil))
}
