package bonus

import (
	"familypoints-backend/internal/services"
	"familypoints-backend/internal/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type DailyBonusResponse struct {
	AlreadyChecked bool   `json:"alreadyChecked,omitempty"`
	BonusAwarded   bool   `json:"bonusAwarded"`
	Amount         int    `json:"amount,omitempty"`
	Days           int    `json:"days,omitempty"`
	Message        string `json:"message"`
}

// CheckDailyBonus runs the lazy backfill: one bonus point per past day
// without any point transaction, granted in a single summed transaction.
func CheckDailyBonus(c *gin.Context) {
	result, err := services.CheckDailyBonus(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to check daily bonus"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", DailyBonusResponse{
		AlreadyChecked: result.AlreadyChecked,
		BonusAwarded:   result.BonusAwarded,
		Amount:         result.Amount,
		Days:           result.Days,
		Message:        result.Message,
	}))
}

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/daily-bonus", CheckDailyBonus)
}
