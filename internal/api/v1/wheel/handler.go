package wheel

import (
	"errors"
	"familypoints-backend/internal/services"
	"familypoints-backend/internal/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type StatusResponse struct {
	CanUse           bool       `json:"canUse"`
	LastUsed         *time.Time `json:"lastUsed"`
	DaysSinceLastUse int        `json:"daysSinceLastUse"`
	DaysUntilNextUse int        `json:"daysUntilNextUse"`
}

type SpinResponse struct {
	Outcome     int    `json:"outcome"`
	TotalPoints int    `json:"totalPoints"`
	Message     string `json:"message"`
}

type CooldownData struct {
	DaysUntilNextUse int `json:"daysUntilNextUse"`
}

func GetStatus(c *gin.Context) {
	status, err := services.GetWheelStatus(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch wheel status"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", StatusResponse{
		CanUse:           status.CanUse,
		LastUsed:         status.LastUsed,
		DaysSinceLastUse: status.DaysSinceLastUse,
		DaysUntilNextUse: status.DaysUntilNextUse,
	}))
}

// Spin draws the weekly outcome and applies it to the points ledger.
func Spin(c *gin.Context) {
	result, err := services.SpinWheel(time.Now())
	if err != nil {
		if errors.Is(err, services.ErrWheelCooldown) {
			c.JSON(http.StatusBadRequest, utils.NewResponse(http.StatusBadRequest,
				"La roue ne peut être utilisée qu'une fois par semaine",
				CooldownData{DaysUntilNextUse: result.DaysUntilNextUse}))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to spin the wheel"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(result.Message, SpinResponse{
		Outcome:     result.Outcome,
		TotalPoints: result.TotalPoints,
		Message:     result.Message,
	}))
}

// Reset clears the cooldown, an admin override.
func Reset(c *gin.Context) {
	if err := services.ResetWheel(); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to reset the wheel"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Roue de la chance réinitialisée", nil))
}

func RegisterRoutes(router *gin.RouterGroup, adminGuard gin.HandlerFunc) {
	group := router.Group("/wheel-of-fortune")
	{
		group.GET("", GetStatus)
		group.POST("", Spin)
		group.DELETE("", adminGuard, Reset)
	}
}
