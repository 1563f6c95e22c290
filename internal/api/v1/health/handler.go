package health

import (
	"errors"
	"familypoints-backend/internal/services"
	"familypoints-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Connected bool           `json:"connected"`
	Tables    TablesResponse `json:"tables"`
	Message   string         `json:"message"`
}

type TablesResponse struct {
	Existing   []string `json:"existing"`
	Missing    []string `json:"missing"`
	AllPresent bool     `json:"allPresent"`
}

// Check probes the database connection and schema so the frontend can tell
// "not provisioned yet" apart from a real failure.
func Check(c *gin.Context) {
	report, err := services.CheckHealth()
	if err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse(http.StatusServiceUnavailable,
				"Impossible de se connecter à la base de données"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Health check failed"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(report.Message, HealthResponse{
		Connected: report.Connected,
		Tables: TablesResponse{
			Existing:   report.ExistingTables,
			Missing:    report.MissingTables,
			AllPresent: report.AllPresent,
		},
		Message: report.Message,
	}))
}

func RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", Check)
}
