package password

import (
	"errors"
	"familypoints-backend/internal/services"
	"familypoints-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type VerifyRequest struct {
	Password string `json:"password" binding:"required"`
}

type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Token string `json:"token,omitempty"`
}

type ChangeRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type StatusResponse struct {
	Configured bool `json:"configured"`
}

// GetStatus reports whether a custom password replaced the default. The
// secret itself is never returned; it is stored hashed. Debug builds only.
func GetStatus(c *gin.Context) {
	if gin.Mode() != gin.DebugMode {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Not found"))
		return
	}

	configured, err := services.AdminPasswordConfigured()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch password status"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", StatusResponse{Configured: configured}))
}

// Verify checks the shared admin secret and, when valid, issues a token
// usable against routes guarded by AdminAuth.
func Verify(c *gin.Context) {
	var req VerifyRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	valid, err := services.VerifyAdminPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to verify password"))
		return
	}

	response := VerifyResponse{Valid: valid}
	if valid {
		if token, err := utils.GenerateAdminToken(); err == nil {
			response.Token = token
		}
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", response))
}

func Change(c *gin.Context) {
	var req ChangeRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if err := services.ChangeAdminPassword(req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Le mot de passe doit contenir au moins 4 caractères"))
		case errors.Is(err, services.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Mot de passe actuel incorrect"))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to change password"))
		}
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Password changed", nil))
}

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/password")
	{
		group.GET("", GetStatus)
		group.POST("", Verify)
		group.PUT("", Change)
	}
}
