package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/dto"
	"github.com/gin-gonic/gin"
)

type userHandler struct {
	authService portssvc.AuthSvcFacade
}

func registerUserRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := &userHandler{authService: authService}
	rg.GET("/inventors", h.listInventors)
}

// listInventors godoc
// @Summary List inventors
// @Description Lists the inventor accounts patronages can be addressed to
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /inventors [get]
func (h *userHandler) listInventors(c *gin.Context) {
	users, err := h.authService.ListInventors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list inventors")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}
