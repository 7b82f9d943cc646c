package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/enrollment-api/internal/service"
	"github.com/opencampus/enrollment-api/pkg/response"
)

// AdminHandler exposes administrative collection maintenance endpoints.
type AdminHandler struct {
	admin *service.AdminService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Collections godoc
// @Summary List resettable collections
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/collections [get]
func (h *AdminHandler) Collections(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.admin.Kinds())
}

// Reset godoc
// @Summary Reset a collection back to its seed data
// @Tags Admin
// @Produce json
// @Param kind path string true "Collection kind" Enums(students, courses, departments)
// @Success 200 {object} response.Envelope
// @Router /admin/collections/{kind}/reset [post]
func (h *AdminHandler) Reset(c *gin.Context) {
	kind := c.Param("kind")
	if err := h.admin.ResetCollection(c.Request.Context(), kind); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"reset": kind})
}
