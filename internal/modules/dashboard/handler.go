package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studiobook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
}

// Dashboard dispatches on the authenticated role.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		data any
		err  error
	)
	switch c.GetString("role") {
	case "ADMIN":
		data, err = h.service.ForAdmin(ctx)
	case "STAFF":
		data, err = h.service.ForStaff(ctx)
	default:
		data, err = h.service.ForClient(ctx, c.GetString("user_id"))
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dashboard": data})
}
