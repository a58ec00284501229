package analytics

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studiobook/internal/middleware"
	"studiobook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	staff := rg.Group("/")
	staff.Use(middleware.StaffOrAdmin())
	{
		staff.GET("/reports/:kind", h.Report)
	}

	admin := rg.Group("/")
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/analytics/summary", h.Summary)
	}
}

func (h *Handler) Summary(c *gin.Context) {
	sum, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build analytics summary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summary": sum})
}

func (h *Handler) Report(c *gin.Context) {
	rng := DateRange(c.DefaultQuery("range", string(RangeMonth)))

	var (
		report any
		err    error
	)
	ctx := c.Request.Context()
	switch ReportKind(c.Param("kind")) {
	case ReportBookings:
		report, err = h.service.BookingAnalytics(ctx, rng)
	case ReportRevenue:
		report, err = h.service.RevenueReport(ctx, rng)
	case ReportEquipment:
		report, err = h.service.EquipmentUsage(ctx, rng)
	case ReportClients:
		report, err = h.service.ClientActivity(ctx, rng)
	case ReportStaff:
		report, err = h.service.StaffPerformance(ctx, rng)
	default:
		err = ErrUnknownReport
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownReport):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown report kind")
		case errors.Is(err, ErrUnknownRange):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown date range")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"report": report})
}
