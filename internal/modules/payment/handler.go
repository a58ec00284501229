package payment

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
	rg.POST("/payments", h.ProcessPayment)
	rg.GET("/payments/my", h.MyPayments)

	staff := rg.Group("/")
	staff.Use(middleware.StaffOrAdmin())
	{
		staff.GET("/payments", h.ListPayments)
	}
}

func (h *Handler) ProcessPayment(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.ClientID = c.GetString("user_id")

	p, err := h.service.ProcessPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment request")
		case errors.Is(err, ErrInvalidCard):
			response.Error(c, http.StatusBadRequest, "INVALID_CARD", "Card details are invalid")
		case errors.Is(err, ErrMethodNotAccepted):
			response.Error(c, http.StatusConflict, "METHOD_NOT_ACCEPTED", "Payment method is not accepted")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process payment")
		}
		return
	}

	// A FAILED settlement is still a successful API call; callers branch on
	// the record's status.
	response.Success(c, http.StatusOK, gin.H{"payment": p})
}

func (h *Handler) MyPayments(c *gin.Context) {
	list, err := h.service.GetPaymentsByClient(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": list})
}

func (h *Handler) ListPayments(c *gin.Context) {
	list, err := h.service.GetAllPayments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": list})
}
