package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studiobook/internal/domain"
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
	rg.GET("/settings", h.GetUserSettings)
	rg.PUT("/settings", h.UpdateUserSettings)

	admin := rg.Group("/")
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/system-config", h.GetSystemConfig)
		admin.PUT("/system-config", h.SaveSystemConfig)
	}
}

func (h *Handler) GetUserSettings(c *gin.Context) {
	userID := c.GetString("user_id")
	us, err := h.service.GetUserSettings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": us})
}

func (h *Handler) UpdateUserSettings(c *gin.Context) {
	var req UpdateUserSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	us, err := h.service.UpdateUserSettings(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid settings")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save settings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"settings": us})
}

func (h *Handler) GetSystemConfig(c *gin.Context) {
	cfg, err := h.service.GetSystemConfig(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load system config")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"config": cfg})
}

func (h *Handler) SaveSystemConfig(c *gin.Context) {
	var cfg domain.SystemConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SaveSystemConfig(c.Request.Context(), cfg); err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid configuration values")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save system config")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"config": cfg})
}
