package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(RequestIDMiddleware())

	// Маршруты учета отметок
	clock := api.Group("/clock")
	{
		clock.POST("", h.submitClock)
		clock.GET("/today", h.todayLogs)
	}

	// Маршрут обратного геокодирования
	api.GET("/reverse-geocode", h.reverseGeocode)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
