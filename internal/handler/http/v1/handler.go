package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/attendance_system/internal/config"
	"github.com/shenikar/attendance_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	attendanceService service.AttendanceService
	geocodeService    service.GeocodeService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(attendanceService service.AttendanceService, geocodeService service.GeocodeService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		attendanceService: attendanceService,
		geocodeService:    geocodeService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// requestLog возвращает логгер с полями метода и идентификатора запроса
func (h *Handler) requestLog(c *gin.Context, method string) *logrus.Entry {
	return h.logger.
		WithField("method", method).
		WithField("request_id", c.GetString(requestIDKey))
}

// @Summary Submit a clock log
// @Description Record a clock in/out entry. The payload is stored as-is; any parsing or storage failure collapses to ok:false.
// @Tags Clock
// @Accept json
// @Produce json
// @Param log body SubmitClockLogRequest true "Clock log payload"
// @Success 200 {object} SubmitClockLogResponse
// @Failure 500 {object} SubmitClockLogResponse
// @Router /clock [post]
func (h *Handler) submitClock(c *gin.Context) {
	log := h.requestLog(c, "submitClock")

	var input SubmitClockLogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind clock log JSON")
		c.JSON(http.StatusInternalServerError, SubmitClockLogResponse{OK: false})
		return
	}

	model := DTOToClockLogModel(input)
	if err := h.attendanceService.SubmitLog(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to submit clock log in service")
		c.JSON(http.StatusInternalServerError, SubmitClockLogResponse{OK: false})
		return
	}

	c.JSON(http.StatusOK, SubmitClockLogResponse{OK: true})
}

// @Summary Get today's clock logs
// @Description Get the clock logs of a user for the current calendar day. Always responds with a (possibly empty) list.
// @Tags Clock
// @Accept json
// @Produce json
// @Param userId query string false "User ID"
// @Success 200 {object} TodayLogsResponse
// @Router /clock/today [get]
func (h *Handler) todayLogs(c *gin.Context) {
	log := h.requestLog(c, "todayLogs")
	userID := c.Query("userId")

	logs, err := h.attendanceService.GetTodayLogs(c.Request.Context(), userID)
	if err != nil {
		// Сбой хранилища наружу не выдается - отвечаем пустым списком
		log.WithError(err).Error("Failed to get today's logs from service, degrading to empty list")
		c.JSON(http.StatusOK, TodayLogsResponse{Logs: []*ClockLogResponse{}})
		return
	}

	c.JSON(http.StatusOK, TodayLogsResponse{Logs: ModelsToClockLogResponses(logs)})
}

// @Summary Reverse geocode coordinates
// @Description Resolve latitude/longitude into a display address. Missing parameters or any upstream failure yield an empty display_name with status 200.
// @Tags Geocode
// @Accept json
// @Produce json
// @Param lat query number false "Latitude"
// @Param lon query number false "Longitude"
// @Success 200 {object} ReverseGeocodeResponse
// @Router /reverse-geocode [get]
func (h *Handler) reverseGeocode(c *gin.Context) {
	log := h.requestLog(c, "reverseGeocode")

	var input ReverseGeocodeRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind reverse geocode query")
		c.JSON(http.StatusOK, ReverseGeocodeResponse{DisplayName: ""})
		return
	}

	// Отсутствующая или некорректная координата - сразу пустой адрес, без запроса к Nominatim
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Debug("Reverse geocode parameters missing or invalid")
		c.JSON(http.StatusOK, ReverseGeocodeResponse{DisplayName: ""})
		return
	}

	displayName, err := h.geocodeService.ReverseGeocode(c.Request.Context(), input.Lat, input.Lon)
	if err != nil {
		// Различие между "не найдено" и "недоступно" наружу не выдается
		log.WithError(err).Warn("Reverse geocode failed, degrading to empty display name")
		c.JSON(http.StatusOK, ReverseGeocodeResponse{DisplayName: ""})
		return
	}

	c.JSON(http.StatusOK, ReverseGeocodeResponse{DisplayName: displayName})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
