package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/attendance_system/internal/config"
	"github.com/shenikar/attendance_system/internal/models"
	"github.com/shenikar/attendance_system/internal/repository"
	"github.com/shenikar/attendance_system/internal/service"
	"github.com/shenikar/attendance_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockAttendanceService, *mocks.MockGeocodeService, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	attendanceMock := mocks.NewMockAttendanceService(ctrl)
	geocodeMock := mocks.NewMockGeocodeService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		Location: time.UTC,
	}

	handler := NewHandler(attendanceMock, geocodeMock, logger, cfg)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/"))
	return attendanceMock, geocodeMock, router
}

func performRequest(router *gin.Engine, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitClock_Success(t *testing.T) {
	// Подготовка
	attendanceMock, _, router := newTestHandler(t)
	payload := []byte(`{"id":"1700000000000","userId":"u1","check_type":"in","check_time":"2024-01-01T09:00:00Z","latitude":22.3,"longitude":114.1}`)

	// Ожидания: полезная нагрузка доходит до сервиса как есть
	attendanceMock.EXPECT().
		SubmitLog(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, log *models.ClockLog) {
			assert.Equal(t, "u1", log.UserID)
			assert.Equal(t, models.CheckIn, log.CheckType)
			require.NotNil(t, log.Latitude)
			assert.InDelta(t, 22.3, *log.Latitude, 0.0001)
		}).
		Return(nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodPost, "/clock", payload)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp SubmitClockLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
}

func TestSubmitClock_MalformedBody(t *testing.T) {
	// Подготовка: сервис не должен вызываться
	_, _, router := newTestHandler(t)

	// Действие
	w := performRequest(router, http.MethodPost, "/clock", []byte("{not json"))

	// Проверки: разбор схлопывается в общий отказ
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp SubmitClockLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
}

func TestSubmitClock_ServiceError(t *testing.T) {
	// Подготовка
	attendanceMock, _, router := newTestHandler(t)
	payload := []byte(`{"id":"1","userId":"u1","check_type":"out","check_time":"2024-01-01T18:00:00Z"}`)

	// Ожидания
	attendanceMock.EXPECT().
		SubmitLog(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("хранилище недоступно")).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodPost, "/clock", payload)

	// Проверки
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp SubmitClockLogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
}

func TestTodayLogs_Success(t *testing.T) {
	// Подготовка
	attendanceMock, _, router := newTestHandler(t)
	expected := []*models.ClockLog{
		{ID: "1", UserID: "u1", CheckType: models.CheckIn, CheckTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
	}

	// Ожидания
	attendanceMock.EXPECT().
		GetTodayLogs(gomock.Any(), "u1").
		Return(expected, nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/clock/today?userId=u1", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp TodayLogsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Logs, 1)
	assert.Equal(t, "1", resp.Logs[0].ID)
	assert.Equal(t, "in", resp.Logs[0].CheckType)
}

func TestTodayLogs_MissingUserID(t *testing.T) {
	// Подготовка: пустой userId уходит в сервис и дает пустой список
	attendanceMock, _, router := newTestHandler(t)

	// Ожидания
	attendanceMock.EXPECT().
		GetTodayLogs(gomock.Any(), "").
		Return([]*models.ClockLog{}, nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/clock/today", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp TodayLogsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Logs)
}

func TestTodayLogs_ServiceError(t *testing.T) {
	// Подготовка: сбой сервиса наружу не выдается
	attendanceMock, _, router := newTestHandler(t)

	// Ожидания
	attendanceMock.EXPECT().
		GetTodayLogs(gomock.Any(), "u1").
		Return(nil, fmt.Errorf("файл поврежден")).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/clock/today?userId=u1", nil)

	// Проверки: статус 200 и пустой список
	require.Equal(t, http.StatusOK, w.Code)
	var resp TodayLogsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Logs)
}

func TestReverseGeocode_Success(t *testing.T) {
	// Подготовка
	_, geocodeMock, router := newTestHandler(t)

	// Ожидания
	geocodeMock.EXPECT().
		ReverseGeocode(gomock.Any(), "22.3", "114.1").
		Return("1 Queen's Road, Central, Hong Kong", nil).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/reverse-geocode?lat=22.3&lon=114.1", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp ReverseGeocodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1 Queen's Road, Central, Hong Kong", resp.DisplayName)
}

func TestReverseGeocode_MissingParam(t *testing.T) {
	// Подготовка: без lon запрос к апстриму не уходит
	_, geocodeMock, router := newTestHandler(t)
	geocodeMock.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := performRequest(router, http.MethodGet, "/reverse-geocode?lat=22.3", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp ReverseGeocodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.DisplayName)
}

func TestReverseGeocode_InvalidCoordinates(t *testing.T) {
	// Подготовка: нечисловая широта эквивалентна отсутствующей
	_, geocodeMock, router := newTestHandler(t)
	geocodeMock.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := performRequest(router, http.MethodGet, "/reverse-geocode?lat=abc&lon=114.1", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp ReverseGeocodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.DisplayName)
}

func TestReverseGeocode_ServiceError(t *testing.T) {
	// Подготовка: сбой апстрима дает пустой адрес со статусом 200
	_, geocodeMock, router := newTestHandler(t)

	// Ожидания
	geocodeMock.EXPECT().
		ReverseGeocode(gomock.Any(), "22.3", "114.1").
		Return("", fmt.Errorf("upstream status 503")).
		Times(1)

	// Действие
	w := performRequest(router, http.MethodGet, "/reverse-geocode?lat=22.3&lon=114.1", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	var resp ReverseGeocodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.DisplayName)
}

func TestHealthCheck(t *testing.T) {
	// Подготовка
	_, _, router := newTestHandler(t)

	// Действие
	w := performRequest(router, http.MethodGet, "/system/health", nil)

	// Проверки
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

// newEndToEndRouter собирает роутер поверх настоящего сервиса и файлового хранилища
func newEndToEndRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	geocodeMock := mocks.NewMockGeocodeService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		Location: time.UTC,
	}

	store := repository.NewFileClockLogStore(filepath.Join(t.TempDir(), "history.json"), logger)
	attendanceService := service.NewAttendanceService(store, logger, cfg)
	handler := NewHandler(attendanceService, geocodeMock, logger, cfg)

	router := gin.New()
	handler.RegisterRoutes(router.Group("/"))
	return router
}

func submitLogPayload(t *testing.T, id, userID string, checkType models.CheckType, checkTime time.Time) []byte {
	payload, err := json.Marshal(map[string]any{
		"id":         id,
		"userId":     userID,
		"check_type": string(checkType),
		"check_time": checkTime.Format(time.RFC3339Nano),
		"latitude":   22.3,
		"longitude":  114.1,
	})
	require.NoError(t, err)
	return payload
}

func TestClockFlow_EndToEnd(t *testing.T) {
	// Подготовка
	router := newEndToEndRouter(t)
	now := time.Now().UTC()

	// Действие: отправляем отметку и тут же запрашиваем сегодняшний список
	w := performRequest(router, http.MethodPost, "/clock", submitLogPayload(t, "1", "u1", models.CheckIn, now))
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/clock/today?userId=u1", nil)

	// Проверки: отправленная отметка попадает в сегодняшнюю выборку
	require.Equal(t, http.StatusOK, w.Code)
	var resp TodayLogsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Logs, 1)
	assert.Equal(t, "in", resp.Logs[0].CheckType)
	assert.Equal(t, "u1", resp.Logs[0].UserID)
}

func TestClockFlow_EndToEnd_OtherDatesExcluded(t *testing.T) {
	// Подготовка
	router := newEndToEndRouter(t)
	now := time.Now().UTC()
	twoDaysAgo := now.Add(-48 * time.Hour)

	// Действие: две отметки в разные календарные дни
	w := performRequest(router, http.MethodPost, "/clock", submitLogPayload(t, "1", "u1", models.CheckIn, twoDaysAgo))
	require.Equal(t, http.StatusOK, w.Code)
	w = performRequest(router, http.MethodPost, "/clock", submitLogPayload(t, "2", "u1", models.CheckOut, now))
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodGet, "/clock/today?userId=u1", nil)

	// Проверки: в сегодняшней выборке только сегодняшняя отметка
	require.Equal(t, http.StatusOK, w.Code)
	var resp TodayLogsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Logs, 1)
	assert.Equal(t, "2", resp.Logs[0].ID)

	// Чужой пользователь получает пустой список
	w = performRequest(router, http.MethodGet, "/clock/today?userId=u2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var other TodayLogsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &other))
	assert.Empty(t, other.Logs)
}
