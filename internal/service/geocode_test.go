package service

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shenikar/attendance_system/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestGeocodeService — вспомогательная функция для создания сервиса поверх тестового апстрима.
func newTestGeocodeService(upstreamURL string) GeocodeService {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		NominatimURL:     upstreamURL,
		GeocodeUserAgent: "attendance-system-demo/1.0 (contact: demo@example.com)",
		GeocodeTimeout:   2 * time.Second,
		GeocodeCacheTTL:  time.Minute,
	}
	return NewGeocodeService(cfg, logger, nil)
}

func TestReverseGeocode_Success(t *testing.T) {
	// Подготовка: апстрим отвечает адресом, параметры и заголовок проверяем
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "22.3", r.URL.Query().Get("lat"))
		assert.Equal(t, "114.1", r.URL.Query().Get("lon"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "attendance-system-demo/1.0 (contact: demo@example.com)", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name": "1 Queen's Road, Central, Hong Kong"}`))
	}))
	defer upstream.Close()

	service := newTestGeocodeService(upstream.URL)

	// Действие
	displayName, err := service.ReverseGeocode(context.Background(), "22.3", "114.1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "1 Queen's Road, Central, Hong Kong", displayName)
}

func TestReverseGeocode_StripsNonASCII(t *testing.T) {
	// Подготовка: апстрим возвращает адрес с не-ASCII символами и пробелами по краям
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"display_name": "  皇后大道中 Queen's Road Central, 中環 Hong Kong  "}`))
	}))
	defer upstream.Close()

	service := newTestGeocodeService(upstream.URL)

	// Действие
	displayName, err := service.ReverseGeocode(context.Background(), "22.28", "114.15")

	// Проверки: не-ASCII вырезан, пробелы обрезаны
	require.NoError(t, err)
	assert.Equal(t, "Queen's Road Central,  Hong Kong", displayName)
}

func TestReverseGeocode_UpstreamNonSuccess(t *testing.T) {
	// Подготовка
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	service := newTestGeocodeService(upstream.URL)

	// Действие
	displayName, err := service.ReverseGeocode(context.Background(), "22.3", "114.1")

	// Проверки: пустой адрес и ошибка для внутреннего логирования
	require.Error(t, err)
	assert.Empty(t, displayName)
}

func TestReverseGeocode_UpstreamUnreachable(t *testing.T) {
	// Подготовка: апстрим закрыт до запроса
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	service := newTestGeocodeService(upstream.URL)

	// Действие
	displayName, err := service.ReverseGeocode(context.Background(), "22.3", "114.1")

	// Проверки
	require.Error(t, err)
	assert.Empty(t, displayName)
}

func TestReverseGeocode_MalformedResponse(t *testing.T) {
	// Подготовка
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer upstream.Close()

	service := newTestGeocodeService(upstream.URL)

	// Действие
	displayName, err := service.ReverseGeocode(context.Background(), "22.3", "114.1")

	// Проверки
	require.Error(t, err)
	assert.Empty(t, displayName)
}
