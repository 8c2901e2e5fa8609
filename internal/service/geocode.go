package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/attendance_system/internal/config"
	"github.com/sirupsen/logrus"
)

// GeocodeService определяет контракт обратного геокодирования координат в адрес
type GeocodeService interface {
	ReverseGeocode(ctx context.Context, lat, lon string) (string, error)
}

type geocodeService struct {
	cfg         *config.Config
	logger      *logrus.Logger
	httpClient  *http.Client
	redisClient *redis.Client // nil, если кэш не настроен
}

// NewGeocodeService создает сервис обратного геокодирования поверх Nominatim.
// redisClient может быть nil - тогда кэширование отключено.
func NewGeocodeService(cfg *config.Config, logger *logrus.Logger, redisClient *redis.Client) GeocodeService {
	return &geocodeService{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.GeocodeTimeout,
		},
		redisClient: redisClient,
	}
}

// nominatimResponse - интересующая нас часть ответа Nominatim
type nominatimResponse struct {
	DisplayName string `json:"display_name"`
}

// ReverseGeocode выполняет один запрос к Nominatim без повторов и возвращает
// нормализованный адрес. Любой сбой дает пустую строку и ошибку для
// внутреннего логирования - наружу различие не выдается.
func (s *geocodeService) ReverseGeocode(ctx context.Context, lat, lon string) (string, error) {
	l := s.logger.WithFields(logrus.Fields{
		"service": "geocode",
		"method":  "ReverseGeocode",
		"lat":     lat,
		"lon":     lon,
	})

	if cached, ok := s.getFromCache(ctx, lat, lon); ok {
		l.Debug("Reverse geocode cache hit")
		return cached, nil
	}

	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", lat)
	query.Set("lon", lon)
	query.Set("zoom", "18")
	query.Set("addressdetails", "0")
	reqURL := fmt.Sprintf("%s/reverse?%s", strings.TrimRight(s.cfg.NominatimURL, "/"), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		l.WithError(err).Error("Failed to create reverse geocode request")
		return "", fmt.Errorf("service: could not create geocode request: %w", err)
	}
	req.Header.Set("User-Agent", s.cfg.GeocodeUserAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		l.WithError(err).Warn("Reverse geocode upstream request failed")
		return "", fmt.Errorf("service: geocode upstream unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		l.WithField("status", resp.StatusCode).Warn("Reverse geocode upstream returned non-success status")
		return "", fmt.Errorf("service: geocode upstream status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		l.WithError(err).Warn("Failed to decode reverse geocode response")
		return "", fmt.Errorf("service: could not decode geocode response: %w", err)
	}

	displayName := normalizeDisplayName(body.DisplayName)
	l.WithField("display_name", displayName).Info("Reverse geocode completed")

	s.setToCache(ctx, lat, lon, displayName)
	return displayName, nil
}

// getFromCache пытается получить адрес из Redis, промах и сбой равнозначны
func (s *geocodeService) getFromCache(ctx context.Context, lat, lon string) (string, bool) {
	if s.redisClient == nil {
		return "", false
	}
	val, err := s.redisClient.Get(ctx, geocodeCacheKey(lat, lon)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.WithError(err).Warn("Failed to read reverse geocode cache")
		}
		return "", false
	}
	return val, true
}

// setToCache сохраняет адрес в Redis, сбой кэша только логируется
func (s *geocodeService) setToCache(ctx context.Context, lat, lon, displayName string) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Set(ctx, geocodeCacheKey(lat, lon), displayName, s.cfg.GeocodeCacheTTL).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to write reverse geocode cache")
	}
}

func geocodeCacheKey(lat, lon string) string {
	return fmt.Sprintf("geocode:%s,%s", lat, lon)
}

// normalizeDisplayName удаляет не-ASCII символы и обрезает пробелы
func normalizeDisplayName(name string) string {
	stripped := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(stripped)
}
