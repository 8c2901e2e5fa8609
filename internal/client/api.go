package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/attendance_system/internal/models"
)

// AttendanceAPI определяет контракт взаимодействия клиента с сервером учета
type AttendanceAPI interface {
	SubmitClockLog(ctx context.Context, log *models.ClockLog) error
	GetTodayLogs(ctx context.Context, userID string) ([]*models.ClockLog, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (string, error)
}

// APIClient - HTTP-клиент к серверу учета отметок
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type submitResponse struct {
	OK bool `json:"ok"`
}

type todayLogsResponse struct {
	Logs []*models.ClockLog `json:"logs"`
}

type reverseGeocodeResponse struct {
	DisplayName string `json:"display_name"`
}

// SubmitClockLog отправляет отметку на сервер
func (c *APIClient) SubmitClockLog(ctx context.Context, log *models.ClockLog) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("client: could not marshal clock log: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/clock", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("client: could not create submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: submit request failed: %w", err)
	}
	defer resp.Body.Close()

	var body submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("client: could not decode submit response: %w", err)
	}
	if !body.OK {
		return fmt.Errorf("client: server rejected clock log, status %d", resp.StatusCode)
	}
	return nil
}

// GetTodayLogs запрашивает отметки пользователя за сегодня
func (c *APIClient) GetTodayLogs(ctx context.Context, userID string) ([]*models.ClockLog, error) {
	reqURL := fmt.Sprintf("%s/clock/today?userId=%s", c.baseURL, url.QueryEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("client: could not create today request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: today request failed: %w", err)
	}
	defer resp.Body.Close()

	var body todayLogsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("client: could not decode today response: %w", err)
	}
	return body.Logs, nil
}

// ReverseGeocode разрешает координаты в адрес через прокси сервера
func (c *APIClient) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	reqURL := fmt.Sprintf("%s/reverse-geocode?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("client: could not create geocode request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("client: geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var body reverseGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("client: could not decode geocode response: %w", err)
	}
	return body.DisplayName, nil
}
