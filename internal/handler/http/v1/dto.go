package v1

import (
	"time"
)

// SubmitClockLogRequest DTO для отправки отметки
// @Description DTO для отправки отметки прихода/ухода
type SubmitClockLogRequest struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CheckType string    `json:"check_type"`
	CheckTime time.Time `json:"check_time"`
	Address   string    `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Remarks   string    `json:"remarks,omitempty"`
}

// SubmitClockLogResponse DTO для ответа на отправку отметки
// @Description DTO для ответа на отправку отметки
type SubmitClockLogResponse struct {
	OK bool `json:"ok"`
}

// ClockLogResponse DTO для одной отметки в ответе
// @Description DTO для одной отметки в ответе
type ClockLogResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CheckType string    `json:"check_type"`
	CheckTime time.Time `json:"check_time"`
	Address   string    `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Remarks   string    `json:"remarks,omitempty"`
}

// TodayLogsResponse DTO для списка отметок за сегодня
// @Description DTO для списка отметок за сегодня
type TodayLogsResponse struct {
	Logs []*ClockLogResponse `json:"logs"`
}

// ReverseGeocodeRequest DTO для параметров обратного геокодирования
// @Description DTO для параметров обратного геокодирования
type ReverseGeocodeRequest struct {
	Lat string `form:"lat" validate:"required,latitude"`
	Lon string `form:"lon" validate:"required,longitude"`
}

// ReverseGeocodeResponse DTO для ответа обратного геокодирования
// @Description DTO для ответа обратного геокодирования
type ReverseGeocodeResponse struct {
	DisplayName string `json:"display_name"`
}
