package models

import (
	"time"
)

// CheckType - тип отметки: приход или уход
type CheckType string

const (
	CheckIn  CheckType = "in"
	CheckOut CheckType = "out"
)

// ClockLog представляет одну отметку сотрудника о приходе/уходе
type ClockLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CheckType CheckType `json:"check_type"`
	CheckTime time.Time `json:"check_time"`
	Address   string    `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Remarks   string    `json:"remarks,omitempty"`
}

// SameLocalDay сообщает, приходится ли отметка на тот же календарный день,
// что и ref, в часовом поясе loc
func (l *ClockLog) SameLocalDay(ref time.Time, loc *time.Location) bool {
	ly, lm, ld := l.CheckTime.In(loc).Date()
	ry, rm, rd := ref.In(loc).Date()
	return ly == ry && lm == rm && ld == rd
}
