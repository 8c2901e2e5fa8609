package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/attendance_system/internal/config"
	"github.com/shenikar/attendance_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ClockLogRepository определяет контракт для работы с хранилищем отметок
type ClockLogRepository interface {
	ReadAll(ctx context.Context) ([]*models.ClockLog, error)
	Append(ctx context.Context, log *models.ClockLog) error
	GetToday(ctx context.Context, userID string, ref time.Time, loc *time.Location) ([]*models.ClockLog, error)
}

// AttendanceService определяет контракт для бизнес-логики учета отметок
type AttendanceService interface {
	SubmitLog(ctx context.Context, log *models.ClockLog) error
	GetTodayLogs(ctx context.Context, userID string) ([]*models.ClockLog, error)
}

type attendanceService struct {
	repo   ClockLogRepository
	logger *logrus.Logger
	cfg    *config.Config
	now    func() time.Time
}

func NewAttendanceService(repo ClockLogRepository, logger *logrus.Logger, cfg *config.Config) AttendanceService {
	return &attendanceService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		now:    time.Now,
	}
}

// SubmitLog сохраняет отметку как есть, без серверной валидации полей
func (s *attendanceService) SubmitLog(ctx context.Context, log *models.ClockLog) error {
	l := s.logger.WithFields(logrus.Fields{
		"service":    "attendance",
		"method":     "SubmitLog",
		"user_id":    log.UserID,
		"check_type": log.CheckType,
	})
	l.Info("Submitting clock log")

	if err := s.repo.Append(ctx, log); err != nil {
		l.WithError(err).Error("Failed to append clock log to repository")
		return fmt.Errorf("service: could not submit clock log: %w", err)
	}

	l.WithField("log_id", log.ID).Info("Clock log submitted successfully")
	return nil
}

// GetTodayLogs возвращает отметки пользователя за сегодняшний календарный день.
// Пустой userId дает пустой список без обращения к хранилищу.
func (s *attendanceService) GetTodayLogs(ctx context.Context, userID string) ([]*models.ClockLog, error) {
	l := s.logger.WithFields(logrus.Fields{
		"service": "attendance",
		"method":  "GetTodayLogs",
		"user_id": userID,
	})

	if userID == "" {
		l.Debug("Empty userId, returning empty result")
		return []*models.ClockLog{}, nil
	}

	l.Info("Fetching today's clock logs")

	logs, err := s.repo.GetToday(ctx, userID, s.now(), s.cfg.Location)
	if err != nil {
		l.WithError(err).Error("Failed to get today's logs from repository")
		return nil, fmt.Errorf("service: could not get today's logs: %w", err)
	}

	l.WithField("count", len(logs)).Info("Today's logs fetched successfully")
	return logs, nil
}
