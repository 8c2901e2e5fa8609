package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/shenikar/attendance_system/internal/models"
	"github.com/shenikar/attendance_system/internal/service"
	"github.com/sirupsen/logrus"
)

// FileClockLogStore хранит отметки одним JSON-массивом в файле.
// Весь цикл чтение-изменение-перезапись сериализован мьютексом,
// чтобы конкурентные добавления не теряли записи.
type FileClockLogStore struct {
	path   string
	logger *logrus.Logger
	mu     sync.Mutex
}

func NewFileClockLogStore(path string, logger *logrus.Logger) service.ClockLogRepository {
	return &FileClockLogStore{
		path:   path,
		logger: logger,
	}
}

// ReadAll возвращает все отметки в порядке добавления.
// Отсутствующий файл создается пустым, поврежденное содержимое
// логируется и дает пустой список - чтение никогда не возвращает ошибку наружу.
func (s *FileClockLogStore) ReadAll(ctx context.Context) ([]*models.ClockLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAllLocked(), nil
}

// Append перечитывает коллекцию, добавляет запись и перезаписывает файл целиком
func (s *FileClockLogStore) Append(ctx context.Context, log *models.ClockLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs := s.readAllLocked()
	logs = append(logs, log)

	data, err := json.MarshalIndent(logs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal clock logs: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write clock log file: %w", err)
	}
	return nil
}

// GetToday фильтрует отметки по userId и календарному дню ref в поясе loc
func (s *FileClockLogStore) GetToday(ctx context.Context, userID string, ref time.Time, loc *time.Location) ([]*models.ClockLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*models.ClockLog, 0)
	for _, l := range s.readAllLocked() {
		if l.UserID != userID {
			continue
		}
		if l.SameLocalDay(ref, loc) {
			result = append(result, l)
		}
	}
	return result, nil
}

// readAllLocked читает файл под уже взятым мьютексом
func (s *FileClockLogStore) readAllLocked() []*models.ClockLog {
	if err := s.ensureFile(); err != nil {
		s.logger.WithError(err).Error("Failed to ensure clock log file exists")
		return []*models.ClockLog{}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.WithError(err).Error("Failed to read clock log file")
		return []*models.ClockLog{}
	}

	logs := make([]*models.ClockLog, 0)
	if err := json.Unmarshal(data, &logs); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Error("Clock log file is malformed, treating as empty")
		return []*models.ClockLog{}
	}
	return logs
}

// ensureFile лениво создает файл с пустым массивом при первом обращении
func (s *FileClockLogStore) ensureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat clock log file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte("[]"), 0o644); err != nil {
		return fmt.Errorf("failed to create clock log file: %w", err)
	}
	return nil
}
