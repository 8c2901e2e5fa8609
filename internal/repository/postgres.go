package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/attendance_system/internal/models"
	"github.com/shenikar/attendance_system/internal/service"
)

// PostgresClockLogStore - реализация хранилища отметок поверх PostgreSQL
type PostgresClockLogStore struct {
	db *pgxpool.Pool
}

func NewPostgresClockLogStore(db *pgxpool.Pool) service.ClockLogRepository {
	return &PostgresClockLogStore{
		db: db,
	}
}

// ReadAll возвращает все отметки в порядке добавления
func (s *PostgresClockLogStore) ReadAll(ctx context.Context) ([]*models.ClockLog, error) {
	query := `
		SELECT id, user_id, check_type, check_time, address, latitude, longitude, remarks
		FROM clock_logs
		ORDER BY seq;
	`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read clock logs: %w", err)
	}
	defer rows.Close()

	return scanClockLogs(rows)
}

// Append добавляет одну отметку
func (s *PostgresClockLogStore) Append(ctx context.Context, log *models.ClockLog) error {
	query := `
		INSERT INTO clock_logs (id, user_id, check_type, check_time, address, latitude, longitude, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := s.db.Exec(ctx, query,
		log.ID,
		log.UserID,
		string(log.CheckType),
		log.CheckTime,
		log.Address,
		log.Latitude,
		log.Longitude,
		log.Remarks,
	)
	if err != nil {
		return fmt.Errorf("failed to append clock log: %w", err)
	}
	return nil
}

// GetToday возвращает отметки пользователя, попадающие в календарный день ref в поясе loc.
// Границы дня вычисляются на стороне приложения, чтобы оба драйвера хранилища
// использовали один и тот же часовой пояс.
func (s *PostgresClockLogStore) GetToday(ctx context.Context, userID string, ref time.Time, loc *time.Location) ([]*models.ClockLog, error) {
	y, m, d := ref.In(loc).Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT id, user_id, check_type, check_time, address, latitude, longitude, remarks
		FROM clock_logs
		WHERE user_id = $1
			AND check_time >= $2
			AND check_time < $3
		ORDER BY seq;
	`
	rows, err := s.db.Query(ctx, query, userID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get today's clock logs: %w", err)
	}
	defer rows.Close()

	return scanClockLogs(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanClockLogs(rows pgxRows) ([]*models.ClockLog, error) {
	logs := make([]*models.ClockLog, 0)
	for rows.Next() {
		log := &models.ClockLog{}
		var checkType string
		err := rows.Scan(
			&log.ID,
			&log.UserID,
			&checkType,
			&log.CheckTime,
			&log.Address,
			&log.Latitude,
			&log.Longitude,
			&log.Remarks,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan clock log row: %w", err)
		}
		log.CheckType = models.CheckType(checkType)
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error clock log iteration: %w", err)
	}
	return logs, nil
}
