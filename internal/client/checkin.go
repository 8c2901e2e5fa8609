package client

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/attendance_system/internal/config"
	"github.com/shenikar/attendance_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Таймаут одноразового определения местоположения
const fixTimeout = 10 * time.Second

const (
	// MsgWrongPIN показывается при несовпадении PIN, запрос на сервер не уходит
	MsgWrongPIN = "wrong PIN"
	// MsgSubmitFailed показывается при сбое отправки, состояние формы не меняется
	MsgSubmitFailed = "submit failed"
	// MsgFormIncomplete показывается при попытке отправки неготовой формы
	MsgFormIncomplete = "form incomplete"
)

// checkinForm - условия готовности формы к отправке
type checkinForm struct {
	PIN     string `validate:"required"`
	Address string `validate:"required"`
}

// Controller - машина состояний клиента отметок: ввод PIN, определение
// местоположения, разрешение адреса и отправка отметки на сервер.
type Controller struct {
	api      AttendanceAPI
	source   LocationSource
	logger   *logrus.Logger
	cfg      *config.Config
	validate *validator.Validate
	now      func() time.Time

	mu              sync.Mutex
	pin             string
	checkType       models.CheckType
	remarks         string
	address         string
	addressResolved bool
	// Единственное "лучшее известное" местоположение: засеивается резервными
	// координатами, одноразовый fix применяется только пока не было обновлений
	// watch, каждое обновление watch всегда побеждает.
	bestKnown Coordinates
	watchSeen bool
	todayLogs []*models.ClockLog
	message   string
}

func NewController(api AttendanceAPI, source LocationSource, logger *logrus.Logger, cfg *config.Config) *Controller {
	return &Controller{
		api:       api,
		source:    source,
		logger:    logger,
		cfg:       cfg,
		validate:  validator.New(),
		now:       time.Now,
		checkType: models.CheckIn,
		bestKnown: Coordinates{
			Latitude:  cfg.FallbackLat,
			Longitude: cfg.FallbackLon,
		},
	}
}

// Start запускает одноразовое определение местоположения и непрерывное
// наблюдение. Обе горутины независимы и не синхронизированы между собой.
func (c *Controller) Start(ctx context.Context) {
	go c.runFix(ctx)
	go c.runWatch(ctx)
}

// runFix засеивает кэш координат одноразовым определением местоположения
func (c *Controller) runFix(ctx context.Context) {
	fixCtx, cancel := context.WithTimeout(ctx, fixTimeout)
	defer cancel()

	coords, err := c.source.Fix(fixCtx)
	if err != nil {
		// Резервные координаты остаются действующим значением
		c.logger.WithError(err).Warn("One-shot location fix failed, keeping fallback coordinates")
		return
	}

	c.mu.Lock()
	seeded := false
	if !c.watchSeen {
		c.bestKnown = coords
		seeded = true
	}
	c.mu.Unlock()

	if seeded {
		c.logger.WithFields(logrus.Fields{
			"lat": coords.Latitude,
			"lon": coords.Longitude,
		}).Info("Seeded coordinate cache from one-shot fix")
		c.resolveAddress(ctx, coords)
	}
}

// runWatch обрабатывает непрерывные обновления местоположения до отмены контекста
func (c *Controller) runWatch(ctx context.Context) {
	for coords := range c.source.Watch(ctx) {
		c.mu.Lock()
		c.watchSeen = true
		c.bestKnown = coords
		c.mu.Unlock()

		c.logger.WithFields(logrus.Fields{
			"lat": coords.Latitude,
			"lon": coords.Longitude,
		}).Debug("Location watch update")

		// Каждое обновление заново разрешает и перезаписывает адрес
		c.resolveAddress(ctx, coords)
	}
	c.logger.Info("Location watch stopped")
}

// resolveAddress разрешает координаты в адрес и перезаписывает отображаемый адрес
func (c *Controller) resolveAddress(ctx context.Context, coords Coordinates) {
	address, err := c.api.ReverseGeocode(ctx, coords.Latitude, coords.Longitude)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.logger.WithError(err).Warn("Failed to resolve address")
		c.address = ""
		c.addressResolved = false
		return
	}
	c.address = address
	c.addressResolved = address != ""
}

// SetPIN устанавливает введенный PIN
func (c *Controller) SetPIN(pin string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pin = pin
}

// SetCheckType переключает тип отметки
func (c *Controller) SetCheckType(t models.CheckType) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkType = t
}

// SetRemarks устанавливает примечание
func (c *Controller) SetRemarks(remarks string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remarks = remarks
}

// Address возвращает текущий разрешенный адрес
func (c *Controller) Address() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.address
}

// BestKnown возвращает лучшее известное местоположение
func (c *Controller) BestKnown() Coordinates {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bestKnown
}

// Message возвращает текущее сообщение для пользователя
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// DismissMessage сбрасывает сообщение
func (c *Controller) DismissMessage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.message = ""
}

// TodayLogs возвращает сегодняшние отметки, самые свежие первыми
func (c *Controller) TodayLogs() []*models.ClockLog {
	c.mu.Lock()
	defer c.mu.Unlock()
	logs := make([]*models.ClockLog, len(c.todayLogs))
	copy(logs, c.todayLogs)
	return logs
}

// CanSubmit сообщает, готова ли форма: PIN введен и адрес разрешен
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

func (c *Controller) canSubmitLocked() bool {
	form := checkinForm{PIN: c.pin, Address: c.address}
	if err := c.validate.Struct(form); err != nil {
		return false
	}
	return c.addressResolved
}

// Submit проверяет PIN и отправляет отметку. Несовпадение PIN дает локальное
// сообщение без обращения к серверу. При успехе PIN и примечание очищаются,
// а список отметок за сегодня перечитывается.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if !c.canSubmitLocked() {
		c.message = MsgFormIncomplete
		c.mu.Unlock()
		return nil
	}

	if strings.TrimSpace(c.pin) != c.cfg.CheckinPIN {
		c.logger.Warn("PIN mismatch, submit suppressed")
		c.message = MsgWrongPIN
		c.mu.Unlock()
		return nil
	}

	now := c.now()
	lat := c.bestKnown.Latitude
	lon := c.bestKnown.Longitude
	log := &models.ClockLog{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		UserID:    c.cfg.CheckinUserID,
		CheckType: c.checkType,
		CheckTime: now,
		Address:   c.address,
		Latitude:  &lat,
		Longitude: &lon,
		Remarks:   c.remarks,
	}
	c.mu.Unlock()

	if err := c.api.SubmitClockLog(ctx, log); err != nil {
		c.logger.WithError(err).Error("Failed to submit clock log")
		c.mu.Lock()
		c.message = MsgSubmitFailed
		c.mu.Unlock()
		return fmt.Errorf("client: submit failed: %w", err)
	}

	c.mu.Lock()
	c.pin = ""
	c.remarks = ""
	c.message = ""
	c.mu.Unlock()

	c.RefreshToday(ctx)
	return nil
}

// RefreshToday перечитывает сегодняшние отметки с сервера
func (c *Controller) RefreshToday(ctx context.Context) {
	logs, err := c.api.GetTodayLogs(ctx, c.cfg.CheckinUserID)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to refresh today's logs")
		return
	}

	// Показ в обратном хронологическом порядке
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CheckTime.After(logs[j].CheckTime)
	})

	c.mu.Lock()
	c.todayLogs = logs
	c.mu.Unlock()
}
