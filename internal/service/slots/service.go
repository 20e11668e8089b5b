package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/availability"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/settings"
	busyService "github.com/m04kA/SMC-BarberBookingService/internal/service/busy"
)

// DaySlots результат расчёта слотов на день
type DaySlots struct {
	Date     availability.CalendarDate
	Slots    []domain.Slot
	Settings *domain.BusinessSettings
}

// Service собирает настройки, рабочие интервалы и занятость и передает их движку доступности
type Service struct {
	settings   SettingsProvider
	busy       BusyCollector
	metrics    Metrics
	location   *time.Location
	settingsID int64
	logger     Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	settings SettingsProvider,
	busy BusyCollector,
	metrics Metrics,
	location *time.Location,
	settingsID int64,
	logger Logger,
) *Service {
	return &Service{
		settings:   settings,
		busy:       busy,
		metrics:    metrics,
		location:   location,
		settingsID: settingsID,
		logger:     logger,
	}
}

// Location возвращает часовой пояс бизнеса
func (s *Service) Location() *time.Location {
	return s.location
}

// LoadSettings загружает настройки бизнеса для одного запроса
func (s *Service) LoadSettings(ctx context.Context) (*domain.BusinessSettings, error) {
	settings, err := s.settings.Get(ctx, s.settingsID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) || errors.Is(err, settingsRepo.ErrMalformedSettings) {
			s.logger.Error("LoadSettings: settings id=%d unusable: %v", s.settingsID, err)
			return nil, fmt.Errorf("%w: %v", ErrConfigurationMissing, err)
		}
		s.logger.Error("LoadSettings: failed to get settings id=%d: %v", s.settingsID, err)
		return nil, fmt.Errorf("%w: LoadSettings - get settings: %w", ErrInternal, err)
	}
	return settings, nil
}

// Compute рассчитывает сетку слотов на дату для услуги заданной длительности
func (s *Service) Compute(ctx context.Context, date availability.CalendarDate, durationMinutes int, now time.Time) (*DaySlots, error) {
	started := time.Now()

	in, settings, err := s.prepare(ctx, "ComputeSlots", date, durationMinutes, now, 0)
	if err != nil {
		return nil, err
	}

	// Выходной день - не ошибка
	if len(in.Ranges) == 0 {
		s.logger.Info("ComputeSlots: %s is a day off", date)
		return &DaySlots{Date: date, Slots: []domain.Slot{}, Settings: settings}, nil
	}

	slots, err := availability.GenerateSlots(in)
	if err != nil {
		return nil, s.mapEngineError("ComputeSlots", date, err)
	}

	available, unavailable := availability.CountAvailable(slots)
	s.metrics.ObserveSlotComputation(time.Since(started), available, unavailable)

	s.logger.Info("ComputeSlots: date=%s, duration=%d, ranges=%d, busy=%d, available=%d, unavailable=%d",
		date, durationMinutes, len(in.Ranges), len(in.Busy), available, unavailable)

	return &DaySlots{Date: date, Slots: slots, Settings: settings}, nil
}

// IsBookable проверяет, что start является свободным слотом своего дня.
// Внутри транзакции занятые интервалы читаются с блокировкой строк.
func (s *Service) IsBookable(ctx context.Context, start time.Time, durationMinutes int, now time.Time) (bool, *domain.BusinessSettings, error) {
	return s.isBookable(ctx, start, durationMinutes, now, 0)
}

// IsBookableExcluding проверяет start так же, как IsBookable, не учитывая интервал записи appointmentID
func (s *Service) IsBookableExcluding(
	ctx context.Context,
	start time.Time,
	durationMinutes int,
	now time.Time,
	appointmentID int64,
) (bool, *domain.BusinessSettings, error) {
	return s.isBookable(ctx, start, durationMinutes, now, appointmentID)
}

func (s *Service) isBookable(
	ctx context.Context,
	start time.Time,
	durationMinutes int,
	now time.Time,
	excludeID int64,
) (bool, *domain.BusinessSettings, error) {
	date := availability.DateOf(start, s.location)

	in, settings, err := s.prepare(ctx, "IsBookable", date, durationMinutes, now, excludeID)
	if err != nil {
		return false, nil, err
	}

	ok, err := availability.IsBookable(in, start)
	if err != nil {
		return false, nil, s.mapEngineError("IsBookable", date, err)
	}

	s.logger.Info("IsBookable: start=%s, duration=%d, bookable=%t",
		start.UTC().Format(time.RFC3339), durationMinutes, ok)

	return ok, settings, nil
}

// prepare собирает вход движка: настройки, рабочие интервалы и занятость дня
func (s *Service) prepare(
	ctx context.Context,
	op string,
	date availability.CalendarDate,
	durationMinutes int,
	now time.Time,
	excludeID int64,
) (availability.Input, *domain.BusinessSettings, error) {
	in := availability.Input{
		Date:                   date,
		ServiceDurationMinutes: durationMinutes,
		Now:                    now,
		Location:               s.location,
	}

	// 1. Валидация входных данных
	if durationMinutes <= 0 {
		return in, nil, fmt.Errorf("%w: service duration must be positive, got %d", ErrInvalidInput, durationMinutes)
	}

	// 2. Настройки бизнеса
	settings, err := s.LoadSettings(ctx)
	if err != nil {
		return in, nil, err
	}

	// 3. Рабочие интервалы дня
	in.Ranges = availability.ResolveDayRanges(date, settings.WorkingHours)
	if len(in.Ranges) == 0 {
		return in, settings, nil
	}

	// 4. Занятые интервалы дня
	from, to := date.DayBounds(s.location)
	var busy []domain.BusyInterval
	if excludeID > 0 {
		busy, err = s.busy.CollectExcluding(ctx, from, to, settings.BufferMinutes, excludeID)
	} else {
		busy, err = s.busy.Collect(ctx, from, to, settings.BufferMinutes)
	}
	if err != nil {
		s.logger.Error("%s: failed to collect busy intervals for %s: %v", op, date, err)
		if errors.Is(err, busyService.ErrUpstreamFetch) {
			return in, nil, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
		}
		return in, nil, fmt.Errorf("%w: %s - collect busy: %w", ErrInternal, op, err)
	}
	in.Busy = busy

	return in, settings, nil
}

func (s *Service) mapEngineError(op string, date availability.CalendarDate, err error) error {
	if errors.Is(err, availability.ErrMalformedRange) {
		s.logger.Error("%s: malformed working hours for %s: %v", op, date, err)
		return fmt.Errorf("%w: %v", ErrConfigurationMissing, err)
	}
	if errors.Is(err, availability.ErrInvalidDuration) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %s - engine: %v", ErrInternal, op, err)
}
