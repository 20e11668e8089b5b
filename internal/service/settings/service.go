package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/settings/models"
)

// Service сервис для работы с настройками бизнеса
type Service struct {
	store      SettingsStore
	settingsID int64
	location   *time.Location
	logger     Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(store SettingsStore, settingsID int64, location *time.Location, logger Logger) *Service {
	return &Service{
		store:      store,
		settingsID: settingsID,
		location:   location,
		logger:     logger,
	}
}

// EnsureDefaults создает настройки по умолчанию, если их ещё нет.
// Вызывается при старте сервиса, существующие настройки не меняются.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	defaults := domain.DefaultBusinessSettings()
	defaults.ID = s.settingsID

	created, err := s.store.EnsureDefaults(ctx, defaults)
	if err != nil {
		s.logger.Error("EnsureDefaults: failed to bootstrap settings id=%d: %v", s.settingsID, err)
		return fmt.Errorf("%w: EnsureDefaults - repository error: %v", ErrInternal, err)
	}

	if created {
		s.logger.Info("EnsureDefaults: created default settings id=%d", s.settingsID)
	} else {
		s.logger.Info("EnsureDefaults: settings id=%d already exist", s.settingsID)
	}

	return nil
}

// Get получает полные настройки бизнеса
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.get(ctx, "Get")
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(settings), nil
}

// GetPublic получает настройки, доступные клиентам
func (s *Service) GetPublic(ctx context.Context) (*models.PublicSettingsResponse, error) {
	settings, err := s.get(ctx, "GetPublic")
	if err != nil {
		return nil, err
	}
	return models.FromDomainPublicSettings(settings, s.location.String()), nil
}

// Update обновляет настройки бизнеса
// Обновляются только переданные поля, результат валидируется целиком
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings id=%d", s.settingsID)

	// 1. Проверяем, что есть что обновлять
	if req.IsEmpty() {
		s.logger.Warn("Update: empty update request")
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// 2. Получаем текущие настройки
	current, err := s.get(ctx, "Update")
	if err != nil {
		return nil, err
	}

	// 3. Применяем изменения и валидируем
	updated := *current
	req.ApplyTo(&updated)

	if err := validateSettings(&updated); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 4. Сохраняем
	if err := s.store.Update(ctx, updated); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Update: settings id=%d not found during update", s.settingsID)
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Update: repository error for settings id=%d: %v", s.settingsID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated.UpdatedAt = time.Now()

	s.logger.Info("Update: successfully updated settings id=%d", s.settingsID)
	return models.FromDomainSettings(&updated), nil
}

func (s *Service) get(ctx context.Context, op string) (*domain.BusinessSettings, error) {
	settings, err := s.store.Get(ctx, s.settingsID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("%s: settings id=%d not found", op, s.settingsID)
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("%s: repository error for settings id=%d: %v", op, s.settingsID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return settings, nil
}

// validateSettings валидирует параметры настроек
func validateSettings(s *domain.BusinessSettings) error {
	if err := s.WorkingHours.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if s.BufferMinutes < 0 || s.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: bufferMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}

	if s.CancellationHoursBefore < 0 || s.CancellationHoursBefore > domain.MaxPolicyHours {
		return fmt.Errorf("%w: cancellationHoursBefore must be between 0 and %d", ErrInvalidInput, domain.MaxPolicyHours)
	}

	if s.RebookingHoursBefore < 0 || s.RebookingHoursBefore > domain.MaxPolicyHours {
		return fmt.Errorf("%w: rebookingHoursBefore must be between 0 and %d", ErrInvalidInput, domain.MaxPolicyHours)
	}

	if s.CancellationGracePeriodMinutes < 0 || s.CancellationGracePeriodMinutes > domain.MaxGracePeriodMinutes {
		return fmt.Errorf("%w: cancellationGracePeriodMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxGracePeriodMinutes)
	}

	if s.RebookingGracePeriodMinutes < 0 || s.RebookingGracePeriodMinutes > domain.MaxGracePeriodMinutes {
		return fmt.Errorf("%w: rebookingGracePeriodMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxGracePeriodMinutes)
	}

	return nil
}
