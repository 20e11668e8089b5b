package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBookingService/internal/availability"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/appointment"
	settingsRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	settings        SettingsProvider
	txManager       TransactionManager
	location        *time.Location
	settingsID      int64
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	settings SettingsProvider,
	txManager TransactionManager,
	location *time.Location,
	settingsID int64,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		settings:        settings,
		txManager:       txManager,
		location:        location,
		settingsID:      settingsID,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Клиент видит только свои записи, администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, userID uuid.UUID, isAdmin bool) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%s", id, userID)

	appointment, err := s.getAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && !appointment.IsOwnedBy(userID) {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment), nil
}

// GetUserAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%s by user=%s, status=%v",
		req.UserID, req.RequesterID, req.Status)

	if !req.IsAdmin && req.RequesterID != req.UserID {
		s.logger.Warn("GetUserAppointments: user=%s is not allowed to read appointments of user=%s",
			req.RequesterID, req.UserID)
		return nil, ErrAccessDenied
	}

	userID := req.UserID
	filter := domain.AppointmentsFilter{UserID: &userID}

	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Statuses = []domain.AppointmentStatus{status}
	}

	appointments, err := s.list(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%s", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// ListAppointments получает записи за период для администратора.
// Даты задаются в часовом поясе бизнеса, обе границы включительно.
func (s *Service) ListAppointments(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListAppointments: from=%v, to=%v, status=%v", req.From, req.To, req.Status)

	filter := domain.AppointmentsFilter{}

	if req.From != nil {
		date, err := availability.ParseCalendarDate(*req.From)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		from, _ := date.DayBounds(s.location)
		filter.From = &from
	}

	if req.To != nil {
		date, err := availability.ParseCalendarDate(*req.To)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		_, to := date.DayBounds(s.location)
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Statuses = []domain.AppointmentStatus{status}
	}

	appointments, err := s.list(ctx, filter)
	if err != nil {
		s.logger.Error("ListAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAppointments: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент может отменить свою запись, пока открыто окно отмены (или в течение grace period после создания).
// Отказ клиента от предложенного администратором времени окном не ограничен.
// Администратор может отменить любую запись без ограничений по времени.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%s, admin=%t", id, req.UserID, req.IsAdmin)

	now := s.timeProvider.Now()

	var result *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем запись с блокировкой строки
		appointment, err := s.getAppointment(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		// 2. Проверяем права доступа
		if !req.IsAdmin && !appointment.IsOwnedBy(req.UserID) {
			s.logger.Warn("Cancel: access denied for user=%s to appointment id=%d", req.UserID, id)
			return ErrAccessDenied
		}

		// 3. Проверяем, что из текущего статуса можно перейти в cancelled
		if err := domain.ValidateTransition(appointment.Status, domain.StatusCancelled); err != nil {
			s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appointment.Status)
			return ErrCannotCancel
		}

		// 4. Политика отмены для клиента
		if !req.IsAdmin && appointment.Status != domain.StatusClientApprovalPending {
			settings, err := s.loadSettings(txCtx, "Cancel")
			if err != nil {
				return err
			}

			if !settings.CancellationWindow().AllowsChange(appointment, now) {
				s.logger.Warn("Cancel: cancellation window closed for appointment id=%d, start=%s",
					id, appointment.StartTime.UTC().Format(time.RFC3339))
				return ErrCancellationWindowClosed
			}
		}

		// 5. Отменяем запись
		if err := s.appointmentRepo.UpdateStatus(txCtx, id, domain.StatusCancelled); err != nil {
			return s.mapUpdateError("Cancel", id, err)
		}

		appointment.Status = domain.StatusCancelled
		appointment.UpdatedAt = now
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(result), nil
}

// UpdateStatus меняет статус записи администратором
// Допустимость перехода проверяется по жизненному циклу записи
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Ожидание подтверждения клиента возникает только вместе с новым временем
	if newStatus == domain.StatusClientApprovalPending {
		s.logger.Warn("UpdateStatus: client approval for appointment id=%d requires a proposed time", id)
		return nil, fmt.Errorf("%w: %s requires a proposed time", ErrInvalidTransition, newStatus)
	}

	var result *domain.Appointment

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.getAppointment(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		if appointment.Status.IsTerminal() {
			s.logger.Warn("UpdateStatus: appointment id=%d is closed with status=%s", id, appointment.Status)
			return fmt.Errorf("%w: appointment is %s", ErrInvalidTransition, appointment.Status)
		}

		if err := domain.ValidateTransition(appointment.Status, newStatus); err != nil {
			s.logger.Warn("UpdateStatus: %v for appointment id=%d", err, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, newStatus)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			return s.mapUpdateError("UpdateStatus", id, err)
		}

		appointment.Status = newStatus
		appointment.UpdatedAt = s.timeProvider.Now()
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return models.FromDomainAppointment(result), nil
}

// Confirm подтверждает клиентом время, предложенное администратором
// Подтвердить может только владелец записи, ожидающей его решения
func (s *Service) Confirm(ctx context.Context, id int64, userID uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("Confirm: confirming appointment id=%d by user=%s", id, userID)

	var result *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.getAppointment(txCtx, "Confirm", id)
		if err != nil {
			return err
		}

		if !appointment.IsOwnedBy(userID) {
			s.logger.Warn("Confirm: access denied for user=%s to appointment id=%d", userID, id)
			return ErrAccessDenied
		}

		if appointment.Status != domain.StatusClientApprovalPending {
			s.logger.Warn("Confirm: appointment id=%d is not awaiting confirmation, status=%s", id, appointment.Status)
			return ErrNotAwaitingConfirmation
		}

		if err := domain.ValidateTransition(appointment.Status, domain.StatusApproved); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, domain.StatusApproved); err != nil {
			return s.mapUpdateError("Confirm", id, err)
		}

		appointment.Status = domain.StatusApproved
		appointment.UpdatedAt = s.timeProvider.Now()
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: appointment id=%d approved by client", id)
	return models.FromDomainAppointment(result), nil
}

// Вспомогательные методы

// list читает записи одним снимком в транзакции только для чтения
func (s *Service) list(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var appointments []*domain.Appointment
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.appointmentRepo.List(txCtx, filter)
		if err != nil {
			return err
		}
		appointments = result
		return nil
	})
	return appointments, err
}

func (s *Service) getAppointment(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return appointment, nil
}

func (s *Service) loadSettings(ctx context.Context, op string) (*domain.BusinessSettings, error) {
	settings, err := s.settings.Get(ctx, s.settingsID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) || errors.Is(err, settingsRepo.ErrMalformedSettings) {
			s.logger.Error("%s: business settings unusable: %v", op, err)
			return nil, ErrConfigurationMissing
		}
		s.logger.Error("%s: failed to get business settings: %v", op, err)
		return nil, fmt.Errorf("%w: %s - get settings: %w", ErrInternal, op, err)
	}
	return settings, nil
}

func (s *Service) mapUpdateError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		s.logger.Warn("%s: appointment id=%d not found during update", op, id)
		return ErrAppointmentNotFound
	case errors.Is(err, appointmentRepo.ErrSlotNotAvailable):
		s.logger.Warn("%s: appointment id=%d overlaps another appointment", op, id)
		return ErrSlotNotAvailable
	default:
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}
