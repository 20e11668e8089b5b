package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/psqlbuilder"
)

// Repository репозиторий настроек бизнеса (одна строка с фиксированным id)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки по id.
// Отсутствие строки - ErrSettingsNotFound, повреждённые рабочие часы - ErrMalformedSettings.
func (r *Repository) Get(ctx context.Context, id int64) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"working_hours",
		"buffer_minutes",
		"auto_approve_appointments",
		"cancellation_hours_before",
		"rebooking_hours_before",
		"cancellation_grace_period_minutes",
		"rebooking_grace_period_minutes",
		"appointment_reminders_enabled",
		"created_at",
		"updated_at",
	).
		From("business_settings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		settings             domain.BusinessSettings
		workingHours         []byte
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&workingHours,
		&settings.BufferMinutes,
		&settings.AutoApproveAppointments,
		&settings.CancellationHoursBefore,
		&settings.RebookingHoursBefore,
		&settings.CancellationGracePeriodMinutes,
		&settings.RebookingGracePeriodMinutes,
		&settings.AppointmentRemindersEnabled,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %w", ErrScanRow, err)
	}

	if err := settings.WorkingHours.Scan(workingHours); err != nil {
		return nil, fmt.Errorf("%w: Get - working hours: %v", ErrMalformedSettings, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// EnsureDefaults создает строку настроек, если её ещё нет.
// Операция идемпотентна: существующие настройки не перезаписываются. Возвращает true, если строка была создана.
func (r *Repository) EnsureDefaults(ctx context.Context, settings domain.BusinessSettings) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_settings").
		Columns(
			"id",
			"working_hours",
			"buffer_minutes",
			"auto_approve_appointments",
			"cancellation_hours_before",
			"rebooking_hours_before",
			"cancellation_grace_period_minutes",
			"rebooking_grace_period_minutes",
			"appointment_reminders_enabled",
		).
		Values(
			settings.ID,
			settings.WorkingHours,
			settings.BufferMinutes,
			settings.AutoApproveAppointments,
			settings.CancellationHoursBefore,
			settings.RebookingHoursBefore,
			settings.CancellationGracePeriodMinutes,
			settings.RebookingGracePeriodMinutes,
			settings.AppointmentRemindersEnabled,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: EnsureDefaults - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: EnsureDefaults - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: EnsureDefaults - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// Update перезаписывает настройки
func (r *Repository) Update(ctx context.Context, settings domain.BusinessSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("business_settings").
		Set("working_hours", settings.WorkingHours).
		Set("buffer_minutes", settings.BufferMinutes).
		Set("auto_approve_appointments", settings.AutoApproveAppointments).
		Set("cancellation_hours_before", settings.CancellationHoursBefore).
		Set("rebooking_hours_before", settings.RebookingHoursBefore).
		Set("cancellation_grace_period_minutes", settings.CancellationGracePeriodMinutes).
		Set("rebooking_grace_period_minutes", settings.RebookingGracePeriodMinutes).
		Set("appointment_reminders_enabled", settings.AppointmentRemindersEnabled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": settings.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
