package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек бизнеса
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	WorkingHours                   *domain.WorkingHours `json:"workingHours,omitempty"`
	BufferMinutes                  *int                 `json:"bufferMinutes,omitempty"`
	AutoApproveAppointments        *bool                `json:"autoApproveAppointments,omitempty"`
	CancellationHoursBefore        *int                 `json:"cancellationHoursBefore,omitempty"`
	RebookingHoursBefore           *int                 `json:"rebookingHoursBefore,omitempty"`
	CancellationGracePeriodMinutes *int                 `json:"cancellationGracePeriodMinutes,omitempty"`
	RebookingGracePeriodMinutes    *int                 `json:"rebookingGracePeriodMinutes,omitempty"`
	AppointmentRemindersEnabled    *bool                `json:"appointmentRemindersEnabled,omitempty"`
}

// IsEmpty проверяет, что запрос не содержит ни одного поля
func (r *UpdateSettingsRequest) IsEmpty() bool {
	return r.WorkingHours == nil &&
		r.BufferMinutes == nil &&
		r.AutoApproveAppointments == nil &&
		r.CancellationHoursBefore == nil &&
		r.RebookingHoursBefore == nil &&
		r.CancellationGracePeriodMinutes == nil &&
		r.RebookingGracePeriodMinutes == nil &&
		r.AppointmentRemindersEnabled == nil
}

// ApplyTo переносит переданные поля в настройки
func (r *UpdateSettingsRequest) ApplyTo(s *domain.BusinessSettings) {
	if r.WorkingHours != nil {
		s.WorkingHours = *r.WorkingHours
	}
	if r.BufferMinutes != nil {
		s.BufferMinutes = *r.BufferMinutes
	}
	if r.AutoApproveAppointments != nil {
		s.AutoApproveAppointments = *r.AutoApproveAppointments
	}
	if r.CancellationHoursBefore != nil {
		s.CancellationHoursBefore = *r.CancellationHoursBefore
	}
	if r.RebookingHoursBefore != nil {
		s.RebookingHoursBefore = *r.RebookingHoursBefore
	}
	if r.CancellationGracePeriodMinutes != nil {
		s.CancellationGracePeriodMinutes = *r.CancellationGracePeriodMinutes
	}
	if r.RebookingGracePeriodMinutes != nil {
		s.RebookingGracePeriodMinutes = *r.RebookingGracePeriodMinutes
	}
	if r.AppointmentRemindersEnabled != nil {
		s.AppointmentRemindersEnabled = *r.AppointmentRemindersEnabled
	}
}

// Response модели

// SettingsResponse полные настройки бизнеса (для администратора)
type SettingsResponse struct {
	WorkingHours                   domain.WorkingHours `json:"workingHours"`
	BufferMinutes                  int                 `json:"bufferMinutes"`
	AutoApproveAppointments        bool                `json:"autoApproveAppointments"`
	CancellationHoursBefore        int                 `json:"cancellationHoursBefore"`
	RebookingHoursBefore           int                 `json:"rebookingHoursBefore"`
	CancellationGracePeriodMinutes int                 `json:"cancellationGracePeriodMinutes"`
	RebookingGracePeriodMinutes    int                 `json:"rebookingGracePeriodMinutes"`
	AppointmentRemindersEnabled    bool                `json:"appointmentRemindersEnabled"`
	UpdatedAt                      time.Time           `json:"updatedAt"`
}

// PublicSettingsResponse настройки, которые видят клиенты
type PublicSettingsResponse struct {
	WorkingHours            domain.WorkingHours `json:"workingHours"`
	BufferMinutes           int                 `json:"bufferMinutes"`
	CancellationHoursBefore int                 `json:"cancellationHoursBefore"`
	RebookingHoursBefore    int                 `json:"rebookingHoursBefore"`
	Timezone                string              `json:"timezone"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.BusinessSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	return &SettingsResponse{
		WorkingHours:                   s.WorkingHours,
		BufferMinutes:                  s.BufferMinutes,
		AutoApproveAppointments:        s.AutoApproveAppointments,
		CancellationHoursBefore:        s.CancellationHoursBefore,
		RebookingHoursBefore:           s.RebookingHoursBefore,
		CancellationGracePeriodMinutes: s.CancellationGracePeriodMinutes,
		RebookingGracePeriodMinutes:    s.RebookingGracePeriodMinutes,
		AppointmentRemindersEnabled:    s.AppointmentRemindersEnabled,
		UpdatedAt:                      s.UpdatedAt,
	}
}

// FromDomainPublicSettings конвертирует domain модель в публичный DTO
func FromDomainPublicSettings(s *domain.BusinessSettings, timezone string) *PublicSettingsResponse {
	if s == nil {
		return nil
	}

	return &PublicSettingsResponse{
		WorkingHours:            s.WorkingHours,
		BufferMinutes:           s.BufferMinutes,
		CancellationHoursBefore: s.CancellationHoursBefore,
		RebookingHoursBefore:    s.RebookingHoursBefore,
		Timezone:                timezone,
	}
}
