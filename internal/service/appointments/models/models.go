package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	UserID  uuid.UUID `json:"-"`
	IsAdmin bool      `json:"-"`
}

// UpdateStatusRequest запрос на смену статуса записи администратором
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetUserAppointmentsRequest запрос на получение записей клиента
type GetUserAppointmentsRequest struct {
	RequesterID uuid.UUID `json:"-"`
	IsAdmin     bool      `json:"-"`
	UserID      uuid.UUID `json:"userId"`
	Status      *string   `json:"status,omitempty"`
}

// ListAppointmentsRequest запрос администратора на записи за период
type ListAppointmentsRequest struct {
	From   *string `json:"from,omitempty"`   // "2024-01-05", включительно
	To     *string `json:"to,omitempty"`     // "2024-01-07", включительно
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"userId"`
	ServiceID       int64     `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	Price           float64   `json:"price"`
	StartTime       time.Time `json:"startTime"` // RFC3339, UTC
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		UserID:          a.UserID.String(),
		ServiceID:       a.ServiceID,
		ServiceName:     a.ServiceName,
		Price:           a.Price,
		StartTime:       a.StartTime.UTC(),
		EndTime:         a.EndTime.UTC(),
		DurationMinutes: a.DurationMinutes(),
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if item := FromDomainAppointment(a); item != nil {
			resp.Appointments = append(resp.Appointments, *item)
		}
	}

	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
