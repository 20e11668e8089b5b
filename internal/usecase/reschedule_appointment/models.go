package reschedule_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64     // ID переносимой записи
	UserID        uuid.UUID // ID того, кто переносит
	IsAdmin       bool      // Администратор переносит без проверки окна
	NewStartTime  time.Time // Новое время начала
	ServiceID     *int64    // Новая услуга (опционально, по умолчанию прежняя)
	Notes         *string   // Новые пожелания (опционально, по умолчанию прежние)
}

// Response модель ответа: отменённая и новая записи
type Response struct {
	Cancelled   *models.AppointmentResponse `json:"cancelled"`
	Appointment *models.AppointmentResponse `json:"appointment"`
}
