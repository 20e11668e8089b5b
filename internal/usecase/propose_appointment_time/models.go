package propose_appointment_time

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса администратора на перенос записи с подтверждением клиента
type Request struct {
	AppointmentID int64     // ID переносимой записи
	AdminID       uuid.UUID // ID администратора
	NewStartTime  time.Time // Предлагаемое время начала
}
