package create_appointment

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    uuid.UUID // ID клиента
	ServiceID int64     // ID услуги каталога
	StartTime time.Time // Время начала, один из слотов дня
	Notes     *string   // Пожелания клиента (опционально)
}
