package get_available_slots

import "time"

// Request модель запроса на получение слотов
type Request struct {
	Date                   string // Дата в формате "2024-01-05" в часовом поясе бизнеса
	ServiceDurationMinutes int    // Длительность услуги, если не указан ServiceID
	ServiceID              *int64 // Услуга каталога, длительность берется из неё
	OnlyAvailable          bool   // Вернуть только свободные слоты (превью для клиента)
}

// Response модель ответа со слотами дня
type Response struct {
	Date                   string // Дата, на которую запрашивались слоты
	ServiceDurationMinutes int    // Длительность, с которой считались слоты
	Slots                  []Slot // Слоты в порядке рабочих интервалов
}

// Slot модель временного слота
type Slot struct {
	Time      time.Time // Время начала в UTC
	Available bool      // Можно ли записаться на это время
}
