package get_available_slots

import (
	"errors"
	"strconv"
	"time"

	getAvailableSlots "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_available_slots"
)

var (
	errMissingDate     = errors.New("date is required")
	errInvalidService  = errors.New("invalid serviceId")
	errInvalidDuration = errors.New("invalid serviceDuration")
	errInvalidFlag     = errors.New("invalid onlyAvailable")
)

// AvailableSlotsRequest HTTP request model (POST)
type AvailableSlotsRequest struct {
	Date            string `json:"date"`            // "2024-01-05"
	ServiceDuration int    `json:"serviceDuration"` // минуты
	ServiceID       *int64 `json:"serviceId,omitempty"`
	OnlyAvailable   bool   `json:"onlyAvailable,omitempty"`
}

// AvailableSlot HTTP response model
type AvailableSlot struct {
	Time      string `json:"time"` // RFC3339, UTC
	Available bool   `json:"available"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailableSlotsRequest) ToUseCaseRequest() *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		Date:                   r.Date,
		ServiceDurationMinutes: r.ServiceDuration,
		ServiceID:              r.ServiceID,
		OnlyAvailable:          r.OnlyAvailable,
	}
}

// FromQuery создает запрос из query параметров: date, serviceId или serviceDuration, onlyAvailable
func FromQuery(date, serviceID, serviceDuration, onlyAvailable string) (*AvailableSlotsRequest, error) {
	if date == "" {
		return nil, errMissingDate
	}

	req := &AvailableSlotsRequest{Date: date}

	if serviceID != "" {
		id, err := strconv.ParseInt(serviceID, 10, 64)
		if err != nil {
			return nil, errInvalidService
		}
		req.ServiceID = &id
	}

	if serviceDuration != "" {
		d, err := strconv.Atoi(serviceDuration)
		if err != nil {
			return nil, errInvalidDuration
		}
		req.ServiceDuration = d
	}

	if onlyAvailable != "" {
		flag, err := strconv.ParseBool(onlyAvailable)
		if err != nil {
			return nil, errInvalidFlag
		}
		req.OnlyAvailable = flag
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) []AvailableSlot {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:      slot.Time.UTC().Format(time.RFC3339),
			Available: slot.Available,
		}
	}
	return slots
}
