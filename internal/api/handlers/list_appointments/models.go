package list_appointments

import (
	"net/url"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
)

// ToServiceRequest создает запрос сервиса из query параметров from, to, status
func ToServiceRequest(query url.Values) *models.ListAppointmentsRequest {
	return &models.ListAppointmentsRequest{
		From:   optional(query.Get("from")),
		To:     optional(query.Get("to")),
		Status: optional(query.Get("status")),
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
