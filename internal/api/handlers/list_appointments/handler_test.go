package list_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListAppointments(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppointmentListResponse), args.Error(1)
}

func TestHandle_PassesRange(t *testing.T) {
	svc := &mockService{}
	svc.On("ListAppointments", mock.Anything, mock.MatchedBy(func(r *models.ListAppointmentsRequest) bool {
		return r.From != nil && *r.From == "2024-01-05" &&
			r.To != nil && *r.To == "2024-01-07" &&
			r.Status == nil
	})).Return(&models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/appointments?from=2024-01-05&to=2024-01-07", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_InvalidRange(t *testing.T) {
	svc := &mockService{}
	svc.On("ListAppointments", mock.Anything, mock.Anything).Return(nil, appointments.ErrInvalidInput)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/appointments?from=05.01.2024", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
