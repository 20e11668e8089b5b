package get_user_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
)

var userID = uuid.MustParse("9d3c2b1a-0000-4c3b-8a2e-7f6e5d4c3b2a")

type mockService struct {
	mock.Mock
}

func (m *mockService) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppointmentListResponse), args.Error(1)
}

func serve(h *Handler, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/users/{userId}/appointments", h.Handle)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req = req.WithContext(middleware.WithUser(req.Context(), userID, false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_PassesStatusFilter(t *testing.T) {
	svc := &mockService{}
	svc.On("GetUserAppointments", mock.Anything, mock.MatchedBy(func(r *models.GetUserAppointmentsRequest) bool {
		return r.UserID == userID && r.RequesterID == userID && !r.IsAdmin && r.Status != nil && *r.Status == "approved"
	})).Return(&models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{ID: 1}, {ID: 2}}}, nil)

	rec := serve(NewHandler(svc, logger.NewNop()), "/api/v1/users/"+userID.String()+"/appointments?status=approved")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":2`)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "foreign history", err: appointments.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "bad status", err: appointments.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", err: appointments.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("GetUserAppointments", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(svc, logger.NewNop()), "/api/v1/users/"+uuid.NewString()+"/appointments")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_InvalidUserID(t *testing.T) {
	svc := &mockService{}
	rec := serve(NewHandler(svc, logger.NewNop()), "/api/v1/users/42/appointments")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
