package reschedule_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
	rescheduleAppointment "github.com/m04kA/SMC-BarberBookingService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
)

var userID = uuid.MustParse("9d3c2b1a-0000-4c3b-8a2e-7f6e5d4c3b2a")

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *rescheduleAppointment.Request) (*rescheduleAppointment.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rescheduleAppointment.Response), args.Error(1)
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/appointments/{appointmentId}/reschedule", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments/4/reschedule", strings.NewReader(body))
	req = req.WithContext(middleware.WithUser(req.Context(), userID, false))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Rescheduled(t *testing.T) {
	newStart := time.Date(2024, 1, 7, 8, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *rescheduleAppointment.Request) bool {
		return r.AppointmentID == 4 && r.UserID == userID && !r.IsAdmin && r.NewStartTime.Equal(newStart)
	})).Return(&rescheduleAppointment.Response{
		Cancelled:   &models.AppointmentResponse{ID: 4, Status: "cancelled"},
		Appointment: &models.AppointmentResponse{ID: 9, Status: "pending", StartTime: newStart},
	}, nil)

	rec := serve(NewHandler(uc, logger.NewNop()), `{"startTime":"2024-01-07T08:00:00Z"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cancelled":{"id":4`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: rescheduleAppointment.ErrAppointmentNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign", err: rescheduleAppointment.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "terminal status", err: rescheduleAppointment.ErrCannotReschedule, wantStatus: http.StatusBadRequest},
		{name: "window closed", err: rescheduleAppointment.ErrRebookingWindowClosed, wantStatus: http.StatusBadRequest},
		{name: "service not found", err: rescheduleAppointment.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "slot taken", err: rescheduleAppointment.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "invalid input", err: rescheduleAppointment.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "configuration missing", err: rescheduleAppointment.ErrConfigurationMissing, wantStatus: http.StatusInternalServerError},
		{name: "internal", err: rescheduleAppointment.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(NewHandler(uc, logger.NewNop()), `{"startTime":"2024-01-07T08:00:00Z"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
