package list_services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog/models"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListActive(ctx context.Context) (*models.ServiceListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceListResponse), args.Error(1)
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("ListActive", mock.Anything).Return(&models.ServiceListResponse{
		Services: []models.ServiceResponse{{ID: 1, Name: "Стрижка", DurationMinutes: 30, Price: 80}},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Стрижка","durationMinutes":30,"price":80}]`, rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	svc := &mockService{}
	svc.On("ListActive", mock.Anything).Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
