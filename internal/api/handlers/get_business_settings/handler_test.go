package get_business_settings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/settings"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/settings/models"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Get(ctx context.Context) (*models.SettingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SettingsResponse), args.Error(1)
}

func (m *mockService) GetPublic(ctx context.Context) (*models.PublicSettingsResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PublicSettingsResponse), args.Error(1)
}

func TestHandle_PublicForClients(t *testing.T) {
	svc := &mockService{}
	svc.On("GetPublic", mock.Anything).Return(&models.PublicSettingsResponse{
		BufferMinutes: 10,
		Timezone:      "Asia/Jerusalem",
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"timezone":"Asia/Jerusalem"`)
	assert.NotContains(t, rec.Body.String(), "autoApproveAppointments")
	svc.AssertNotCalled(t, "Get", mock.Anything)
}

func TestHandle_FullForAdmin(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything).Return(&models.SettingsResponse{AutoApproveAppointments: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), uuid.New(), true))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"autoApproveAppointments":true`)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("GetPublic", mock.Anything).Return(nil, settings.ErrSettingsNotFound)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
