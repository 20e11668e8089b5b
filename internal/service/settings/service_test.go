package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/settings/models"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
	"github.com/m04kA/SMC-BarberBookingService/pkg/ptr"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Get(ctx context.Context, id int64) (*domain.BusinessSettings, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessSettings), args.Error(1)
}

func (m *mockStore) EnsureDefaults(ctx context.Context, settings domain.BusinessSettings) (bool, error) {
	args := m.Called(ctx, settings)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, settings domain.BusinessSettings) error {
	return m.Called(ctx, settings).Error(0)
}

func newTestService(t *testing.T) (*Service, *mockStore) {
	t.Helper()
	store := &mockStore{}
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)
	return NewService(store, domain.DefaultSettingsID, loc, logger.NewNop()), store
}

func TestService_EnsureDefaults(t *testing.T) {
	svc, store := newTestService(t)

	store.On("EnsureDefaults", mock.Anything, domain.DefaultBusinessSettings()).Return(true, nil).Once()
	require.NoError(t, svc.EnsureDefaults(context.Background()))

	store.On("EnsureDefaults", mock.Anything, mock.Anything).Return(false, errors.New("db down")).Once()
	assert.ErrorIs(t, svc.EnsureDefaults(context.Background()), ErrInternal)
}

func TestService_GetPublic(t *testing.T) {
	svc, store := newTestService(t)

	defaults := domain.DefaultBusinessSettings()
	store.On("Get", mock.Anything, domain.DefaultSettingsID).Return(&defaults, nil)

	resp, err := svc.GetPublic(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jerusalem", resp.Timezone)
	assert.Equal(t, defaults.WorkingHours, resp.WorkingHours)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, store := newTestService(t)

	store.On("Get", mock.Anything, domain.DefaultSettingsID).Return(nil, settingsRepo.ErrSettingsNotFound)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestService_Update(t *testing.T) {
	svc, store := newTestService(t)

	defaults := domain.DefaultBusinessSettings()
	store.On("Get", mock.Anything, domain.DefaultSettingsID).Return(&defaults, nil)
	store.On("Update", mock.Anything, mock.MatchedBy(func(s domain.BusinessSettings) bool {
		return s.BufferMinutes == 15 && s.AutoApproveAppointments && s.CancellationHoursBefore == defaults.CancellationHoursBefore
	})).Return(nil)

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		BufferMinutes:           ptr.Ptr(15),
		AutoApproveAppointments: ptr.Ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.BufferMinutes)
	assert.True(t, resp.AutoApproveAppointments)

	// Исходное значение не мутируется
	assert.Equal(t, domain.DefaultBufferMinutes, defaults.BufferMinutes)
	store.AssertExpectations(t)
}

func TestService_Update_Validation(t *testing.T) {
	overlapping := domain.WorkingHours{
		domain.Monday: {{Start: "09:00", End: "13:00"}, {Start: "12:00", End: "18:00"}},
	}

	tests := []struct {
		name string
		req  *models.UpdateSettingsRequest
	}{
		{name: "empty request", req: &models.UpdateSettingsRequest{}},
		{name: "negative buffer", req: &models.UpdateSettingsRequest{BufferMinutes: ptr.Ptr(-5)}},
		{name: "huge buffer", req: &models.UpdateSettingsRequest{BufferMinutes: ptr.Ptr(domain.MaxBufferMinutes + 1)}},
		{name: "negative policy", req: &models.UpdateSettingsRequest{CancellationHoursBefore: ptr.Ptr(-1)}},
		{name: "overlapping ranges", req: &models.UpdateSettingsRequest{WorkingHours: &overlapping}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTestService(t)

			defaults := domain.DefaultBusinessSettings()
			store.On("Get", mock.Anything, domain.DefaultSettingsID).Return(&defaults, nil).Maybe()

			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}
