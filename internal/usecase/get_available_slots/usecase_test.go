package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/availability"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/slots"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
	"github.com/m04kA/SMC-BarberBookingService/pkg/ptr"
)

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.BarberService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BarberService), args.Error(1)
}

type mockSlotsService struct {
	mock.Mock
}

func (m *mockSlotsService) Compute(ctx context.Context, date availability.CalendarDate, durationMinutes int, now time.Time) (*slots.DaySlots, error) {
	args := m.Called(ctx, date, durationMinutes, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slots.DaySlots), args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

var (
	now    = time.Date(2024, time.January, 4, 12, 0, 0, 0, time.UTC)
	friday = availability.CalendarDate{Year: 2024, Month: time.January, Day: 5}
)

func newTestUseCase() (*UseCase, *mockServiceRepo, *mockSlotsService) {
	serviceRepo := &mockServiceRepo{}
	slotsService := &mockSlotsService{}
	uc := NewUseCase(serviceRepo, slotsService, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc, serviceRepo, slotsService
}

func daySlots() *slots.DaySlots {
	return &slots.DaySlots{
		Date: friday,
		Slots: []domain.Slot{
			{Time: time.Date(2024, time.January, 5, 7, 0, 0, 0, time.UTC), Available: true},
			{Time: time.Date(2024, time.January, 5, 7, 15, 0, 0, time.UTC), Available: false},
			{Time: time.Date(2024, time.January, 5, 7, 30, 0, 0, time.UTC), Available: true},
		},
	}
}

func TestUseCase_Execute_ByDuration(t *testing.T) {
	uc, serviceRepo, slotsService := newTestUseCase()

	slotsService.On("Compute", mock.Anything, friday, 30, now).Return(daySlots(), nil)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-01-05", ServiceDurationMinutes: 30})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-05", resp.Date)
	assert.Equal(t, 30, resp.ServiceDurationMinutes)
	require.Len(t, resp.Slots, 3)
	assert.False(t, resp.Slots[1].Available)
	serviceRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_ByServiceOnlyAvailable(t *testing.T) {
	uc, serviceRepo, slotsService := newTestUseCase()

	serviceRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.BarberService{ID: 2, DurationMinutes: 45, IsActive: true}, nil)
	slotsService.On("Compute", mock.Anything, friday, 45, now).Return(daySlots(), nil)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-01-05", ServiceID: ptr.Ptr(int64(2)), OnlyAvailable: true})
	require.NoError(t, err)

	assert.Equal(t, 45, resp.ServiceDurationMinutes)
	require.Len(t, resp.Slots, 2)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name       string
		req        *Request
		serviceErr error
		inactive   bool
		computeErr error
		wantErr    error
	}{
		{name: "missing date", req: &Request{ServiceDurationMinutes: 30}, wantErr: ErrInvalidInput},
		{name: "bad date", req: &Request{Date: "05/01/2024", ServiceDurationMinutes: 30}, wantErr: ErrInvalidDate},
		{name: "zero duration", req: &Request{Date: "2024-01-05"}, wantErr: ErrInvalidInput},
		{name: "negative duration", req: &Request{Date: "2024-01-05", ServiceDurationMinutes: -15}, wantErr: ErrInvalidInput},
		{name: "unknown service", req: &Request{Date: "2024-01-05", ServiceID: ptr.Ptr(int64(9))},
			serviceErr: catalogRepo.ErrServiceNotFound, wantErr: ErrServiceNotFound},
		{name: "inactive service", req: &Request{Date: "2024-01-05", ServiceID: ptr.Ptr(int64(9))},
			inactive: true, wantErr: ErrServiceNotFound},
		{name: "settings missing", req: &Request{Date: "2024-01-05", ServiceDurationMinutes: 30},
			computeErr: slots.ErrConfigurationMissing, wantErr: ErrConfigurationMissing},
		{name: "upstream failure", req: &Request{Date: "2024-01-05", ServiceDurationMinutes: 30},
			computeErr: slots.ErrUpstreamFetch, wantErr: ErrUpstreamFetch},
		{name: "unexpected failure", req: &Request{Date: "2024-01-05", ServiceDurationMinutes: 30},
			computeErr: errors.New("boom"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, serviceRepo, slotsService := newTestUseCase()

			if tt.serviceErr != nil {
				serviceRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
			}
			if tt.inactive {
				serviceRepo.On("GetByID", mock.Anything, mock.Anything).Return(&domain.BarberService{DurationMinutes: 30}, nil)
			}
			if tt.computeErr != nil {
				slotsService.On("Compute", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.computeErr)
			}

			resp, err := uc.Execute(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
