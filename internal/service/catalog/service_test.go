package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
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

func (m *mockServiceRepo) ListActive(ctx context.Context) ([]*domain.BarberService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BarberService), args.Error(1)
}

func TestService_ListActive(t *testing.T) {
	repo := &mockServiceRepo{}
	svc := NewService(repo, logger.NewNop())

	repo.On("ListActive", mock.Anything).Return([]*domain.BarberService{
		{ID: 1, Name: "Haircut", DurationMinutes: 30, Price: 80, IsActive: true},
		{ID: 2, Name: "Beard trim", DurationMinutes: 15, Price: 40, IsActive: true},
	}, nil).Once()

	resp, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, "Beard trim", resp.Services[1].Name)

	repo.On("ListActive", mock.Anything).Return(nil, errors.New("db down")).Once()
	_, err = svc.ListActive(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetByID(t *testing.T) {
	repo := &mockServiceRepo{}
	svc := NewService(repo, logger.NewNop())

	repo.On("GetByID", mock.Anything, int64(1)).Return(&domain.BarberService{ID: 1, DurationMinutes: 45, IsActive: true}, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(&domain.BarberService{ID: 2, IsActive: false}, nil)
	repo.On("GetByID", mock.Anything, int64(3)).Return(nil, catalogRepo.ErrServiceNotFound)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)

	_, err = svc.GetByID(context.Background(), 2)
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = svc.GetByID(context.Background(), 3)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
