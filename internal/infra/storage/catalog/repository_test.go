package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
)

func TestRepository_ListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(dbmetrics.Wrap(db, nil))

	mock.ExpectQuery("FROM services WHERE is_active = \\$1 ORDER BY name ASC").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "price", "is_active"}).
			AddRow(int64(2), "Beard trim", 15, 40.0, true).
			AddRow(int64(1), "Haircut", 30, 70.0, true))

	services, err := repo.ListActive(context.Background())
	require.NoError(t, err)

	require.Len(t, services, 2)
	assert.Equal(t, "Beard trim", services[0].Name)
	assert.Equal(t, 30, services[1].DurationMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(dbmetrics.Wrap(db, nil))

	mock.ExpectQuery("FROM services WHERE id = \\$1").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "price", "is_active"}))

	_, err = repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
