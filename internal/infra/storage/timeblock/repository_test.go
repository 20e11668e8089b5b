package timeblock

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestRepository_CreateAndList(t *testing.T) {
	repo, mock := newRepo(t)

	admin := uuid.MustParse("5a0f3e2b-1111-4c2d-8e9f-000000000001")
	start := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectQuery("INSERT INTO time_blocks").
		WithArgs(start, end, "lunch", admin).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(9), start))

	block, err := repo.Create(context.Background(), &domain.TimeBlock{
		StartTime: start,
		EndTime:   end,
		Reason:    ptr.Ptr("lunch"),
		CreatedBy: admin,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), block.ID)

	dayStart := time.Date(2024, time.January, 4, 22, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	mock.ExpectQuery("FROM time_blocks WHERE start_time < \\$1 AND end_time > \\$2").
		WithArgs(dayEnd, dayStart).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(9), start, end, "lunch", admin.String(), start))

	blocks, err := repo.ListOverlapping(context.Background(), dayStart, dayEnd)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "lunch", *blocks[0].Reason)
	assert.Equal(t, admin, blocks[0].CreatedBy)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM time_blocks WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrTimeBlockNotFound)
}
