package dbmetrics

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	mu         sync.Mutex
	operations []string
	errs       []error
}

func (c *recordingCollector) ObserveDBQuery(operation string, _ time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.operations = append(c.operations, operation)
	c.errs = append(c.errs, err)
}

func (c *recordingCollector) SetDBPoolStats(sql.DBStats) {}

func TestGetExecutor(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, wrapped, GetExecutor(ctx, wrapped))

	tx := &SqlTxWrapper{}
	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, wrapped))
}

func TestDB_ObservesQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &recordingCollector{}
	wrapped := Wrap(db, collector)

	mock.ExpectExec("UPDATE appointments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id").WillReturnError(errors.New("boom"))

	_, err = wrapped.ExecContext(context.Background(), "UPDATE appointments SET status = $1", "cancelled")
	require.NoError(t, err)

	_, err = wrapped.QueryContext(context.Background(), "SELECT id FROM appointments")
	require.Error(t, err)

	assert.Equal(t, []string{"update", "select"}, collector.operations)
	assert.NoError(t, collector.errs[0])
	assert.Error(t, collector.errs[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_BeginTxWrapsTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := &recordingCollector{}
	wrapped := Wrap(db, collector)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM time_blocks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	_, err = tx.ExecContext(context.Background(), "DELETE FROM time_blocks WHERE id = $1", 1)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, []string{"delete"}, collector.operations)
	assert.NoError(t, mock.ExpectationsWereMet())
}
