package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/models"
	"github.com/dmitrijs2005/storekeeper/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *SQLRepository {
	t.Helper()
	ctx := context.Background()
	db, dialect, err := storage.Open(ctx, "sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, storage.Seed(ctx, db))
	return NewSQLRepository(db, dialect)
}

func newRepoWithMock(t *testing.T) (*SQLRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewSQLRepository(db, dbx.Postgres), mock, db
}

func order(id, customerID, shipID int64) *models.Order {
	return &models.Order{
		ID:          id,
		InvoiceID:   fmt.Sprintf("inv-%d", id),
		CustomerID:  customerID,
		SpaceshipID: shipID,
		OrderedAt:   time.Date(2325, 3, 1, 12, 30, 0, 0, time.UTC),
		Destination: "Ceres",
		Status:      models.OrderStatusProcessing,
		Discount:    500,
		Total:       137_499_450,
	}
}

func TestInsertAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	o := order(1, 2, 3)
	require.NoError(t, repo.Insert(ctx, o))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, o.OrderedAt.Equal(got.OrderedAt), "ordered_at %v != %v", o.OrderedAt, got.OrderedAt)
	got.OrderedAt = o.OrderedAt
	assert.Equal(t, o, got)
}

func TestGetByID_NotFound(t *testing.T) {
	_, err := setupRepo(t).GetByID(context.Background(), 1)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInsert_DuplicateIDIsUniqueViolation(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	require.NoError(t, repo.Insert(ctx, order(1, 1, 1)))
	err := repo.Insert(ctx, order(1, 2, 2))
	require.Error(t, err)
	assert.True(t, dbx.IsUniqueViolation(err))
}

func TestNextID_SkipsGaps(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	id, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	for _, i := range []int64{1, 2, 5} {
		require.NoError(t, repo.Insert(ctx, order(i, 1, 1)))
	}

	id, err = repo.NextID(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, id)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestListByCustomer(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	require.NoError(t, repo.Insert(ctx, order(2, 1, 2)))
	require.NoError(t, repo.Insert(ctx, order(1, 1, 1)))
	require.NoError(t, repo.Insert(ctx, order(3, 2, 3)))

	list, err := repo.ListByCustomer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.EqualValues(t, 1, list[0].ID)
	assert.EqualValues(t, 2, list[1].ID)
	assert.Equal(t, models.OrderStatusProcessing, list[0].Status)

	list, err = repo.ListByCustomer(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPostgres_InsertRebinds(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	o := order(6, 1, 2)
	q := `(?s)^INSERT INTO orders \(id, invoice_id, .*total_cents\) VALUES \(\$1, \$2, \$3, \$4, \$5, \$6, \$7, \$8, \$9\)$`
	mock.ExpectExec(q).
		WithArgs(o.ID, o.InvoiceID, o.CustomerID, o.SpaceshipID, o.OrderedAt, o.Destination, "Processing", int64(500), int64(137_499_450)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Insert(context.Background(), o))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ListByCustomer(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	at := time.Date(2325, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "invoice_id", "customer_id", "spaceship_id", "ordered_at", "destination", "status", "discount_cents", "total_cents"}).
		AddRow(int64(4), "inv", int64(7), int64(1), at, "Titan", "Processing", int64(0), int64(1100))
	mock.ExpectQuery(`FROM orders WHERE customer_id = \$1 ORDER BY id ASC$`).WithArgs(int64(7)).WillReturnRows(rows)

	list, err := repo.ListByCustomer(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.Money(1100), list[0].Total)
	assert.Equal(t, "Titan", list[0].Destination)
}

func TestPostgres_DBErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("next id", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()
		mock.ExpectQuery(`FROM orders`).WillReturnError(errors.New("db down"))

		_, err := repo.NextID(ctx)
		require.ErrorContains(t, err, "db error: db down")
	})

	t.Run("insert", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()
		mock.ExpectExec(`^INSERT INTO orders`).WillReturnError(errors.New("db down"))

		err := repo.Insert(ctx, order(1, 1, 1))
		require.ErrorContains(t, err, "failed to insert order: db down")
	})

	t.Run("get", func(t *testing.T) {
		repo, mock, db := newRepoWithMock(t)
		defer db.Close()
		mock.ExpectQuery(`FROM orders WHERE id = \$1$`).WithArgs(int64(1)).WillReturnError(errors.New("db down"))

		_, err := repo.GetByID(ctx, 1)
		require.ErrorContains(t, err, "db error: db down")
	})
}
