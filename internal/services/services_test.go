package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/repositories/orders"
	"github.com/dmitrijs2005/storekeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/storekeeper/internal/storage"
	"github.com/stretchr/testify/require"
)

// Seeded fleet: ship 1 (1 in stock, 1250000.00), ship 2 (1, 780000.00),
// ship 3 (1), ship 4 (none in stock), ship 5 (2 in stock). Customers 1..3.
const (
	shipSingle     = 1
	shipDiscount   = 2
	shipSoldOut    = 4
	shipTwoInStock = 5
)

var fixedNow = time.Date(2325, 6, 1, 10, 0, 0, 0, time.UTC)

type fakeRecorder struct {
	mu       sync.Mutex
	reserved int
	placed   []int64
	released int
	rejected []string
}

func (f *fakeRecorder) RecordReserved() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reserved++
}

func (f *fakeRecorder) RecordPlaced(totalCents int64, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placed = append(f.placed, totalCents)
}

func (f *fakeRecorder) RecordReleased(time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.released++
}

func (f *fakeRecorder) RecordRejected(reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejected = append(f.rejected, reason)
}

type testEnv struct {
	db       *sql.DB
	rm       repomanager.RepositoryManager
	orders   *OrderService
	rec      *fakeRecorder
	invoices int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, dialect, err := storage.Open(ctx, "sqlite", filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, storage.Seed(ctx, db))

	env := &testEnv{db: db, rm: repomanager.NewSQLRepositoryManager(dialect), rec: &fakeRecorder{}}
	env.orders = NewOrderService(db, env.rm, 1000, nil, env.rec)
	env.orders.now = func() time.Time { return fixedNow }
	env.orders.newInvoiceID = func() string {
		env.invoices++
		return "INV-" + string(rune('A'+env.invoices-1))
	}
	return env
}

func (e *testEnv) available(t *testing.T, shipID int64) int64 {
	t.Helper()
	s, err := e.rm.Spaceships(e.db).GetByID(context.Background(), shipID)
	require.NoError(t, err)
	return s.Available
}

func (e *testEnv) orderCount(t *testing.T) int64 {
	t.Helper()
	n, err := e.rm.Orders(e.db).Count(context.Background())
	require.NoError(t, err)
	return n
}

// staleManager hands out an orders repository whose first NextID answer is
// stale, as if another writer had inserted in between.
type staleManager struct {
	repomanager.RepositoryManager
	stale int64
	calls *int
}

func (m staleManager) Orders(db dbx.DBTX) orders.Repository {
	return staleOrders{Repository: m.RepositoryManager.Orders(db), m: m}
}

type staleOrders struct {
	orders.Repository
	m staleManager
}

func (o staleOrders) NextID(ctx context.Context) (int64, error) {
	*o.m.calls++
	if *o.m.calls == 1 {
		return o.m.stale, nil
	}
	return o.Repository.NextID(ctx)
}
