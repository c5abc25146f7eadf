// Package repomanager vends repositories bound to a DBTX for one SQL dialect,
// so services can run the same repositories on *sql.DB or inside a
// transaction.
package repomanager

import (
	"github.com/dmitrijs2005/storekeeper/internal/dbx"
	"github.com/dmitrijs2005/storekeeper/internal/repositories/customers"
	"github.com/dmitrijs2005/storekeeper/internal/repositories/orders"
	"github.com/dmitrijs2005/storekeeper/internal/repositories/spaceships"
)

type RepositoryManager interface {
	Dialect() dbx.Dialect
	Customers(db dbx.DBTX) customers.Repository
	Spaceships(db dbx.DBTX) spaceships.Repository
	Orders(db dbx.DBTX) orders.Repository
}

// SQLRepositoryManager returns the database/sql implementations.
type SQLRepositoryManager struct {
	dialect dbx.Dialect
}

// NewSQLRepositoryManager constructs a RepositoryManager for dialect.
func NewSQLRepositoryManager(dialect dbx.Dialect) *SQLRepositoryManager {
	return &SQLRepositoryManager{dialect: dialect}
}

func (m *SQLRepositoryManager) Dialect() dbx.Dialect { return m.dialect }

// Customers returns a customers.Repository bound to db.
func (m *SQLRepositoryManager) Customers(db dbx.DBTX) customers.Repository {
	return customers.NewSQLRepository(db, m.dialect)
}

// Spaceships returns a spaceships.Repository bound to db.
func (m *SQLRepositoryManager) Spaceships(db dbx.DBTX) spaceships.Repository {
	return spaceships.NewSQLRepository(db, m.dialect)
}

// Orders returns an orders.Repository bound to db.
func (m *SQLRepositoryManager) Orders(db dbx.DBTX) orders.Repository {
	return orders.NewSQLRepository(db, m.dialect)
}
