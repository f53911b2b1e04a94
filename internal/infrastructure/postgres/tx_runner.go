package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jortega/comercio-api/internal/application/usecase"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner implementación de usecase.TxRunner sobre pgxpool: abre una
// transacción, ata todos los repositorios a ella y confirma o revierte según
// el resultado de fn.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner sobre el pool compartido.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) WithinTx(ctx context.Context, fn func(ctx context.Context, repos usecase.TxRepos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	// Rollback tras Commit es un no-op.
	defer tx.Rollback(ctx)

	repos := usecase.TxRepos{
		Businesses:   NewBusinessRepository(tx),
		Users:        NewUserRepository(tx),
		Employees:    NewEmployeeRepository(tx),
		Categories:   NewCategoryRepository(tx),
		Products:     NewProductRepository(tx),
		Suppliers:    NewSupplierRepository(tx),
		Customers:    NewCustomerRepository(tx),
		Transactions: NewTransactionRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
