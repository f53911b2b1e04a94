package usecase

import (
	"context"

	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción de base de
// datos. Los casos de uso que necesitan atomicidad (onboarding, registrar una
// venta con descuento de stock) operan sobre estas instancias, no sobre los
// repositorios del pool.
type TxRepos struct {
	Businesses   repository.BusinessRepository
	Users        repository.UserRepository
	Employees    repository.EmployeeRepository
	Categories   repository.CategoryRepository
	Products     repository.ProductRepository
	Suppliers    repository.SupplierRepository
	Customers    repository.CustomerRepository
	Transactions repository.TransactionRepository
}

// TxRunner ejecuta fn dentro de una transacción: si fn devuelve error se
// revierte todo, si no se confirma. La infraestructura lo implementa.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos TxRepos) error) error
}

// ReceiptGenerator genera el ticket de una transacción en PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, business *entity.Business, tx *entity.Transaction) ([]byte, error)
}
