package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jortega/comercio-api/internal/application/usecase"
	"github.com/jortega/comercio-api/internal/domain/document"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/domain/repository"
)

// Repositorios en memoria para probar los casos de uso sin base de datos.
// Imitan el contrato real: Create estampa id y timestamps, los Get devuelven
// (nil, nil) cuando no hay registro y los listados no filtran (alcanza para
// estos tests, que no ejercitan la consulta paginada aquí).

var fakeSeq int

func nextID(prefix string) string {
	fakeSeq++
	return fmt.Sprintf("%s-%04d", prefix, fakeSeq)
}

func stamp(id *string, createdAt, updatedAt *time.Time, isActive *bool, prefix string) {
	if *id == "" {
		*id = nextID(prefix)
	}
	now := time.Now().UTC()
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
	*isActive = true
}

// ── Products ─────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	items map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.IsActive, "prod")
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, businessID, id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok || p.BusinessID != businessID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, businessID, sku string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.BusinessID == businessID && p.SKU == sku && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	p.UpdatedAt = time.Now().UTC()
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) SoftDelete(_ context.Context, businessID, id string) error {
	if p, ok := r.items[id]; ok && p.BusinessID == businessID {
		p.IsActive = false
	}
	return nil
}

func (r *fakeProductRepo) HardDelete(_ context.Context, businessID, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, businessID string, _ document.QueryOptions) (*repository.Page[entity.Product], error) {
	page := &repository.Page[entity.Product]{}
	for _, p := range r.items {
		if p.BusinessID == businessID {
			cp := *p
			page.Items = append(page.Items, &cp)
		}
	}
	return page, nil
}

// ── Customers ────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	items map[string]*entity.Customer
}

var _ repository.CustomerRepository = (*fakeCustomerRepo)(nil)

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.IsActive, "cust")
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, businessID, id string) (*entity.Customer, error) {
	c, ok := r.items[id]
	if !ok || c.BusinessID != businessID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) SoftDelete(_ context.Context, businessID, id string) error {
	if c, ok := r.items[id]; ok && c.BusinessID == businessID {
		c.IsActive = false
	}
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context, businessID string, _ document.QueryOptions) (*repository.Page[entity.Customer], error) {
	page := &repository.Page[entity.Customer]{}
	for _, c := range r.items {
		if c.BusinessID == businessID {
			cp := *c
			page.Items = append(page.Items, &cp)
		}
	}
	return page, nil
}

// ── Transactions ─────────────────────────────────────────────────────────────

type fakeTransactionRepo struct {
	items map[string]*entity.Transaction
}

var _ repository.TransactionRepository = (*fakeTransactionRepo)(nil)

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{items: map[string]*entity.Transaction{}}
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	stamp(&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.IsActive, "txn")
	cp := *t
	r.items[t.ID] = &cp
	return nil
}

func (r *fakeTransactionRepo) GetByID(_ context.Context, businessID, id string) (*entity.Transaction, error) {
	t, ok := r.items[id]
	if !ok || t.BusinessID != businessID {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTransactionRepo) List(_ context.Context, businessID string, _ document.QueryOptions) (*repository.Page[entity.Transaction], error) {
	page := &repository.Page[entity.Transaction]{}
	for _, t := range r.items {
		if t.BusinessID == businessID {
			cp := *t
			page.Items = append(page.Items, &cp)
		}
	}
	return page, nil
}

// ── Businesses ───────────────────────────────────────────────────────────────

type fakeBusinessRepo struct {
	items map[string]*entity.Business
}

var _ repository.BusinessRepository = (*fakeBusinessRepo)(nil)

func newFakeBusinessRepo() *fakeBusinessRepo {
	return &fakeBusinessRepo{items: map[string]*entity.Business{}}
}

func (r *fakeBusinessRepo) Create(_ context.Context, b *entity.Business) error {
	stamp(&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.IsActive, "biz")
	cp := *b
	r.items[b.ID] = &cp
	return nil
}

func (r *fakeBusinessRepo) GetByID(_ context.Context, id string) (*entity.Business, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBusinessRepo) Update(_ context.Context, b *entity.Business) error {
	cp := *b
	r.items[b.ID] = &cp
	return nil
}

func (r *fakeBusinessRepo) Deactivate(_ context.Context, id string) error {
	if b, ok := r.items[id]; ok {
		b.IsActive = false
	}
	return nil
}

func (r *fakeBusinessRepo) ListByOwner(_ context.Context, ownerUID string) ([]*entity.Business, error) {
	var out []*entity.Business
	for _, b := range r.items {
		if b.OwnerUID == ownerUID && b.IsActive {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ── Employees ────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	items map[string]*entity.Employee
}

var _ repository.EmployeeRepository = (*fakeEmployeeRepo)(nil)

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{items: map[string]*entity.Employee{}}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.IsActive, "emp")
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, businessID, id string) (*entity.Employee, error) {
	e, ok := r.items[id]
	if !ok || e.BusinessID != businessID {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEmployeeRepo) GetByUserUID(_ context.Context, businessID, userUID string) (*entity.Employee, error) {
	for _, e := range r.items {
		if e.BusinessID == businessID && e.UserUID == userUID && e.IsActive {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	cp := *e
	r.items[e.ID] = &cp
	return nil
}

func (r *fakeEmployeeRepo) SoftDelete(_ context.Context, businessID, id string) error {
	if e, ok := r.items[id]; ok && e.BusinessID == businessID {
		e.IsActive = false
	}
	return nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, businessID string, _ document.QueryOptions) (*repository.Page[entity.Employee], error) {
	page := &repository.Page[entity.Employee]{}
	for _, e := range r.items {
		if e.BusinessID == businessID {
			cp := *e
			page.Items = append(page.Items, &cp)
		}
	}
	return page, nil
}

// ── Categories ───────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	items map[string]*entity.Category
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.IsActive, "cat")
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, businessID, id string) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok || c.BusinessID != businessID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) SoftDelete(_ context.Context, businessID, id string) error {
	if c, ok := r.items[id]; ok && c.BusinessID == businessID {
		c.IsActive = false
	}
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context, businessID string, _ document.QueryOptions) (*repository.Page[entity.Category], error) {
	page := &repository.Page[entity.Category]{}
	for _, c := range r.items {
		if c.BusinessID == businessID {
			cp := *c
			page.Items = append(page.Items, &cp)
		}
	}
	return page, nil
}

// ── Suppliers ────────────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	items map[string]*entity.Supplier
}

var _ repository.SupplierRepository = (*fakeSupplierRepo)(nil)

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{items: map[string]*entity.Supplier{}}
}

func (r *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	stamp(&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.IsActive, "sup")
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) GetByID(_ context.Context, businessID, id string) (*entity.Supplier, error) {
	s, ok := r.items[id]
	if !ok || s.BusinessID != businessID {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *fakeSupplierRepo) SoftDelete(_ context.Context, businessID, id string) error {
	if s, ok := r.items[id]; ok && s.BusinessID == businessID {
		s.IsActive = false
	}
	return nil
}

func (r *fakeSupplierRepo) List(_ context.Context, businessID string, _ document.QueryOptions) (*repository.Page[entity.Supplier], error) {
	page := &repository.Page[entity.Supplier]{}
	for _, s := range r.items {
		if s.BusinessID == businessID {
			cp := *s
			page.Items = append(page.Items, &cp)
		}
	}
	return page, nil
}

// ── Runner y recibos ─────────────────────────────────────────────────────────

// fakeRunner ejecuta la función directamente con los repos dados. No simula
// rollback: los tests que provocan errores no inspeccionan estado intermedio.
type fakeRunner struct {
	repos usecase.TxRepos
}

var _ usecase.TxRunner = (*fakeRunner)(nil)

func (r *fakeRunner) WithinTx(ctx context.Context, fn func(context.Context, usecase.TxRepos) error) error {
	return fn(ctx, r.repos)
}

type fakeReceipts struct{}

var _ usecase.ReceiptGenerator = (*fakeReceipts)(nil)

func (fakeReceipts) GenerateReceipt(_ context.Context, _ *entity.Business, _ *entity.Transaction) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}
