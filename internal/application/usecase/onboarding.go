package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jortega/comercio-api/internal/domain/entity"
)

// SeedTenant puebla un negocio recién creado: el empleado propietario y un
// catálogo de ejemplo según el tipo de negocio. Debe ejecutarse dentro de la
// misma transacción que crea el negocio.
func SeedTenant(ctx context.Context, repos TxRepos, business *entity.Business, owner *entity.User) error {
	ownerEmployee := &entity.Employee{
		BusinessID:  business.ID,
		UserUID:     owner.ID,
		FullName:    owner.FullName,
		Email:       owner.Email,
		Role:        entity.RoleOwner,
		Permissions: defaultPermissions(entity.RoleOwner),
		Position:    "Propietario",
	}
	if err := repos.Employees.Create(ctx, ownerEmployee); err != nil {
		return err
	}

	for _, c := range seedCategories(business.BusinessType) {
		c.BusinessID = business.ID
		if err := repos.Categories.Create(ctx, c); err != nil {
			return err
		}
		for _, p := range seedProducts(business.BusinessType, c.Name) {
			p.BusinessID = business.ID
			p.CategoryID = c.ID
			if err := repos.Products.Create(ctx, p); err != nil {
				return err
			}
		}
	}

	supplier := &entity.Supplier{
		BusinessID:   business.ID,
		Name:         "Proveedor de ejemplo",
		PaymentTerms: "Contado",
		Notes:        "Creado automáticamente; edítalo o elimínalo.",
	}
	return repos.Suppliers.Create(ctx, supplier)
}

func seedCategories(businessType string) []*entity.Category {
	switch businessType {
	case entity.BusinessTypeFB:
		return []*entity.Category{
			{Name: "Bebidas", ColorCode: "#4e79a7", SortOrder: 1},
			{Name: "Comidas", ColorCode: "#f28e2b", SortOrder: 2},
			{Name: "Postres", ColorCode: "#e15759", SortOrder: 3},
		}
	case entity.BusinessTypeService:
		return []*entity.Category{
			{Name: "Servicios", ColorCode: "#59a14f", SortOrder: 1},
		}
	default: // retail
		return []*entity.Category{
			{Name: "General", ColorCode: "#76b7b2", SortOrder: 1},
			{Name: "Ofertas", ColorCode: "#edc948", SortOrder: 2},
		}
	}
}

func seedProducts(businessType, category string) []*entity.Product {
	price := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	switch businessType {
	case entity.BusinessTypeFB:
		switch category {
		case "Bebidas":
			return []*entity.Product{
				{Name: "Café americano", SKU: "BEB-001", Price: price(4500), StockQuantity: 100, MinStockLevel: 20, Unit: "cup"},
				{Name: "Jugo natural", SKU: "BEB-002", Price: price(6000), StockQuantity: 50, MinStockLevel: 10, Unit: "cup"},
			}
		case "Comidas":
			return []*entity.Product{
				{Name: "Sandwich de la casa", SKU: "COM-001", Price: price(12000), StockQuantity: 30, MinStockLevel: 5, Unit: "pcs"},
			}
		default:
			return nil
		}
	case entity.BusinessTypeService:
		return []*entity.Product{
			{Name: "Sesión estándar", SKU: "SRV-001", Price: price(50000), StockQuantity: 999, Unit: "session"},
		}
	default: // retail
		if category != "General" {
			return nil
		}
		return []*entity.Product{
			{Name: "Producto de ejemplo", SKU: "GEN-001", Price: price(10000), CostPrice: price(6000), StockQuantity: 25, MinStockLevel: 5, Unit: "pcs"},
		}
	}
}
