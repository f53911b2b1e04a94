package entity

import "time"

// Tipos de negocio soportados; determinan los datos semilla del onboarding.
const (
	BusinessTypeFB      = "f&b"
	BusinessTypeRetail  = "retail"
	BusinessTypeService = "service"
)

// Módulos disponibles por negocio.
const (
	ModulePOS          = "pos"
	ModuleInventory    = "inventory"
	ModuleEmployees    = "employees"
	ModuleReports      = "reports"
	ModuleRecipes      = "recipes"
	ModuleTables       = "tables"
	ModuleVariants     = "variants"
	ModuleAppointments = "appointments"
	ModuleCustomers    = "customers"
)

// Business representa el tenant: todo documento operativo del sistema vive
// particionado bajo un business_id. Nunca se elimina físicamente, solo se
// desactiva (is_active = false).
//
// Los campos base (ID, timestamps, IsActive) viven como columnas del
// documento y no se serializan dentro del body.
type Business struct {
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	IsActive  bool      `json:"-"`

	OwnerUID       string         `json:"owner_uid"`
	BusinessName   string         `json:"business_name"`
	BusinessType   string         `json:"business_type"` // ver constantes BusinessType*
	Address        string         `json:"address,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	TaxNumber      string         `json:"tax_number,omitempty"`
	TaxRate        float64        `json:"tax_rate"`
	Currency       string         `json:"currency"` // código ISO: USD, EUR, COP...
	Timezone       string         `json:"timezone"`
	EnabledModules []string       `json:"enabled_modules"`
	Settings       map[string]any `json:"settings,omitempty"`
}

// DefaultModules devuelve los módulos habilitados por defecto según el tipo.
func DefaultModules(businessType string) []string {
	base := []string{ModulePOS, ModuleInventory, ModuleEmployees, ModuleReports}
	switch businessType {
	case BusinessTypeFB:
		return append(base, ModuleRecipes, ModuleTables)
	case BusinessTypeRetail:
		return append(base, ModuleVariants)
	case BusinessTypeService:
		return append(base, ModuleAppointments, ModuleCustomers)
	default:
		return base
	}
}
