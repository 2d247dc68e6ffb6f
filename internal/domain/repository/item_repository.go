package repository

import "github.com/tu-usuario/stocktrack/internal/domain/entity"

// ItemFilter criterios de listado/conteo de inventario. Los filtros presentes
// se combinan con AND; Search es a su vez un OR sobre name/sku/description.
type ItemFilter struct {
	Search   string        // substring case-insensitive sobre name, sku o description
	Category string        // substring case-insensitive sobre category
	Status   entity.Status // match exacto; vacío = sin filtro
}

// ItemRepository define el puerto de persistencia para InventoryItem (DIP).
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	// GetByID devuelve (nil, nil) si no existe; incluye el resumen del creador.
	GetByID(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	Delete(id string) error
	// List aplica filter con orden created_at DESC y paginación limit/offset.
	List(filter ItemFilter, limit, offset int) ([]*entity.InventoryItem, error)
	// Count cuenta los ítems que cumplen filter (sin paginación).
	Count(filter ItemFilter) (int, error)
	CountByStatus(status entity.Status) (int, error)
	// ListLowStock devuelve LOW_STOCK y OUT_OF_STOCK ordenados por cantidad
	// ascendente, sin paginar.
	ListLowStock() ([]*entity.InventoryItem, error)
}
