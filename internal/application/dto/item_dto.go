package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
)

// CreateItemRequest entrada para crear un ítem de inventario. Status es
// opcional: si viene, se guarda tal cual; si no, se deriva de
// quantity/minQuantity.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1"`
	SKU         string          `json:"sku" validate:"required,min=1"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	MinQuantity int             `json:"minQuantity" validate:"min=0"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Location    string          `json:"location"`
	Status      *entity.Status  `json:"status" validate:"omitempty,oneof=IN_STOCK LOW_STOCK OUT_OF_STOCK"`
}

// UpdateItemRequest patch cerrado para actualización parcial: enumera
// exactamente los campos mutables; identificadores y propiedad quedan fuera.
type UpdateItemRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	SKU         *string          `json:"sku" validate:"omitempty,min=1"`
	Description *string          `json:"description"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
	MinQuantity *int             `json:"minQuantity" validate:"omitempty,min=0"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Location    *string          `json:"location"`
	Status      *entity.Status   `json:"status" validate:"omitempty,oneof=IN_STOCK LOW_STOCK OUT_OF_STOCK"`
}

// CreatorResponse resumen del usuario creador embebido en cada ítem.
type CreatorResponse struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
}

// ItemResponse salida de un ítem de inventario.
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	MinQuantity int             `json:"minQuantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
	Location    string          `json:"location,omitempty"`
	Status      entity.Status   `json:"status"`
	CreatedBy   CreatorResponse `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ItemListResponse lista paginada de ítems con su envelope.
type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Pagination Pagination     `json:"pagination"`
}

// StatsResponse conteos agregados de inventario. Los cuatro números salen de
// consultas independientes; bajo escrituras concurrentes pueden no cuadrar.
type StatsResponse struct {
	Total      int `json:"total"`
	InStock    int `json:"inStock"`
	LowStock   int `json:"lowStock"`
	OutOfStock int `json:"outOfStock"`
}
