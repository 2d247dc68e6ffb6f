package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status estado de stock de un ítem de inventario.
type Status string

// Estados válidos para InventoryItem.
const (
	StatusInStock    Status = "IN_STOCK"
	StatusLowStock   Status = "LOW_STOCK"
	StatusOutOfStock Status = "OUT_OF_STOCK"
)

// Valid indica si el estado pertenece al enum cerrado.
func (s Status) Valid() bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}

// CreatorRef resumen del usuario creador que acompaña al ítem en lecturas.
type CreatorRef struct {
	ID       string
	Username string
	Role     Role
}

// InventoryItem representa un registro de inventario. Status se deriva de
// Quantity/MinQuantity salvo que el escritor lo fije explícitamente.
type InventoryItem struct {
	ID          string
	Name        string
	SKU         string
	Description string
	Quantity    int
	MinQuantity int // umbral de reposición
	Price       decimal.Decimal
	Category    string
	Location    string
	Status      Status
	CreatedByID string
	CreatedBy   CreatorRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
