// Package stock contiene la derivación canónica del estado de inventario.
package stock

import "github.com/tu-usuario/stocktrack/internal/domain/entity"

// Derive calcula el estado canónico de un ítem a partir de su cantidad y su
// umbral de reposición:
//
//	quantity == 0               → OUT_OF_STOCK
//	0 < quantity <= minQuantity → LOW_STOCK
//	quantity > minQuantity      → IN_STOCK
//
// Función pura; los casos de uso deciden CUÁNDO invocarla (no se invoca si el
// escritor fija un status explícito).
func Derive(quantity, minQuantity int) entity.Status {
	switch {
	case quantity == 0:
		return entity.StatusOutOfStock
	case quantity <= minQuantity:
		return entity.StatusLowStock
	default:
		return entity.StatusInStock
	}
}
