package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/stock"
)

// Cantidad cero siempre es OUT_OF_STOCK, sin importar el umbral.
func TestDerive_CantidadCero_EsOutOfStock(t *testing.T) {
	for _, min := range []int{0, 1, 10, 1000} {
		assert.Equal(t, entity.StatusOutOfStock, stock.Derive(0, min),
			"quantity=0 con minQuantity=%d debe ser OUT_OF_STOCK", min)
	}
}

// Cantidad positiva por debajo o igual al umbral es LOW_STOCK.
func TestDerive_CantidadHastaElUmbral_EsLowStock(t *testing.T) {
	cases := []struct{ qty, min int }{
		{1, 1},   // justo en el umbral
		{1, 10},
		{5, 10},
		{10, 10}, // borde superior inclusivo
	}
	for _, tc := range cases {
		assert.Equal(t, entity.StatusLowStock, stock.Derive(tc.qty, tc.min),
			"quantity=%d minQuantity=%d debe ser LOW_STOCK", tc.qty, tc.min)
	}
}

// Cantidad por encima del umbral es IN_STOCK.
func TestDerive_CantidadSobreElUmbral_EsInStock(t *testing.T) {
	cases := []struct{ qty, min int }{
		{1, 0},
		{11, 10},
		{1000, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, entity.StatusInStock, stock.Derive(tc.qty, tc.min),
			"quantity=%d minQuantity=%d debe ser IN_STOCK", tc.qty, tc.min)
	}
}
