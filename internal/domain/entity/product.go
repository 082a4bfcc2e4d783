package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock de un producto. Siempre derivados de Quantity, nunca
// asignados de forma independiente.
const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// LowStockThreshold cantidad a partir de la cual un producto deja de estar
// en stock bajo.
const LowStockThreshold = 20

// Unidades de medida válidas para Product.
const (
	UnitKg    = "kg"
	UnitLiter = "liter"
	UnitPiece = "piece"
	UnitBox   = "box"
	UnitBag   = "bag"
)

// Product representa un commodity del inventario.
// Status se recalcula con DeriveStatus antes de cada create/update; el
// almacén persiste el valor tal cual lo recibe.
type Product struct {
	ID          string
	Name        string
	Category    string
	Quantity    int             // entero no negativo
	Price       decimal.Decimal // precio unitario, positivo
	Unit        string          // kg, liter, piece, box, bag
	Supplier    string
	Status      string // in-stock, low-stock, out-of-stock
	LastUpdated time.Time
}

// DeriveStatus calcula el estado de stock a partir de la cantidad.
// 0 → out-of-stock; 1..19 → low-stock; 20 o más → in-stock.
func DeriveStatus(quantity int) string {
	if quantity == 0 {
		return StatusOutOfStock
	}
	if quantity < LowStockThreshold {
		return StatusLowStock
	}
	return StatusInStock
}
