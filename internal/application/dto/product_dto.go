package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. No trae ID ni
// LastUpdated (los asigna el almacén) ni Status (se deriva de Quantity).
type CreateProductRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category" validate:"required,min=1,max=100"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
	Unit     string          `json:"unit" validate:"required,oneof=kg liter piece box bag"`
	Supplier string          `json:"supplier" validate:"required,min=1,max=200"`
}

// UpdateProductRequest entrada parcial para actualizar un producto. Los
// campos nil no se tocan. Status no es actualizable: se recalcula cuando
// cambia Quantity.
type UpdateProductRequest struct {
	Name     *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Quantity *int             `json:"quantity" validate:"omitempty,gte=0"`
	Price    *decimal.Decimal `json:"price"`
	Unit     *string          `json:"unit" validate:"omitempty,oneof=kg liter piece box bag"`
	Supplier *string          `json:"supplier" validate:"omitempty,min=1,max=200"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Supplier    string          `json:"supplier"`
	Status      string          `json:"status"`
	LastUpdated time.Time       `json:"last_updated"`
}

// ProductListResponse lista de productos (snapshot completo, sin paginación).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
