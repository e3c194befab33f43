package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name         string           `json:"name" validate:"required"`
	SKU          string           `json:"sku" validate:"required"`
	Barcode      string           `json:"barcode"`
	CategoryID   string           `json:"category_id"`
	UOM          string           `json:"uom" validate:"required"`
	ReorderLevel *decimal.Decimal `json:"reorder_level"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	Barcode      *string          `json:"barcode"`
	CategoryID   *string          `json:"category_id"`
	UOM          *string          `json:"uom"`
	ReorderLevel *decimal.Decimal `json:"reorder_level"`
	UnitCost     *decimal.Decimal `json:"unit_cost"`
	IsActive     *bool            `json:"is_active"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Barcode      string          `json:"barcode,omitempty"`
	CategoryID   string          `json:"category_id,omitempty"`
	UOM          string          `json:"uom"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
