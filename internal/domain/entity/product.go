package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. SKU es único a nivel global.
type Product struct {
	ID           string
	Name         string
	SKU          string
	Barcode      string
	CategoryID   string // vacío = sin categoría
	UOM          string // unidad de medida: unit, kg, box, ...
	ReorderLevel decimal.Decimal
	UnitCost     decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
