package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance representa la existencia actual de un producto en una bodega
// (proyección materializada del ledger; a lo sumo una fila por par producto-bodega).
type Balance struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	Reserved    decimal.Decimal
	UpdatedAt   time.Time
}

// Available devuelve la cantidad disponible (quantity - reserved).
// Es un valor derivado, nunca se persiste.
func (b *Balance) Available() decimal.Decimal {
	return b.Quantity.Sub(b.Reserved)
}
