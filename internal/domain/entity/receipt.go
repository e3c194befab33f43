package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt recepción de mercancía entrante a una bodega.
type Receipt struct {
	ID           string
	Reference    string // única, ej. RCP-2024-0001
	Supplier     string
	WarehouseID  string
	Status       string
	ExpectedDate *time.Time
	ReceivedDate *time.Time // se fija al completar
	Notes        string
	CreatedBy    string
	CreatedAt    time.Time
}

// ReceiptLine línea de recepción: producto y cantidades pedida/recibida.
type ReceiptLine struct {
	ID          string
	ReceiptID   string
	ProductID   string
	QtyOrdered  decimal.Decimal
	QtyReceived decimal.Decimal
	UOM         string
	UnitCost    decimal.Decimal
	Notes       string
}
