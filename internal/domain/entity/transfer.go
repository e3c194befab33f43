package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer traslado de mercancía entre dos bodegas. Al completarse genera
// dos asientos por línea: transfer_out en origen y transfer_in en destino.
type Transfer struct {
	ID              string
	Reference       string // única, ej. TRF-2024-0001
	FromWarehouseID string
	ToWarehouseID   string
	Status          string
	TransferDate    *time.Time
	CompletedDate   *time.Time // se fija al completar
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
}

// TransferLine línea de traslado.
type TransferLine struct {
	ID         string
	TransferID string
	ProductID  string
	QtyOrdered decimal.Decimal
	QtySent    decimal.Decimal
	UOM        string
	Notes      string
}
