package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Adjustment ajuste de inventario por conteo físico. Se crea en Draft con las
// cantidades contadas; al aplicarse, el delta de cada línea se calcula contra
// el balance registrado en ese momento (contado - registrado).
type Adjustment struct {
	ID          string
	Reference   string // única, ej. ADJ-2024-0001
	WarehouseID string
	Status      string
	Reason      string // cycle_count, damage, theft, correction, ...
	AppliedDate *time.Time // se fija al aplicar
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time
}

// AdjustmentLine línea de ajuste. QtyRecorded se rellena al aplicar con la
// cantidad que había en el balance, para auditoría del delta.
type AdjustmentLine struct {
	ID           string
	AdjustmentID string
	ProductID    string
	QtyCounted   decimal.Decimal
	QtyRecorded  decimal.Decimal
	Notes        string
}
