package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento en el stock ledger. El signo del delta sigue la convención:
// receipt y transfer_in positivos; delivery y transfer_out negativos;
// adjustment lleva el signo de (contado - registrado).
const (
	LedgerTypeReceipt     = "receipt"
	LedgerTypeDelivery    = "delivery"
	LedgerTypeTransferIn  = "transfer_in"
	LedgerTypeTransferOut = "transfer_out"
	LedgerTypeAdjustment  = "adjustment"
)

// LedgerEntry es un asiento del stock ledger: registro inmutable de cada
// evento que cambia cantidades. La suma de Change por (producto, bodega)
// debe igualar la fila de Balance de ese par en todo momento.
type LedgerEntry struct {
	ID              string
	ProductID       string
	WarehouseID     string
	Change          decimal.Decimal // delta con signo
	Type            string          // receipt | delivery | transfer_in | transfer_out | adjustment
	ReferenceType   string          // tabla de la operación origen
	ReferenceID     string          // id de la operación origen
	ReferenceNumber string          // referencia legible, ej. RCP-2024-0001
	Notes           string
	CreatedBy       string
	CreatedAt       time.Time
}
