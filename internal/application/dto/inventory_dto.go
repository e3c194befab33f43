package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceResponse fila de balance con nombres resueltos.
type BalanceResponse struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	Quantity      decimal.Decimal `json:"quantity"`
	Reserved      decimal.Decimal `json:"reserved"`
	Available     decimal.Decimal `json:"available"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// LedgerEntryResponse asiento del stock ledger.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	WarehouseID     string          `json:"warehouse_id"`
	Change          decimal.Decimal `json:"change"`
	Type            string          `json:"type"`
	ReferenceType   string          `json:"reference_type"`
	ReferenceID     string          `json:"reference_id"`
	ReferenceNumber string          `json:"reference_number"`
	Notes           string          `json:"notes,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LedgerQuery filtros del historial: GET /api/inventory/ledger.
type LedgerQuery struct {
	ProductID   string     `query:"product_id"`
	WarehouseID string     `query:"warehouse_id"`
	Type        string     `query:"type" validate:"omitempty,oneof=receipt delivery transfer_in transfer_out adjustment"`
	From        *time.Time `query:"from"`
	To          *time.Time `query:"to"`
	PageRequest
}
