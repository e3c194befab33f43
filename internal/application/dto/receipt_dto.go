package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceiptRequest body para POST /api/receipts. Nace en Draft.
type CreateReceiptRequest struct {
	Reference    string     `json:"reference" validate:"required"`
	Supplier     string     `json:"supplier"`
	WarehouseID  string     `json:"warehouse_id" validate:"required"`
	ExpectedDate *time.Time `json:"expected_date"`
	Notes        string     `json:"notes"`
}

// UpdateReceiptRequest body para PUT /api/receipts/:id. Campos nil no se tocan.
// Status solo admite transiciones no terminales (Draft/Waiting/Ready/Canceled).
type UpdateReceiptRequest struct {
	Reference    *string    `json:"reference"`
	Supplier     *string    `json:"supplier"`
	ExpectedDate *time.Time `json:"expected_date"`
	Notes        *string    `json:"notes"`
	Status       *string    `json:"status" validate:"omitempty,oneof=Draft Waiting Ready"`
}

// AddReceiptLineRequest body para POST /api/receipts/:id/lines.
type AddReceiptLineRequest struct {
	ProductID  string           `json:"product_id" validate:"required"`
	QtyOrdered decimal.Decimal  `json:"qty_ordered"`
	UOM        string           `json:"uom" validate:"required"`
	UnitCost   *decimal.Decimal `json:"unit_cost"`
	Notes      string           `json:"notes"`
}

// UpdateReceiptLineRequest body para PUT /api/receipts/lines/:line_id.
type UpdateReceiptLineRequest struct {
	QtyOrdered  *decimal.Decimal `json:"qty_ordered"`
	QtyReceived *decimal.Decimal `json:"qty_received"`
	Notes       *string          `json:"notes"`
}

// ReceiptLineResponse línea de recepción.
type ReceiptLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	QtyOrdered  decimal.Decimal `json:"qty_ordered"`
	QtyReceived decimal.Decimal `json:"qty_received"`
	UOM         string          `json:"uom"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Notes       string          `json:"notes,omitempty"`
}

// ReceiptResponse cabecera de recepción, con líneas cuando se pide el detalle.
type ReceiptResponse struct {
	ID           string                `json:"id"`
	Reference    string                `json:"reference"`
	Supplier     string                `json:"supplier,omitempty"`
	WarehouseID  string                `json:"warehouse_id"`
	Status       string                `json:"status"`
	ExpectedDate *time.Time            `json:"expected_date,omitempty"`
	ReceivedDate *time.Time            `json:"received_date,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	CreatedBy    string                `json:"created_by,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	Lines        []ReceiptLineResponse `json:"lines,omitempty"`
}
