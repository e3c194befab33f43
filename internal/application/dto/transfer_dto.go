package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransferRequest body para POST /api/transfers. Nace en Draft.
type CreateTransferRequest struct {
	Reference       string     `json:"reference" validate:"required"`
	FromWarehouseID string     `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   string     `json:"to_warehouse_id" validate:"required,nefield=FromWarehouseID"`
	TransferDate    *time.Time `json:"transfer_date"`
	Notes           string     `json:"notes"`
}

// UpdateTransferRequest body para PUT /api/transfers/:id. Campos nil no se tocan.
type UpdateTransferRequest struct {
	Reference    *string    `json:"reference"`
	TransferDate *time.Time `json:"transfer_date"`
	Notes        *string    `json:"notes"`
	Status       *string    `json:"status" validate:"omitempty,oneof=Draft Waiting Ready"`
}

// AddTransferLineRequest body para POST /api/transfers/:id/lines.
type AddTransferLineRequest struct {
	ProductID  string          `json:"product_id" validate:"required"`
	QtyOrdered decimal.Decimal `json:"qty_ordered"`
	UOM        string          `json:"uom" validate:"required"`
	Notes      string          `json:"notes"`
}

// UpdateTransferLineRequest body para PUT /api/transfers/lines/:line_id.
type UpdateTransferLineRequest struct {
	QtyOrdered *decimal.Decimal `json:"qty_ordered"`
	QtySent    *decimal.Decimal `json:"qty_sent"`
	Notes      *string          `json:"notes"`
}

// TransferLineResponse línea de traslado.
type TransferLineResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	QtyOrdered decimal.Decimal `json:"qty_ordered"`
	QtySent    decimal.Decimal `json:"qty_sent"`
	UOM        string          `json:"uom"`
	Notes      string          `json:"notes,omitempty"`
}

// TransferResponse cabecera de traslado, con líneas cuando se pide el detalle.
type TransferResponse struct {
	ID              string                 `json:"id"`
	Reference       string                 `json:"reference"`
	FromWarehouseID string                 `json:"from_warehouse_id"`
	ToWarehouseID   string                 `json:"to_warehouse_id"`
	Status          string                 `json:"status"`
	TransferDate    *time.Time             `json:"transfer_date,omitempty"`
	CompletedDate   *time.Time             `json:"completed_date,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	CreatedBy       string                 `json:"created_by,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	Lines           []TransferLineResponse `json:"lines,omitempty"`
}
