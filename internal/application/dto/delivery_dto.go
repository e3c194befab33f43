package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDeliveryRequest body para POST /api/deliveries. Nace en Draft.
type CreateDeliveryRequest struct {
	Reference     string     `json:"reference" validate:"required"`
	Customer      string     `json:"customer"`
	WarehouseID   string     `json:"warehouse_id" validate:"required"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Notes         string     `json:"notes"`
}

// UpdateDeliveryRequest body para PUT /api/deliveries/:id. Campos nil no se tocan.
type UpdateDeliveryRequest struct {
	Reference     *string    `json:"reference"`
	Customer      *string    `json:"customer"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Notes         *string    `json:"notes"`
	Status        *string    `json:"status" validate:"omitempty,oneof=Draft Waiting Ready"`
}

// AddDeliveryLineRequest body para POST /api/deliveries/:id/lines.
type AddDeliveryLineRequest struct {
	ProductID  string          `json:"product_id" validate:"required"`
	QtyOrdered decimal.Decimal `json:"qty_ordered"`
	UOM        string          `json:"uom" validate:"required"`
	Notes      string          `json:"notes"`
}

// UpdateDeliveryLineRequest body para PUT /api/deliveries/lines/:line_id.
type UpdateDeliveryLineRequest struct {
	QtyOrdered *decimal.Decimal `json:"qty_ordered"`
	QtyPicked  *decimal.Decimal `json:"qty_picked"`
	Notes      *string          `json:"notes"`
}

// DeliveryLineResponse línea de entrega.
type DeliveryLineResponse struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	QtyOrdered decimal.Decimal `json:"qty_ordered"`
	QtyPicked  decimal.Decimal `json:"qty_picked"`
	UOM        string          `json:"uom"`
	Notes      string          `json:"notes,omitempty"`
}

// DeliveryResponse cabecera de entrega, con líneas cuando se pide el detalle.
type DeliveryResponse struct {
	ID            string                 `json:"id"`
	Reference     string                 `json:"reference"`
	Customer      string                 `json:"customer,omitempty"`
	WarehouseID   string                 `json:"warehouse_id"`
	Status        string                 `json:"status"`
	ScheduledDate *time.Time             `json:"scheduled_date,omitempty"`
	ShippedDate   *time.Time             `json:"shipped_date,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedBy     string                 `json:"created_by,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	Lines         []DeliveryLineResponse `json:"lines,omitempty"`
}
