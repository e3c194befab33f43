package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAdjustmentRequest body para POST /api/adjustments. Nace en Draft con
// las cantidades contadas; el delta se calcula al aplicar.
type CreateAdjustmentRequest struct {
	Reference   string `json:"reference" validate:"required"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	Notes       string `json:"notes"`
}

// UpdateAdjustmentRequest body para PUT /api/adjustments/:id.
type UpdateAdjustmentRequest struct {
	Reference *string `json:"reference"`
	Reason    *string `json:"reason"`
	Notes     *string `json:"notes"`
	Status    *string `json:"status" validate:"omitempty,oneof=Draft Waiting Ready"`
}

// AddAdjustmentLineRequest body para POST /api/adjustments/:id/lines.
type AddAdjustmentLineRequest struct {
	ProductID  string          `json:"product_id" validate:"required"`
	QtyCounted decimal.Decimal `json:"qty_counted"`
	Notes      string          `json:"notes"`
}

// UpdateAdjustmentLineRequest body para PUT /api/adjustments/lines/:line_id.
type UpdateAdjustmentLineRequest struct {
	QtyCounted *decimal.Decimal `json:"qty_counted"`
	Notes      *string          `json:"notes"`
}

// AdjustmentLineResponse línea de ajuste. Diff = contado - registrado; solo es
// significativo una vez aplicado el ajuste.
type AdjustmentLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	QtyCounted  decimal.Decimal `json:"qty_counted"`
	QtyRecorded decimal.Decimal `json:"qty_recorded"`
	Diff        decimal.Decimal `json:"diff"`
	Notes       string          `json:"notes,omitempty"`
}

// AdjustmentResponse cabecera de ajuste, con líneas cuando se pide el detalle.
type AdjustmentResponse struct {
	ID          string                   `json:"id"`
	Reference   string                   `json:"reference"`
	WarehouseID string                   `json:"warehouse_id"`
	Status      string                   `json:"status"`
	Reason      string                   `json:"reason"`
	AppliedDate *time.Time               `json:"applied_date,omitempty"`
	Notes       string                   `json:"notes,omitempty"`
	CreatedBy   string                   `json:"created_by,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	Lines       []AdjustmentLineResponse `json:"lines,omitempty"`
}
