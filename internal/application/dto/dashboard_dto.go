package dto

import "github.com/shopspring/decimal"

// KPIResponse agregados del dashboard: GET /api/dashboard/kpis.
type KPIResponse struct {
	TotalProducts      int             `json:"total_products"`
	TotalQuantity      decimal.Decimal `json:"total_quantity"`
	TotalValue         decimal.Decimal `json:"total_value"`
	LowStockItems      int             `json:"low_stock_items"`
	OutOfStockItems    int             `json:"out_of_stock_items"`
	PendingReceipts    int             `json:"pending_receipts"`
	PendingDeliveries  int             `json:"pending_deliveries"`
	ScheduledTransfers int             `json:"scheduled_transfers"`
}

// LowStockItemResponse producto por debajo de su nivel de reorden.
type LowStockItemResponse struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	SKU           string          `json:"sku"`
	WarehouseID   string          `json:"warehouse_id"`
	WarehouseName string          `json:"warehouse_name"`
	Available     decimal.Decimal `json:"available"`
	ReorderLevel  decimal.Decimal `json:"reorder_level"`
}
