package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// KPIResult agregados del dashboard. TotalValue es quantity × unit_cost sumado
// sobre todos los balances.
type KPIResult struct {
	TotalProducts      int
	TotalQuantity      decimal.Decimal
	TotalValue         decimal.Decimal
	LowStockItems      int
	OutOfStockItems    int
	PendingReceipts    int
	PendingDeliveries  int
	ScheduledTransfers int
}

// LowStockRow producto por debajo de su nivel de reorden.
type LowStockRow struct {
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	Available     decimal.Decimal
	ReorderLevel  decimal.Decimal
}

// DashboardRepository consultas de solo lectura para los KPIs del dashboard.
type DashboardRepository interface {
	GetKPIs(ctx context.Context) (*KPIResult, error)
	ListLowStock(ctx context.Context, limit int) ([]LowStockRow, error)
}
