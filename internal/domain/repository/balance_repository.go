package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// BalanceView fila de balance con nombres resueltos, para listados y reportes.
type BalanceView struct {
	ProductID     string
	ProductName   string
	SKU           string
	WarehouseID   string
	WarehouseName string
	Quantity      decimal.Decimal
	Reserved      decimal.Decimal
	Available     decimal.Decimal
	UpdatedAt     time.Time
}

// BalanceFilter filtros de listado de balances.
type BalanceFilter struct {
	WarehouseID string
	ProductID   string
	Limit       int
	Offset      int
}

// BalanceRepository define el puerto para consultar/actualizar la proyección
// de balance por producto+bodega. Las mutaciones se usan dentro de transacciones.
type BalanceRepository interface {
	// Get devuelve el balance actual; si no existe fila, devuelve una en cero.
	Get(productID, warehouseID string) (*entity.Balance, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.Balance, error)
	Upsert(balance *entity.Balance) error
	List(filter BalanceFilter) ([]BalanceView, error)
	Count(filter BalanceFilter) (int, error)
}
