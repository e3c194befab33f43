package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// LedgerFilter filtros para el historial del stock ledger.
type LedgerFilter struct {
	ProductID   string
	WarehouseID string
	Type        string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// LedgerRepository define el puerto de persistencia del stock ledger.
// Los asientos son inmutables: solo alta y lectura.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	List(filter LedgerFilter) ([]*entity.LedgerEntry, error)
	Count(filter LedgerFilter) (int, error)
	// SumByPair suma los deltas de un par (producto, bodega). Debe igualar
	// la cantidad de la fila de balance de ese par.
	SumByPair(productID, warehouseID string) (decimal.Decimal, error)
}
