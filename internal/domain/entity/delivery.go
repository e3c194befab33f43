package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery entrega de mercancía saliente desde una bodega.
type Delivery struct {
	ID            string
	Reference     string // única, ej. DEL-2024-0001
	Customer      string
	WarehouseID   string
	Status        string
	ScheduledDate *time.Time
	ShippedDate   *time.Time // se fija al completar
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
}

// DeliveryLine línea de entrega: producto y cantidades pedida/preparada.
type DeliveryLine struct {
	ID         string
	DeliveryID string
	ProductID  string
	QtyOrdered decimal.Decimal
	QtyPicked  decimal.Decimal
	UOM        string
	Notes      string
}
