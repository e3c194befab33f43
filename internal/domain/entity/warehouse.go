package entity

import "time"

// Warehouse bodega física donde se almacena inventario.
type Warehouse struct {
	ID            string
	Name          string
	Code          string
	Address       string
	City          string
	Country       string
	ContactPerson string
	ContactPhone  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
