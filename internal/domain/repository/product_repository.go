package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	CategoryID string
	IsActive   *bool
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Count(filter ProductFilter) (int, error)
}
