package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// DeliveryRepository define el puerto de persistencia para entregas y sus líneas.
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	GetByID(id string) (*entity.Delivery, error)
	GetForUpdate(id string) (*entity.Delivery, error)
	GetByReference(reference string) (*entity.Delivery, error)
	Update(delivery *entity.Delivery) error
	MarkDone(id string, shippedAt time.Time) error
	List(status string, limit, offset int) ([]*entity.Delivery, error)
	Count(status string) (int, error)

	AddLine(line *entity.DeliveryLine) error
	GetLine(lineID string) (*entity.DeliveryLine, error)
	UpdateLine(line *entity.DeliveryLine) error
	DeleteLine(lineID string) error
	ListLines(deliveryID string) ([]*entity.DeliveryLine, error)
}
