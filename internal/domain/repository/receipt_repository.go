package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ReceiptRepository define el puerto de persistencia para recepciones y sus líneas.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	// GetForUpdate bloquea la cabecera durante la completación (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Receipt, error)
	GetByReference(reference string) (*entity.Receipt, error)
	Update(receipt *entity.Receipt) error
	// MarkDone fija status=Done y la fecha de recepción. Solo dentro de la tx de completación.
	MarkDone(id string, receivedAt time.Time) error
	List(status string, limit, offset int) ([]*entity.Receipt, error)
	Count(status string) (int, error)

	AddLine(line *entity.ReceiptLine) error
	GetLine(lineID string) (*entity.ReceiptLine, error)
	UpdateLine(line *entity.ReceiptLine) error
	DeleteLine(lineID string) error
	ListLines(receiptID string) ([]*entity.ReceiptLine, error)
}
