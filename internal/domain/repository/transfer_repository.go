package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// TransferRepository define el puerto de persistencia para traslados y sus líneas.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	GetForUpdate(id string) (*entity.Transfer, error)
	GetByReference(reference string) (*entity.Transfer, error)
	Update(transfer *entity.Transfer) error
	MarkDone(id string, completedAt time.Time) error
	List(status string, limit, offset int) ([]*entity.Transfer, error)
	Count(status string) (int, error)

	AddLine(line *entity.TransferLine) error
	GetLine(lineID string) (*entity.TransferLine, error)
	UpdateLine(line *entity.TransferLine) error
	DeleteLine(lineID string) error
	ListLines(transferID string) ([]*entity.TransferLine, error)
}
