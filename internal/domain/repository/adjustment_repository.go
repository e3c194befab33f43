package repository

import (
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// AdjustmentRepository define el puerto de persistencia para ajustes y sus líneas.
type AdjustmentRepository interface {
	Create(adjustment *entity.Adjustment) error
	GetByID(id string) (*entity.Adjustment, error)
	GetForUpdate(id string) (*entity.Adjustment, error)
	GetByReference(reference string) (*entity.Adjustment, error)
	Update(adjustment *entity.Adjustment) error
	MarkDone(id string, appliedAt time.Time) error
	List(status string, limit, offset int) ([]*entity.Adjustment, error)
	Count(status string) (int, error)

	AddLine(line *entity.AdjustmentLine) error
	GetLine(lineID string) (*entity.AdjustmentLine, error)
	UpdateLine(line *entity.AdjustmentLine) error
	DeleteLine(lineID string) error
	ListLines(adjustmentID string) ([]*entity.AdjustmentLine, error)
}
