package operations

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// AdjustmentUseCase CRUD de ajustes de inventario. Aplicar un ajuste fija el
// balance a la cantidad contada y registra la diferencia en el ledger.
type AdjustmentUseCase struct {
	repo          repository.AdjustmentRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	mutator       *inventory.Mutator
}

// NewAdjustmentUseCase construye el caso de uso.
func NewAdjustmentUseCase(
	repo repository.AdjustmentRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	mutator *inventory.Mutator,
) *AdjustmentUseCase {
	return &AdjustmentUseCase{repo: repo, warehouseRepo: warehouseRepo, productRepo: productRepo, mutator: mutator}
}

// Create crea un ajuste en Draft sobre una bodega existente.
func (uc *AdjustmentUseCase) Create(userID string, in dto.CreateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByReference(in.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateReference
	}
	adjustment := &entity.Adjustment{
		ID:          uuid.New().String(),
		Reference:   in.Reference,
		WarehouseID: in.WarehouseID,
		Status:      entity.StatusDraft,
		Reason:      in.Reason,
		Notes:       in.Notes,
		CreatedBy:   userID,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(adjustment); err != nil {
		return nil, err
	}
	return toAdjustmentResponse(adjustment, nil), nil
}

// GetByID devuelve el ajuste con sus líneas.
func (uc *AdjustmentUseCase) GetByID(id string) (*dto.AdjustmentResponse, error) {
	adjustment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if adjustment == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.repo.ListLines(id)
	if err != nil {
		return nil, err
	}
	return toAdjustmentResponse(adjustment, lines), nil
}

// List lista ajustes con filtro de estado opcional.
func (uc *AdjustmentUseCase) List(status string, limit, offset int) ([]dto.AdjustmentResponse, int, error) {
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.repo.Count(status)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.AdjustmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAdjustmentResponse(a, nil))
	}
	return items, total, nil
}

// Update edita la cabecera. Rechazada con ErrConflict si Done/Canceled.
func (uc *AdjustmentUseCase) Update(id string, in dto.UpdateAdjustmentRequest) (*dto.AdjustmentResponse, error) {
	adjustment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if adjustment == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanEdit(adjustment.Status) {
		return nil, domain.ErrConflict
	}
	if in.Reference != nil && *in.Reference != adjustment.Reference {
		other, err := uc.repo.GetByReference(*in.Reference)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicateReference
		}
		adjustment.Reference = *in.Reference
	}
	if in.Reason != nil {
		adjustment.Reason = *in.Reason
	}
	if in.Notes != nil {
		adjustment.Notes = *in.Notes
	}
	if in.Status != nil {
		adjustment.Status = *in.Status
	}
	if err := uc.repo.Update(adjustment); err != nil {
		return nil, err
	}
	return toAdjustmentResponse(adjustment, nil), nil
}

// Cancel transiciona a Canceled. Sin mutación de inventario.
func (uc *AdjustmentUseCase) Cancel(id string) error {
	adjustment, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if adjustment == nil {
		return domain.ErrNotFound
	}
	if entity.IsTerminal(adjustment.Status) {
		return domain.ErrConflict
	}
	adjustment.Status = entity.StatusCanceled
	return uc.repo.Update(adjustment)
}

// AddLine agrega una línea con la cantidad contada (>= 0).
func (uc *AdjustmentUseCase) AddLine(adjustmentID string, in dto.AddAdjustmentLineRequest) (*dto.AdjustmentLineResponse, error) {
	adjustment, err := uc.repo.GetByID(adjustmentID)
	if err != nil {
		return nil, err
	}
	if adjustment == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanEdit(adjustment.Status) {
		return nil, domain.ErrConflict
	}
	if in.QtyCounted.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	line := &entity.AdjustmentLine{
		ID:           uuid.New().String(),
		AdjustmentID: adjustmentID,
		ProductID:    in.ProductID,
		QtyCounted:   in.QtyCounted,
		Notes:        in.Notes,
	}
	if err := uc.repo.AddLine(line); err != nil {
		return nil, err
	}
	return toAdjustmentLineResponse(line), nil
}

// UpdateLine actualiza la cantidad contada de una línea editable.
func (uc *AdjustmentUseCase) UpdateLine(lineID string, in dto.UpdateAdjustmentLineRequest) (*dto.AdjustmentLineResponse, error) {
	line, err := uc.repo.GetLine(lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrNotFound
	}
	adjustment, err := uc.repo.GetByID(line.AdjustmentID)
	if err != nil {
		return nil, err
	}
	if adjustment == nil || !entity.CanEdit(adjustment.Status) {
		return nil, domain.ErrConflict
	}
	if in.QtyCounted != nil {
		if in.QtyCounted.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		line.QtyCounted = *in.QtyCounted
	}
	if in.Notes != nil {
		line.Notes = *in.Notes
	}
	if err := uc.repo.UpdateLine(line); err != nil {
		return nil, err
	}
	return toAdjustmentLineResponse(line), nil
}

// DeleteLine elimina una línea mientras el ajuste sea editable.
func (uc *AdjustmentUseCase) DeleteLine(lineID string) error {
	line, err := uc.repo.GetLine(lineID)
	if err != nil {
		return err
	}
	if line == nil {
		return domain.ErrNotFound
	}
	adjustment, err := uc.repo.GetByID(line.AdjustmentID)
	if err != nil {
		return err
	}
	if adjustment == nil || !entity.CanEdit(adjustment.Status) {
		return domain.ErrConflict
	}
	return uc.repo.DeleteLine(lineID)
}

// Apply aplica el ajuste: fija balances a lo contado vía Mutator, una sola vez.
func (uc *AdjustmentUseCase) Apply(ctx context.Context, id, userID string) (*inventory.CompletionResult, error) {
	return uc.mutator.ApplyAdjustment(ctx, id, userID)
}

func toAdjustmentResponse(a *entity.Adjustment, lines []*entity.AdjustmentLine) *dto.AdjustmentResponse {
	out := &dto.AdjustmentResponse{
		ID:          a.ID,
		Reference:   a.Reference,
		WarehouseID: a.WarehouseID,
		Status:      a.Status,
		Reason:      a.Reason,
		AppliedDate: a.AppliedDate,
		Notes:       a.Notes,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
	}
	for _, ln := range lines {
		out.Lines = append(out.Lines, *toAdjustmentLineResponse(ln))
	}
	return out
}

func toAdjustmentLineResponse(ln *entity.AdjustmentLine) *dto.AdjustmentLineResponse {
	return &dto.AdjustmentLineResponse{
		ID:          ln.ID,
		ProductID:   ln.ProductID,
		QtyCounted:  ln.QtyCounted,
		QtyRecorded: ln.QtyRecorded,
		Notes:       ln.Notes,
	}
}
