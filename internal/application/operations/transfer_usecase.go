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

// TransferUseCase CRUD de traslados entre bodegas; la completación mueve el
// stock (out en origen, in en destino) vía Mutator.
type TransferUseCase struct {
	repo          repository.TransferRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	mutator       *inventory.Mutator
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	repo repository.TransferRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	mutator *inventory.Mutator,
) *TransferUseCase {
	return &TransferUseCase{repo: repo, warehouseRepo: warehouseRepo, productRepo: productRepo, mutator: mutator}
}

// Create crea un traslado en Draft. Origen y destino deben existir y ser distintos.
func (uc *TransferUseCase) Create(userID string, in dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	if in.FromWarehouseID == in.ToWarehouseID {
		return nil, domain.ErrInvalidInput
	}
	from, err := uc.warehouseRepo.GetByID(in.FromWarehouseID)
	if err != nil {
		return nil, err
	}
	to, err := uc.warehouseRepo.GetByID(in.ToWarehouseID)
	if err != nil {
		return nil, err
	}
	if from == nil || to == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByReference(in.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateReference
	}
	transfer := &entity.Transfer{
		ID:              uuid.New().String(),
		Reference:       in.Reference,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		Status:          entity.StatusDraft,
		TransferDate:    in.TransferDate,
		Notes:           in.Notes,
		CreatedBy:       userID,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(transfer); err != nil {
		return nil, err
	}
	return toTransferResponse(transfer, nil), nil
}

// GetByID devuelve el traslado con sus líneas.
func (uc *TransferUseCase) GetByID(id string) (*dto.TransferResponse, error) {
	transfer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.repo.ListLines(id)
	if err != nil {
		return nil, err
	}
	return toTransferResponse(transfer, lines), nil
}

// List lista traslados con filtro de estado opcional.
func (uc *TransferUseCase) List(status string, limit, offset int) ([]dto.TransferResponse, int, error) {
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.repo.Count(status)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTransferResponse(t, nil))
	}
	return items, total, nil
}

// Update edita la cabecera. Rechazada con ErrConflict si Done/Canceled.
func (uc *TransferUseCase) Update(id string, in dto.UpdateTransferRequest) (*dto.TransferResponse, error) {
	transfer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanEdit(transfer.Status) {
		return nil, domain.ErrConflict
	}
	if in.Reference != nil && *in.Reference != transfer.Reference {
		other, err := uc.repo.GetByReference(*in.Reference)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicateReference
		}
		transfer.Reference = *in.Reference
	}
	if in.TransferDate != nil {
		transfer.TransferDate = in.TransferDate
	}
	if in.Notes != nil {
		transfer.Notes = *in.Notes
	}
	if in.Status != nil {
		transfer.Status = *in.Status
	}
	if err := uc.repo.Update(transfer); err != nil {
		return nil, err
	}
	return toTransferResponse(transfer, nil), nil
}

// Cancel transiciona a Canceled. Sin mutación de inventario.
func (uc *TransferUseCase) Cancel(id string) error {
	transfer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if transfer == nil {
		return domain.ErrNotFound
	}
	if entity.IsTerminal(transfer.Status) {
		return domain.ErrConflict
	}
	transfer.Status = entity.StatusCanceled
	return uc.repo.Update(transfer)
}

// AddLine agrega una línea. Solo mientras el traslado sea editable.
func (uc *TransferUseCase) AddLine(transferID string, in dto.AddTransferLineRequest) (*dto.TransferLineResponse, error) {
	transfer, err := uc.repo.GetByID(transferID)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanEdit(transfer.Status) {
		return nil, domain.ErrConflict
	}
	if !in.QtyOrdered.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	line := &entity.TransferLine{
		ID:         uuid.New().String(),
		TransferID: transferID,
		ProductID:  in.ProductID,
		QtyOrdered: in.QtyOrdered,
		UOM:        in.UOM,
		Notes:      in.Notes,
	}
	if err := uc.repo.AddLine(line); err != nil {
		return nil, err
	}
	return toTransferLineResponse(line), nil
}

// UpdateLine actualiza cantidades/notas de una línea editable.
func (uc *TransferUseCase) UpdateLine(lineID string, in dto.UpdateTransferLineRequest) (*dto.TransferLineResponse, error) {
	line, err := uc.repo.GetLine(lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrNotFound
	}
	transfer, err := uc.repo.GetByID(line.TransferID)
	if err != nil {
		return nil, err
	}
	if transfer == nil || !entity.CanEdit(transfer.Status) {
		return nil, domain.ErrConflict
	}
	if in.QtyOrdered != nil {
		if !in.QtyOrdered.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		line.QtyOrdered = *in.QtyOrdered
	}
	if in.QtySent != nil {
		if in.QtySent.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		line.QtySent = *in.QtySent
	}
	if in.Notes != nil {
		line.Notes = *in.Notes
	}
	if err := uc.repo.UpdateLine(line); err != nil {
		return nil, err
	}
	return toTransferLineResponse(line), nil
}

// DeleteLine elimina una línea mientras el traslado sea editable.
func (uc *TransferUseCase) DeleteLine(lineID string) error {
	line, err := uc.repo.GetLine(lineID)
	if err != nil {
		return err
	}
	if line == nil {
		return domain.ErrNotFound
	}
	transfer, err := uc.repo.GetByID(line.TransferID)
	if err != nil {
		return err
	}
	if transfer == nil || !entity.CanEdit(transfer.Status) {
		return domain.ErrConflict
	}
	return uc.repo.DeleteLine(lineID)
}

// Complete completa el traslado: dos asientos por línea vía Mutator, una sola vez.
func (uc *TransferUseCase) Complete(ctx context.Context, id, userID string) (*inventory.CompletionResult, error) {
	return uc.mutator.CompleteTransfer(ctx, id, userID)
}

func toTransferResponse(t *entity.Transfer, lines []*entity.TransferLine) *dto.TransferResponse {
	out := &dto.TransferResponse{
		ID:              t.ID,
		Reference:       t.Reference,
		FromWarehouseID: t.FromWarehouseID,
		ToWarehouseID:   t.ToWarehouseID,
		Status:          t.Status,
		TransferDate:    t.TransferDate,
		CompletedDate:   t.CompletedDate,
		Notes:           t.Notes,
		CreatedBy:       t.CreatedBy,
		CreatedAt:       t.CreatedAt,
	}
	for _, ln := range lines {
		out.Lines = append(out.Lines, *toTransferLineResponse(ln))
	}
	return out
}

func toTransferLineResponse(ln *entity.TransferLine) *dto.TransferLineResponse {
	return &dto.TransferLineResponse{
		ID:         ln.ID,
		ProductID:  ln.ProductID,
		QtyOrdered: ln.QtyOrdered,
		QtySent:    ln.QtySent,
		UOM:        ln.UOM,
		Notes:      ln.Notes,
	}
}
