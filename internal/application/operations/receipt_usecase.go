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

// ReceiptUseCase CRUD de recepciones en estado editable; la completación se
// delega al Mutator de inventario (una sola vez, transaccional).
type ReceiptUseCase struct {
	repo          repository.ReceiptRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	mutator       *inventory.Mutator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	repo repository.ReceiptRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	mutator *inventory.Mutator,
) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo, warehouseRepo: warehouseRepo, productRepo: productRepo, mutator: mutator}
}

// Create crea una recepción en Draft. Referencia duplicada → ErrDuplicateReference.
func (uc *ReceiptUseCase) Create(userID string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByReference(in.Reference)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateReference
	}
	receipt := &entity.Receipt{
		ID:           uuid.New().String(),
		Reference:    in.Reference,
		Supplier:     in.Supplier,
		WarehouseID:  in.WarehouseID,
		Status:       entity.StatusDraft,
		ExpectedDate: in.ExpectedDate,
		Notes:        in.Notes,
		CreatedBy:    userID,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(receipt); err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt, nil), nil
}

// GetByID devuelve la recepción con sus líneas.
func (uc *ReceiptUseCase) GetByID(id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.repo.ListLines(id)
	if err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt, lines), nil
}

// List lista recepciones con filtro de estado opcional.
func (uc *ReceiptUseCase) List(status string, limit, offset int) ([]dto.ReceiptResponse, int, error) {
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.repo.Count(status)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReceiptResponse(r, nil))
	}
	return items, total, nil
}

// Update edita la cabecera. Rechazada con ErrConflict si Done/Canceled.
func (uc *ReceiptUseCase) Update(id string, in dto.UpdateReceiptRequest) (*dto.ReceiptResponse, error) {
	receipt, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanEdit(receipt.Status) {
		return nil, domain.ErrConflict
	}
	if in.Reference != nil && *in.Reference != receipt.Reference {
		other, err := uc.repo.GetByReference(*in.Reference)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicateReference
		}
		receipt.Reference = *in.Reference
	}
	if in.Supplier != nil {
		receipt.Supplier = *in.Supplier
	}
	if in.ExpectedDate != nil {
		receipt.ExpectedDate = in.ExpectedDate
	}
	if in.Notes != nil {
		receipt.Notes = *in.Notes
	}
	if in.Status != nil {
		receipt.Status = *in.Status
	}
	if err := uc.repo.Update(receipt); err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt, nil), nil
}

// Cancel transiciona a Canceled. Sin mutación de inventario.
func (uc *ReceiptUseCase) Cancel(id string) error {
	receipt, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return domain.ErrNotFound
	}
	if entity.IsTerminal(receipt.Status) {
		return domain.ErrConflict
	}
	receipt.Status = entity.StatusCanceled
	return uc.repo.Update(receipt)
}

// AddLine agrega una línea. Solo mientras la recepción sea editable.
func (uc *ReceiptUseCase) AddLine(receiptID string, in dto.AddReceiptLineRequest) (*dto.ReceiptLineResponse, error) {
	receipt, err := uc.repo.GetByID(receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanEdit(receipt.Status) {
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
	line := &entity.ReceiptLine{
		ID:         uuid.New().String(),
		ReceiptID:  receiptID,
		ProductID:  in.ProductID,
		QtyOrdered: in.QtyOrdered,
		UOM:        in.UOM,
		Notes:      in.Notes,
	}
	if in.UnitCost != nil {
		line.UnitCost = *in.UnitCost
	}
	if err := uc.repo.AddLine(line); err != nil {
		return nil, err
	}
	return toReceiptLineResponse(line), nil
}

// UpdateLine actualiza cantidades/notas de una línea editable.
func (uc *ReceiptUseCase) UpdateLine(lineID string, in dto.UpdateReceiptLineRequest) (*dto.ReceiptLineResponse, error) {
	line, err := uc.repo.GetLine(lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrNotFound
	}
	receipt, err := uc.repo.GetByID(line.ReceiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil || !entity.CanEdit(receipt.Status) {
		return nil, domain.ErrConflict
	}
	if in.QtyOrdered != nil {
		if !in.QtyOrdered.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		line.QtyOrdered = *in.QtyOrdered
	}
	if in.QtyReceived != nil {
		if in.QtyReceived.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		line.QtyReceived = *in.QtyReceived
	}
	if in.Notes != nil {
		line.Notes = *in.Notes
	}
	if err := uc.repo.UpdateLine(line); err != nil {
		return nil, err
	}
	return toReceiptLineResponse(line), nil
}

// DeleteLine elimina una línea mientras la recepción sea editable.
func (uc *ReceiptUseCase) DeleteLine(lineID string) error {
	line, err := uc.repo.GetLine(lineID)
	if err != nil {
		return err
	}
	if line == nil {
		return domain.ErrNotFound
	}
	receipt, err := uc.repo.GetByID(line.ReceiptID)
	if err != nil {
		return err
	}
	if receipt == nil || !entity.CanEdit(receipt.Status) {
		return domain.ErrConflict
	}
	return uc.repo.DeleteLine(lineID)
}

// Receive completa la recepción: mutación balance+ledger vía Mutator, una sola vez.
func (uc *ReceiptUseCase) Receive(ctx context.Context, id, userID string) (*inventory.CompletionResult, error) {
	return uc.mutator.CompleteReceipt(ctx, id, userID)
}

func toReceiptResponse(r *entity.Receipt, lines []*entity.ReceiptLine) *dto.ReceiptResponse {
	out := &dto.ReceiptResponse{
		ID:           r.ID,
		Reference:    r.Reference,
		Supplier:     r.Supplier,
		WarehouseID:  r.WarehouseID,
		Status:       r.Status,
		ExpectedDate: r.ExpectedDate,
		ReceivedDate: r.ReceivedDate,
		Notes:        r.Notes,
		CreatedBy:    r.CreatedBy,
		CreatedAt:    r.CreatedAt,
	}
	for _, ln := range lines {
		out.Lines = append(out.Lines, *toReceiptLineResponse(ln))
	}
	return out
}

func toReceiptLineResponse(ln *entity.ReceiptLine) *dto.ReceiptLineResponse {
	return &dto.ReceiptLineResponse{
		ID:          ln.ID,
		ProductID:   ln.ProductID,
		QtyOrdered:  ln.QtyOrdered,
		QtyReceived: ln.QtyReceived,
		UOM:         ln.UOM,
		UnitCost:    ln.UnitCost,
		Notes:       ln.Notes,
	}
}
