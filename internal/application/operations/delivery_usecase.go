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

// DeliveryUseCase CRUD de entregas; el despacho (Done) se delega al Mutator.
type DeliveryUseCase struct {
	repo          repository.DeliveryRepository
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
	mutator       *inventory.Mutator
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(
	repo repository.DeliveryRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
	mutator *inventory.Mutator,
) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo, warehouseRepo: warehouseRepo, productRepo: productRepo, mutator: mutator}
}

// Create crea una entrega en Draft. Referencia duplicada → ErrDuplicateReference.
func (uc *DeliveryUseCase) Create(userID string, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
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
	delivery := &entity.Delivery{
		ID:            uuid.New().String(),
		Reference:     in.Reference,
		Customer:      in.Customer,
		WarehouseID:   in.WarehouseID,
		Status:        entity.StatusDraft,
		ScheduledDate: in.ScheduledDate,
		Notes:         in.Notes,
		CreatedBy:     userID,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(delivery); err != nil {
		return nil, err
	}
	return toDeliveryResponse(delivery, nil), nil
}

// GetByID devuelve la entrega con sus líneas.
func (uc *DeliveryUseCase) GetByID(id string) (*dto.DeliveryResponse, error) {
	delivery, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.repo.ListLines(id)
	if err != nil {
		return nil, err
	}
	return toDeliveryResponse(delivery, lines), nil
}

// List lista entregas con filtro de estado opcional.
func (uc *DeliveryUseCase) List(status string, limit, offset int) ([]dto.DeliveryResponse, int, error) {
	list, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.repo.Count(status)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDeliveryResponse(d, nil))
	}
	return items, total, nil
}

// Update edita la cabecera. Rechazada con ErrConflict si Done/Canceled.
func (uc *DeliveryUseCase) Update(id string, in dto.UpdateDeliveryRequest) (*dto.DeliveryResponse, error) {
	delivery, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanEdit(delivery.Status) {
		return nil, domain.ErrConflict
	}
	if in.Reference != nil && *in.Reference != delivery.Reference {
		other, err := uc.repo.GetByReference(*in.Reference)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicateReference
		}
		delivery.Reference = *in.Reference
	}
	if in.Customer != nil {
		delivery.Customer = *in.Customer
	}
	if in.ScheduledDate != nil {
		delivery.ScheduledDate = in.ScheduledDate
	}
	if in.Notes != nil {
		delivery.Notes = *in.Notes
	}
	if in.Status != nil {
		delivery.Status = *in.Status
	}
	if err := uc.repo.Update(delivery); err != nil {
		return nil, err
	}
	return toDeliveryResponse(delivery, nil), nil
}

// Cancel transiciona a Canceled. Sin mutación de inventario.
func (uc *DeliveryUseCase) Cancel(id string) error {
	delivery, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if delivery == nil {
		return domain.ErrNotFound
	}
	if entity.IsTerminal(delivery.Status) {
		return domain.ErrConflict
	}
	delivery.Status = entity.StatusCanceled
	return uc.repo.Update(delivery)
}

// AddLine agrega una línea. Solo mientras la entrega sea editable.
func (uc *DeliveryUseCase) AddLine(deliveryID string, in dto.AddDeliveryLineRequest) (*dto.DeliveryLineResponse, error) {
	delivery, err := uc.repo.GetByID(deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanEdit(delivery.Status) {
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
	line := &entity.DeliveryLine{
		ID:         uuid.New().String(),
		DeliveryID: deliveryID,
		ProductID:  in.ProductID,
		QtyOrdered: in.QtyOrdered,
		UOM:        in.UOM,
		Notes:      in.Notes,
	}
	if err := uc.repo.AddLine(line); err != nil {
		return nil, err
	}
	return toDeliveryLineResponse(line), nil
}

// UpdateLine actualiza cantidades/notas de una línea editable.
func (uc *DeliveryUseCase) UpdateLine(lineID string, in dto.UpdateDeliveryLineRequest) (*dto.DeliveryLineResponse, error) {
	line, err := uc.repo.GetLine(lineID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrNotFound
	}
	delivery, err := uc.repo.GetByID(line.DeliveryID)
	if err != nil {
		return nil, err
	}
	if delivery == nil || !entity.CanEdit(delivery.Status) {
		return nil, domain.ErrConflict
	}
	if in.QtyOrdered != nil {
		if !in.QtyOrdered.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		line.QtyOrdered = *in.QtyOrdered
	}
	if in.QtyPicked != nil {
		if in.QtyPicked.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		line.QtyPicked = *in.QtyPicked
	}
	if in.Notes != nil {
		line.Notes = *in.Notes
	}
	if err := uc.repo.UpdateLine(line); err != nil {
		return nil, err
	}
	return toDeliveryLineResponse(line), nil
}

// DeleteLine elimina una línea mientras la entrega sea editable.
func (uc *DeliveryUseCase) DeleteLine(lineID string) error {
	line, err := uc.repo.GetLine(lineID)
	if err != nil {
		return err
	}
	if line == nil {
		return domain.ErrNotFound
	}
	delivery, err := uc.repo.GetByID(line.DeliveryID)
	if err != nil {
		return err
	}
	if delivery == nil || !entity.CanEdit(delivery.Status) {
		return domain.ErrConflict
	}
	return uc.repo.DeleteLine(lineID)
}

// Ship completa la entrega: mutación balance+ledger vía Mutator, una sola vez.
func (uc *DeliveryUseCase) Ship(ctx context.Context, id, userID string) (*inventory.CompletionResult, error) {
	return uc.mutator.ShipDelivery(ctx, id, userID)
}

func toDeliveryResponse(d *entity.Delivery, lines []*entity.DeliveryLine) *dto.DeliveryResponse {
	out := &dto.DeliveryResponse{
		ID:            d.ID,
		Reference:     d.Reference,
		Customer:      d.Customer,
		WarehouseID:   d.WarehouseID,
		Status:        d.Status,
		ScheduledDate: d.ScheduledDate,
		ShippedDate:   d.ShippedDate,
		Notes:         d.Notes,
		CreatedBy:     d.CreatedBy,
		CreatedAt:     d.CreatedAt,
	}
	for _, ln := range lines {
		out.Lines = append(out.Lines, *toDeliveryLineResponse(ln))
	}
	return out
}

func toDeliveryLineResponse(ln *entity.DeliveryLine) *dto.DeliveryLineResponse {
	return &dto.DeliveryLineResponse{
		ID:         ln.ID,
		ProductID:  ln.ProductID,
		QtyOrdered: ln.QtyOrdered,
		QtyPicked:  ln.QtyPicked,
		UOM:        ln.UOM,
		Notes:      ln.Notes,
	}
}
