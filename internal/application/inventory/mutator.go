package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// Mutator aplica la mutación balance+ledger de una operación que se completa.
// Es el único camino de escritura sobre inventory y stock_ledger: dentro de una
// transacción bloquea la fila de balance (SELECT FOR UPDATE), escribe la nueva
// cantidad vía upsert, agrega un asiento por línea afectada y marca la
// operación como Done. Todo o nada; sin reintentos.
type Mutator struct {
	tx TxRunner
}

// NewMutator construye el mutador sobre un TxRunner.
func NewMutator(tx TxRunner) *Mutator {
	return &Mutator{tx: tx}
}

// CompletionResult resultado de una completación exitosa.
type CompletionResult struct {
	ID          string
	Reference   string
	Status      string
	CompletedAt time.Time
}

// checkCompletable valida la transición de estado hacia Done.
// Done → ya completada (conflicto, sin mutación); Canceled → conflicto.
func checkCompletable(status string) error {
	if status == entity.StatusDone {
		return domain.ErrAlreadyCompleted
	}
	if !entity.CanComplete(status) {
		return domain.ErrConflict
	}
	return nil
}

// ledgerRef datos comunes de los asientos de una misma completación.
type ledgerRef struct {
	refType   string
	refID     string
	refNumber string
	notes     string
	userID    string
}

// applyDelta bloquea el balance del par (producto, bodega), aplica el delta y
// agrega el asiento. Un delta saliente que dejaría la cantidad negativa se
// rechaza con ErrInsufficientStock; la fila aún no existente cuenta como cero.
func applyDelta(
	balances repository.BalanceRepository,
	ledger repository.LedgerRepository,
	productID, warehouseID string,
	delta decimal.Decimal,
	entryType string,
	ref ledgerRef,
	now time.Time,
) error {
	bal, err := balances.GetForUpdate(productID, warehouseID)
	if err != nil {
		return err
	}
	newQty := bal.Quantity.Add(delta)
	if delta.IsNegative() && newQty.IsNegative() {
		return domain.ErrInsufficientStock
	}
	bal.Quantity = newQty
	bal.UpdatedAt = now
	if err := balances.Upsert(bal); err != nil {
		return err
	}
	return ledger.Create(&entity.LedgerEntry{
		ProductID:       productID,
		WarehouseID:     warehouseID,
		Change:          delta,
		Type:            entryType,
		ReferenceType:   ref.refType,
		ReferenceID:     ref.refID,
		ReferenceNumber: ref.refNumber,
		Notes:           ref.notes,
		CreatedBy:       ref.userID,
		CreatedAt:       now,
	})
}

// CompleteReceipt transiciona la recepción a Done y suma al balance la cantidad
// recibida de cada línea, con un asiento tipo receipt por línea afectada.
func (m *Mutator) CompleteReceipt(ctx context.Context, id, userID string) (*CompletionResult, error) {
	if id == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var res *CompletionResult
	err := m.tx.Run(ctx, func(r TxRepos) error {
		receipt, err := r.Receipts.GetForUpdate(id)
		if err != nil {
			return err
		}
		if receipt == nil {
			return domain.ErrNotFound
		}
		if err := checkCompletable(receipt.Status); err != nil {
			return err
		}
		lines, err := r.Receipts.ListLines(id)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrInvalidInput
		}
		if err := r.Receipts.MarkDone(id, now); err != nil {
			return err
		}
		ref := ledgerRef{
			refType:   "receipt",
			refID:     receipt.ID,
			refNumber: receipt.Reference,
			userID:    userID,
		}
		for _, ln := range lines {
			if ln.QtyReceived.IsZero() {
				continue // línea sin cantidad recibida: no afecta inventario
			}
			err := applyDelta(r.Balances, r.Ledger, ln.ProductID, receipt.WarehouseID,
				ln.QtyReceived, entity.LedgerTypeReceipt, ref, now)
			if err != nil {
				return err
			}
		}
		res = &CompletionResult{ID: receipt.ID, Reference: receipt.Reference, Status: entity.StatusDone, CompletedAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ShipDelivery transiciona la entrega a Done y resta del balance la cantidad
// preparada de cada línea, con un asiento tipo delivery (delta negativo).
func (m *Mutator) ShipDelivery(ctx context.Context, id, userID string) (*CompletionResult, error) {
	if id == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var res *CompletionResult
	err := m.tx.Run(ctx, func(r TxRepos) error {
		delivery, err := r.Deliveries.GetForUpdate(id)
		if err != nil {
			return err
		}
		if delivery == nil {
			return domain.ErrNotFound
		}
		if err := checkCompletable(delivery.Status); err != nil {
			return err
		}
		lines, err := r.Deliveries.ListLines(id)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrInvalidInput
		}
		if err := r.Deliveries.MarkDone(id, now); err != nil {
			return err
		}
		ref := ledgerRef{
			refType:   "delivery",
			refID:     delivery.ID,
			refNumber: delivery.Reference,
			userID:    userID,
		}
		for _, ln := range lines {
			if ln.QtyPicked.IsZero() {
				continue
			}
			err := applyDelta(r.Balances, r.Ledger, ln.ProductID, delivery.WarehouseID,
				ln.QtyPicked.Neg(), entity.LedgerTypeDelivery, ref, now)
			if err != nil {
				return err
			}
		}
		res = &CompletionResult{ID: delivery.ID, Reference: delivery.Reference, Status: entity.StatusDone, CompletedAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// CompleteTransfer transiciona el traslado a Done y mueve la cantidad enviada
// de cada línea: transfer_out en la bodega origen y transfer_in en la destino,
// dos asientos por línea, misma transacción.
func (m *Mutator) CompleteTransfer(ctx context.Context, id, userID string) (*CompletionResult, error) {
	if id == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var res *CompletionResult
	err := m.tx.Run(ctx, func(r TxRepos) error {
		transfer, err := r.Transfers.GetForUpdate(id)
		if err != nil {
			return err
		}
		if transfer == nil {
			return domain.ErrNotFound
		}
		if err := checkCompletable(transfer.Status); err != nil {
			return err
		}
		lines, err := r.Transfers.ListLines(id)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrInvalidInput
		}
		if err := r.Transfers.MarkDone(id, now); err != nil {
			return err
		}
		ref := ledgerRef{
			refType:   "transfer",
			refID:     transfer.ID,
			refNumber: transfer.Reference,
			userID:    userID,
		}
		for _, ln := range lines {
			if ln.QtySent.IsZero() {
				continue
			}
			// Primero la salida en origen: si no hay stock suficiente, se
			// aborta antes de tocar la bodega destino.
			err := applyDelta(r.Balances, r.Ledger, ln.ProductID, transfer.FromWarehouseID,
				ln.QtySent.Neg(), entity.LedgerTypeTransferOut, ref, now)
			if err != nil {
				return err
			}
			err = applyDelta(r.Balances, r.Ledger, ln.ProductID, transfer.ToWarehouseID,
				ln.QtySent, entity.LedgerTypeTransferIn, ref, now)
			if err != nil {
				return err
			}
		}
		res = &CompletionResult{ID: transfer.ID, Reference: transfer.Reference, Status: entity.StatusDone, CompletedAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ApplyAdjustment transiciona el ajuste a Done. El delta de cada línea se
// calcula contra el balance bloqueado en ese momento (contado - registrado);
// la cantidad registrada se persiste en la línea para auditoría.
func (m *Mutator) ApplyAdjustment(ctx context.Context, id, userID string) (*CompletionResult, error) {
	if id == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	var res *CompletionResult
	err := m.tx.Run(ctx, func(r TxRepos) error {
		adj, err := r.Adjustments.GetForUpdate(id)
		if err != nil {
			return err
		}
		if adj == nil {
			return domain.ErrNotFound
		}
		if err := checkCompletable(adj.Status); err != nil {
			return err
		}
		lines, err := r.Adjustments.ListLines(id)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrInvalidInput
		}
		if err := r.Adjustments.MarkDone(id, now); err != nil {
			return err
		}
		ref := ledgerRef{
			refType:   "adjustment",
			refID:     adj.ID,
			refNumber: adj.Reference,
			notes:     adj.Reason,
			userID:    userID,
		}
		for _, ln := range lines {
			if ln.QtyCounted.IsNegative() {
				return domain.ErrInvalidInput
			}
			bal, err := r.Balances.GetForUpdate(ln.ProductID, adj.WarehouseID)
			if err != nil {
				return err
			}
			recorded := bal.Quantity
			diff := ln.QtyCounted.Sub(recorded)

			ln.QtyRecorded = recorded
			if err := r.Adjustments.UpdateLine(ln); err != nil {
				return err
			}
			if diff.IsZero() {
				continue // conteo coincide: nada que asentar
			}
			bal.Quantity = ln.QtyCounted
			bal.UpdatedAt = now
			if err := r.Balances.Upsert(bal); err != nil {
				return err
			}
			err = r.Ledger.Create(&entity.LedgerEntry{
				ProductID:       ln.ProductID,
				WarehouseID:     adj.WarehouseID,
				Change:          diff,
				Type:            entity.LedgerTypeAdjustment,
				ReferenceType:   ref.refType,
				ReferenceID:     ref.refID,
				ReferenceNumber: ref.refNumber,
				Notes:           ref.notes,
				CreatedBy:       ref.userID,
				CreatedAt:       now,
			})
			if err != nil {
				return err
			}
		}
		res = &CompletionResult{ID: adj.ID, Reference: adj.Reference, Status: entity.StatusDone, CompletedAt: now}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
