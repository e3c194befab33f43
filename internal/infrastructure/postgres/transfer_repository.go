package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL (usable con pool o tx).
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador de traslados. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

const transferColumns = `id, reference, from_warehouse_id, to_warehouse_id, status, transfer_date, completed_date, notes, created_by, created_at`

// Create persiste un traslado nuevo.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	if transfer.ID == "" {
		transfer.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.Reference, transfer.FromWarehouseID, transfer.ToWarehouseID, transfer.Status,
		transfer.TransferDate, transfer.CompletedDate, transfer.Notes, transfer.CreatedBy, transfer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

func (r *TransferRepo) getBy(clause string, arg any) (*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE ` + clause
	var t entity.Transfer
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&t.ID, &t.Reference, &t.FromWarehouseID, &t.ToWarehouseID, &t.Status,
		&t.TransferDate, &t.CompletedDate, &t.Notes, &t.CreatedBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	return &t, nil
}

// GetByID obtiene un traslado por ID. Devuelve nil si no existe.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	return r.getBy("id = $1", id)
}

// GetForUpdate obtiene el traslado bloqueando la fila (SELECT FOR UPDATE).
func (r *TransferRepo) GetForUpdate(id string) (*entity.Transfer, error) {
	return r.getBy("id = $1 FOR UPDATE", id)
}

// GetByReference obtiene un traslado por su referencia única.
func (r *TransferRepo) GetByReference(reference string) (*entity.Transfer, error) {
	return r.getBy("reference = $1", reference)
}

// Update actualiza la cabecera de un traslado.
func (r *TransferRepo) Update(transfer *entity.Transfer) error {
	query := `
		UPDATE transfers
		SET reference = $2, from_warehouse_id = $3, to_warehouse_id = $4, status = $5,
		    transfer_date = $6, completed_date = $7, notes = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		transfer.ID, transfer.Reference, transfer.FromWarehouseID, transfer.ToWarehouseID, transfer.Status,
		transfer.TransferDate, transfer.CompletedDate, transfer.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("update transfer: %w", err)
	}
	return nil
}

// MarkDone fija status=Done y la fecha de completación.
func (r *TransferRepo) MarkDone(id string, completedAt time.Time) error {
	query := `UPDATE transfers SET status = $2, completed_date = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, entity.StatusDone, completedAt)
	if err != nil {
		return fmt.Errorf("mark transfer done: %w", err)
	}
	return nil
}

// List lista traslados, opcionalmente filtrados por estado.
func (r *TransferRepo) List(status string, limit, offset int) ([]*entity.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers`
	args := []any{}
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		if err := rows.Scan(&t.ID, &t.Reference, &t.FromWarehouseID, &t.ToWarehouseID, &t.Status,
			&t.TransferDate, &t.CompletedDate, &t.Notes, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Count cuenta traslados según el filtro de estado.
func (r *TransferRepo) Count(status string) (int, error) {
	query := `SELECT COUNT(*) FROM transfers`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count transfers: %w", err)
	}
	return total, nil
}

const transferLineColumns = `id, transfer_id, product_id, qty_ordered, qty_sent, uom, notes`

// AddLine agrega una línea al traslado.
func (r *TransferRepo) AddLine(line *entity.TransferLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transfer_lines (` + transferLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.TransferID, line.ProductID, line.QtyOrdered, line.QtySent,
		line.UOM, line.Notes,
	)
	if err != nil {
		return fmt.Errorf("add transfer line: %w", err)
	}
	return nil
}

// GetLine obtiene una línea por ID. Devuelve nil si no existe.
func (r *TransferRepo) GetLine(lineID string) (*entity.TransferLine, error) {
	query := `SELECT ` + transferLineColumns + ` FROM transfer_lines WHERE id = $1`
	var ln entity.TransferLine
	err := r.q.QueryRow(context.Background(), query, lineID).Scan(
		&ln.ID, &ln.TransferID, &ln.ProductID, &ln.QtyOrdered, &ln.QtySent,
		&ln.UOM, &ln.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer line: %w", err)
	}
	return &ln, nil
}

// UpdateLine actualiza cantidades y notas de una línea.
func (r *TransferRepo) UpdateLine(line *entity.TransferLine) error {
	query := `
		UPDATE transfer_lines
		SET qty_ordered = $2, qty_sent = $3, uom = $4, notes = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.QtyOrdered, line.QtySent, line.UOM, line.Notes,
	)
	if err != nil {
		return fmt.Errorf("update transfer line: %w", err)
	}
	return nil
}

// DeleteLine elimina una línea.
func (r *TransferRepo) DeleteLine(lineID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transfer_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete transfer line: %w", err)
	}
	return nil
}

// ListLines lista las líneas de un traslado.
func (r *TransferRepo) ListLines(transferID string) ([]*entity.TransferLine, error) {
	query := `SELECT ` + transferLineColumns + ` FROM transfer_lines WHERE transfer_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, transferID)
	if err != nil {
		return nil, fmt.Errorf("list transfer lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransferLine
	for rows.Next() {
		var ln entity.TransferLine
		if err := rows.Scan(&ln.ID, &ln.TransferID, &ln.ProductID, &ln.QtyOrdered, &ln.QtySent,
			&ln.UOM, &ln.Notes); err != nil {
			return nil, fmt.Errorf("scan transfer line: %w", err)
		}
		list = append(list, &ln)
	}
	return list, rows.Err()
}
