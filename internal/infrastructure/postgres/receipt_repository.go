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

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository sobre PostgreSQL (usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador de recepciones. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

const receiptColumns = `id, reference, supplier, warehouse_id, status, expected_date, received_date, notes, created_by, created_at`

// Create persiste una recepción nueva.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	query := `
		INSERT INTO receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.Reference, receipt.Supplier, receipt.WarehouseID, receipt.Status,
		receipt.ExpectedDate, receipt.ReceivedDate, receipt.Notes, receipt.CreatedBy, receipt.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("create receipt: %w", err)
	}
	return nil
}

func (r *ReceiptRepo) getBy(clause string, arg any) (*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE ` + clause
	var rec entity.Receipt
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&rec.ID, &rec.Reference, &rec.Supplier, &rec.WarehouseID, &rec.Status,
		&rec.ExpectedDate, &rec.ReceivedDate, &rec.Notes, &rec.CreatedBy, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &rec, nil
}

// GetByID obtiene una recepción por ID. Devuelve nil si no existe.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	return r.getBy("id = $1", id)
}

// GetForUpdate obtiene la recepción bloqueando la fila (SELECT FOR UPDATE).
func (r *ReceiptRepo) GetForUpdate(id string) (*entity.Receipt, error) {
	return r.getBy("id = $1 FOR UPDATE", id)
}

// GetByReference obtiene una recepción por su referencia única.
func (r *ReceiptRepo) GetByReference(reference string) (*entity.Receipt, error) {
	return r.getBy("reference = $1", reference)
}

// Update actualiza la cabecera de una recepción.
func (r *ReceiptRepo) Update(receipt *entity.Receipt) error {
	query := `
		UPDATE receipts
		SET reference = $2, supplier = $3, warehouse_id = $4, status = $5,
		    expected_date = $6, received_date = $7, notes = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.Reference, receipt.Supplier, receipt.WarehouseID, receipt.Status,
		receipt.ExpectedDate, receipt.ReceivedDate, receipt.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("update receipt: %w", err)
	}
	return nil
}

// MarkDone fija status=Done y la fecha de recepción.
func (r *ReceiptRepo) MarkDone(id string, receivedAt time.Time) error {
	query := `UPDATE receipts SET status = $2, received_date = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, entity.StatusDone, receivedAt)
	if err != nil {
		return fmt.Errorf("mark receipt done: %w", err)
	}
	return nil
}

// List lista recepciones, opcionalmente filtradas por estado.
func (r *ReceiptRepo) List(status string, limit, offset int) ([]*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts`
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
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(&rec.ID, &rec.Reference, &rec.Supplier, &rec.WarehouseID, &rec.Status,
			&rec.ExpectedDate, &rec.ReceivedDate, &rec.Notes, &rec.CreatedBy, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Count cuenta recepciones según el filtro de estado.
func (r *ReceiptRepo) Count(status string) (int, error) {
	query := `SELECT COUNT(*) FROM receipts`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count receipts: %w", err)
	}
	return total, nil
}

const receiptLineColumns = `id, receipt_id, product_id, qty_ordered, qty_received, uom, unit_cost, notes`

// AddLine agrega una línea a la recepción.
func (r *ReceiptRepo) AddLine(line *entity.ReceiptLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO receipt_lines (` + receiptLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.ReceiptID, line.ProductID, line.QtyOrdered, line.QtyReceived,
		line.UOM, line.UnitCost, line.Notes,
	)
	if err != nil {
		return fmt.Errorf("add receipt line: %w", err)
	}
	return nil
}

// GetLine obtiene una línea por ID. Devuelve nil si no existe.
func (r *ReceiptRepo) GetLine(lineID string) (*entity.ReceiptLine, error) {
	query := `SELECT ` + receiptLineColumns + ` FROM receipt_lines WHERE id = $1`
	var ln entity.ReceiptLine
	err := r.q.QueryRow(context.Background(), query, lineID).Scan(
		&ln.ID, &ln.ReceiptID, &ln.ProductID, &ln.QtyOrdered, &ln.QtyReceived,
		&ln.UOM, &ln.UnitCost, &ln.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt line: %w", err)
	}
	return &ln, nil
}

// UpdateLine actualiza cantidades y notas de una línea.
func (r *ReceiptRepo) UpdateLine(line *entity.ReceiptLine) error {
	query := `
		UPDATE receipt_lines
		SET qty_ordered = $2, qty_received = $3, uom = $4, unit_cost = $5, notes = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.QtyOrdered, line.QtyReceived, line.UOM, line.UnitCost, line.Notes,
	)
	if err != nil {
		return fmt.Errorf("update receipt line: %w", err)
	}
	return nil
}

// DeleteLine elimina una línea.
func (r *ReceiptRepo) DeleteLine(lineID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM receipt_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete receipt line: %w", err)
	}
	return nil
}

// ListLines lista las líneas de una recepción.
func (r *ReceiptRepo) ListLines(receiptID string) ([]*entity.ReceiptLine, error) {
	query := `SELECT ` + receiptLineColumns + ` FROM receipt_lines WHERE receipt_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list receipt lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReceiptLine
	for rows.Next() {
		var ln entity.ReceiptLine
		if err := rows.Scan(&ln.ID, &ln.ReceiptID, &ln.ProductID, &ln.QtyOrdered, &ln.QtyReceived,
			&ln.UOM, &ln.UnitCost, &ln.Notes); err != nil {
			return nil, fmt.Errorf("scan receipt line: %w", err)
		}
		list = append(list, &ln)
	}
	return list, rows.Err()
}
