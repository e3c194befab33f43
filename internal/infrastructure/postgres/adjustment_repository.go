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

var _ repository.AdjustmentRepository = (*AdjustmentRepo)(nil)

// AdjustmentRepo implementación de AdjustmentRepository sobre PostgreSQL (usable con pool o tx).
type AdjustmentRepo struct {
	q Querier
}

// NewAdjustmentRepository construye el adaptador de ajustes. Pasar pool o tx (Querier).
func NewAdjustmentRepository(q Querier) *AdjustmentRepo {
	return &AdjustmentRepo{q: q}
}

const adjustmentColumns = `id, reference, warehouse_id, status, reason, applied_date, notes, created_by, created_at`

// Create persiste un ajuste nuevo.
func (r *AdjustmentRepo) Create(adjustment *entity.Adjustment) error {
	if adjustment.ID == "" {
		adjustment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.Reference, adjustment.WarehouseID, adjustment.Status,
		adjustment.Reason, adjustment.AppliedDate, adjustment.Notes, adjustment.CreatedBy, adjustment.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("create adjustment: %w", err)
	}
	return nil
}

func (r *AdjustmentRepo) getBy(clause string, arg any) (*entity.Adjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments WHERE ` + clause
	var a entity.Adjustment
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Reference, &a.WarehouseID, &a.Status,
		&a.Reason, &a.AppliedDate, &a.Notes, &a.CreatedBy, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment: %w", err)
	}
	return &a, nil
}

// GetByID obtiene un ajuste por ID. Devuelve nil si no existe.
func (r *AdjustmentRepo) GetByID(id string) (*entity.Adjustment, error) {
	return r.getBy("id = $1", id)
}

// GetForUpdate obtiene el ajuste bloqueando la fila (SELECT FOR UPDATE).
func (r *AdjustmentRepo) GetForUpdate(id string) (*entity.Adjustment, error) {
	return r.getBy("id = $1 FOR UPDATE", id)
}

// GetByReference obtiene un ajuste por su referencia única.
func (r *AdjustmentRepo) GetByReference(reference string) (*entity.Adjustment, error) {
	return r.getBy("reference = $1", reference)
}

// Update actualiza la cabecera de un ajuste.
func (r *AdjustmentRepo) Update(adjustment *entity.Adjustment) error {
	query := `
		UPDATE adjustments
		SET reference = $2, warehouse_id = $3, status = $4, reason = $5,
		    applied_date = $6, notes = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		adjustment.ID, adjustment.Reference, adjustment.WarehouseID, adjustment.Status,
		adjustment.Reason, adjustment.AppliedDate, adjustment.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("update adjustment: %w", err)
	}
	return nil
}

// MarkDone fija status=Done y la fecha de aplicación.
func (r *AdjustmentRepo) MarkDone(id string, appliedAt time.Time) error {
	query := `UPDATE adjustments SET status = $2, applied_date = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, entity.StatusDone, appliedAt)
	if err != nil {
		return fmt.Errorf("mark adjustment done: %w", err)
	}
	return nil
}

// List lista ajustes, opcionalmente filtrados por estado.
func (r *AdjustmentRepo) List(status string, limit, offset int) ([]*entity.Adjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments`
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
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Adjustment
	for rows.Next() {
		var a entity.Adjustment
		if err := rows.Scan(&a.ID, &a.Reference, &a.WarehouseID, &a.Status,
			&a.Reason, &a.AppliedDate, &a.Notes, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Count cuenta ajustes según el filtro de estado.
func (r *AdjustmentRepo) Count(status string) (int, error) {
	query := `SELECT COUNT(*) FROM adjustments`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count adjustments: %w", err)
	}
	return total, nil
}

const adjustmentLineColumns = `id, adjustment_id, product_id, qty_counted, qty_recorded, notes`

// AddLine agrega una línea al ajuste.
func (r *AdjustmentRepo) AddLine(line *entity.AdjustmentLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO adjustment_lines (` + adjustmentLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.AdjustmentID, line.ProductID, line.QtyCounted, line.QtyRecorded, line.Notes,
	)
	if err != nil {
		return fmt.Errorf("add adjustment line: %w", err)
	}
	return nil
}

// GetLine obtiene una línea por ID. Devuelve nil si no existe.
func (r *AdjustmentRepo) GetLine(lineID string) (*entity.AdjustmentLine, error) {
	query := `SELECT ` + adjustmentLineColumns + ` FROM adjustment_lines WHERE id = $1`
	var ln entity.AdjustmentLine
	err := r.q.QueryRow(context.Background(), query, lineID).Scan(
		&ln.ID, &ln.AdjustmentID, &ln.ProductID, &ln.QtyCounted, &ln.QtyRecorded, &ln.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get adjustment line: %w", err)
	}
	return &ln, nil
}

// UpdateLine actualiza una línea (incluido QtyRecorded al aplicar).
func (r *AdjustmentRepo) UpdateLine(line *entity.AdjustmentLine) error {
	query := `
		UPDATE adjustment_lines
		SET qty_counted = $2, qty_recorded = $3, notes = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.QtyCounted, line.QtyRecorded, line.Notes,
	)
	if err != nil {
		return fmt.Errorf("update adjustment line: %w", err)
	}
	return nil
}

// DeleteLine elimina una línea.
func (r *AdjustmentRepo) DeleteLine(lineID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM adjustment_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete adjustment line: %w", err)
	}
	return nil
}

// ListLines lista las líneas de un ajuste.
func (r *AdjustmentRepo) ListLines(adjustmentID string) ([]*entity.AdjustmentLine, error) {
	query := `SELECT ` + adjustmentLineColumns + ` FROM adjustment_lines WHERE adjustment_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, adjustmentID)
	if err != nil {
		return nil, fmt.Errorf("list adjustment lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.AdjustmentLine
	for rows.Next() {
		var ln entity.AdjustmentLine
		if err := rows.Scan(&ln.ID, &ln.AdjustmentID, &ln.ProductID, &ln.QtyCounted, &ln.QtyRecorded, &ln.Notes); err != nil {
			return nil, fmt.Errorf("scan adjustment line: %w", err)
		}
		list = append(list, &ln)
	}
	return list, rows.Err()
}
