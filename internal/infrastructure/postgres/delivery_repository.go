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

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación de DeliveryRepository sobre PostgreSQL (usable con pool o tx).
type DeliveryRepo struct {
	q Querier
}

// NewDeliveryRepository construye el adaptador de entregas. Pasar pool o tx (Querier).
func NewDeliveryRepository(q Querier) *DeliveryRepo {
	return &DeliveryRepo{q: q}
}

const deliveryColumns = `id, reference, customer, warehouse_id, status, scheduled_date, shipped_date, notes, created_by, created_at`

// Create persiste una entrega nueva.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	if delivery.ID == "" {
		delivery.ID = uuid.New().String()
	}
	query := `
		INSERT INTO deliveries (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		delivery.ID, delivery.Reference, delivery.Customer, delivery.WarehouseID, delivery.Status,
		delivery.ScheduledDate, delivery.ShippedDate, delivery.Notes, delivery.CreatedBy, delivery.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("create delivery: %w", err)
	}
	return nil
}

func (r *DeliveryRepo) getBy(clause string, arg any) (*entity.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE ` + clause
	var d entity.Delivery
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&d.ID, &d.Reference, &d.Customer, &d.WarehouseID, &d.Status,
		&d.ScheduledDate, &d.ShippedDate, &d.Notes, &d.CreatedBy, &d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return &d, nil
}

// GetByID obtiene una entrega por ID. Devuelve nil si no existe.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	return r.getBy("id = $1", id)
}

// GetForUpdate obtiene la entrega bloqueando la fila (SELECT FOR UPDATE).
func (r *DeliveryRepo) GetForUpdate(id string) (*entity.Delivery, error) {
	return r.getBy("id = $1 FOR UPDATE", id)
}

// GetByReference obtiene una entrega por su referencia única.
func (r *DeliveryRepo) GetByReference(reference string) (*entity.Delivery, error) {
	return r.getBy("reference = $1", reference)
}

// Update actualiza la cabecera de una entrega.
func (r *DeliveryRepo) Update(delivery *entity.Delivery) error {
	query := `
		UPDATE deliveries
		SET reference = $2, customer = $3, warehouse_id = $4, status = $5,
		    scheduled_date = $6, shipped_date = $7, notes = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		delivery.ID, delivery.Reference, delivery.Customer, delivery.WarehouseID, delivery.Status,
		delivery.ScheduledDate, delivery.ShippedDate, delivery.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("update delivery: %w", err)
	}
	return nil
}

// MarkDone fija status=Done y la fecha de despacho.
func (r *DeliveryRepo) MarkDone(id string, shippedAt time.Time) error {
	query := `UPDATE deliveries SET status = $2, shipped_date = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, entity.StatusDone, shippedAt)
	if err != nil {
		return fmt.Errorf("mark delivery done: %w", err)
	}
	return nil
}

// List lista entregas, opcionalmente filtradas por estado.
func (r *DeliveryRepo) List(status string, limit, offset int) ([]*entity.Delivery, error) {
	query := `SELECT ` + deliveryColumns + ` FROM deliveries`
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
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Delivery
	for rows.Next() {
		var d entity.Delivery
		if err := rows.Scan(&d.ID, &d.Reference, &d.Customer, &d.WarehouseID, &d.Status,
			&d.ScheduledDate, &d.ShippedDate, &d.Notes, &d.CreatedBy, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Count cuenta entregas según el filtro de estado.
func (r *DeliveryRepo) Count(status string) (int, error) {
	query := `SELECT COUNT(*) FROM deliveries`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count deliveries: %w", err)
	}
	return total, nil
}

const deliveryLineColumns = `id, delivery_id, product_id, qty_ordered, qty_picked, uom, notes`

// AddLine agrega una línea a la entrega.
func (r *DeliveryRepo) AddLine(line *entity.DeliveryLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO delivery_lines (` + deliveryLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.DeliveryID, line.ProductID, line.QtyOrdered, line.QtyPicked,
		line.UOM, line.Notes,
	)
	if err != nil {
		return fmt.Errorf("add delivery line: %w", err)
	}
	return nil
}

// GetLine obtiene una línea por ID. Devuelve nil si no existe.
func (r *DeliveryRepo) GetLine(lineID string) (*entity.DeliveryLine, error) {
	query := `SELECT ` + deliveryLineColumns + ` FROM delivery_lines WHERE id = $1`
	var ln entity.DeliveryLine
	err := r.q.QueryRow(context.Background(), query, lineID).Scan(
		&ln.ID, &ln.DeliveryID, &ln.ProductID, &ln.QtyOrdered, &ln.QtyPicked,
		&ln.UOM, &ln.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery line: %w", err)
	}
	return &ln, nil
}

// UpdateLine actualiza cantidades y notas de una línea.
func (r *DeliveryRepo) UpdateLine(line *entity.DeliveryLine) error {
	query := `
		UPDATE delivery_lines
		SET qty_ordered = $2, qty_picked = $3, uom = $4, notes = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.QtyOrdered, line.QtyPicked, line.UOM, line.Notes,
	)
	if err != nil {
		return fmt.Errorf("update delivery line: %w", err)
	}
	return nil
}

// DeleteLine elimina una línea.
func (r *DeliveryRepo) DeleteLine(lineID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM delivery_lines WHERE id = $1`, lineID)
	if err != nil {
		return fmt.Errorf("delete delivery line: %w", err)
	}
	return nil
}

// ListLines lista las líneas de una entrega.
func (r *DeliveryRepo) ListLines(deliveryID string) ([]*entity.DeliveryLine, error) {
	query := `SELECT ` + deliveryLineColumns + ` FROM delivery_lines WHERE delivery_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("list delivery lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryLine
	for rows.Next() {
		var ln entity.DeliveryLine
		if err := rows.Scan(&ln.ID, &ln.DeliveryID, &ln.ProductID, &ln.QtyOrdered, &ln.QtyPicked,
			&ln.UOM, &ln.Notes); err != nil {
			return nil, fmt.Errorf("scan delivery line: %w", err)
		}
		list = append(list, &ln)
	}
	return list, rows.Err()
}
