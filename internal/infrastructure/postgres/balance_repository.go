package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implementación de BalanceRepository sobre PostgreSQL (usable con pool o tx).
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador de balances. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get obtiene el balance actual de un producto en una bodega.
// Sin fila devuelve un balance en cero: ausencia de fila equivale a cantidad cero.
func (r *BalanceRepo) Get(productID, warehouseID string) (*entity.Balance, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, reserved, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2`
	var b entity.Balance
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&b.ProductID, &b.WarehouseID, &b.Quantity, &b.Reserved, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Balance{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero, Reserved: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// GetForUpdate obtiene el balance y bloquea la fila (SELECT FOR UPDATE).
func (r *BalanceRepo) GetForUpdate(productID, warehouseID string) (*entity.Balance, error) {
	query := `
		SELECT product_id, warehouse_id, quantity, reserved, updated_at
		FROM inventory WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var b entity.Balance
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&b.ProductID, &b.WarehouseID, &b.Quantity, &b.Reserved, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Balance{ProductID: productID, WarehouseID: warehouseID, Quantity: decimal.Zero, Reserved: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return &b, nil
}

// Upsert inserta o actualiza la fila de balance (por producto y bodega).
func (r *BalanceRepo) Upsert(balance *entity.Balance) error {
	query := `
		INSERT INTO inventory (product_id, warehouse_id, quantity, reserved, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, warehouse_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, reserved = EXCLUDED.reserved, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		balance.ProductID, balance.WarehouseID, balance.Quantity, balance.Reserved)
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// List lista balances con nombres de producto y bodega resueltos.
func (r *BalanceRepo) List(filter repository.BalanceFilter) ([]repository.BalanceView, error) {
	query := `
		SELECT i.product_id, p.name, p.sku, i.warehouse_id, w.name,
		       i.quantity, i.reserved, i.quantity - i.reserved, i.updated_at
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND i.warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND i.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY p.name, w.name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()
	var list []repository.BalanceView
	for rows.Next() {
		var v repository.BalanceView
		if err := rows.Scan(&v.ProductID, &v.ProductName, &v.SKU, &v.WarehouseID, &v.WarehouseName,
			&v.Quantity, &v.Reserved, &v.Available, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Count cuenta balances según el filtro.
func (r *BalanceRepo) Count(filter repository.BalanceFilter) (int, error) {
	query := `SELECT COUNT(*) FROM inventory WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.WarehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, filter.WarehouseID)
		pos++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count balances: %w", err)
	}
	return total, nil
}
