package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura para el dashboard.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador del dashboard. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetKPIs calcula los indicadores globales en una sola pasada por consulta:
// totales del catálogo e inventario, productos bajo reorden o agotados, y
// operaciones pendientes (todo estado no terminal).
func (r *DashboardRepo) GetKPIs(ctx context.Context) (*repository.KPIResult, error) {
	var out repository.KPIResult

	inventoryQuery := `
		SELECT COUNT(DISTINCT p.id),
		       COALESCE(SUM(i.quantity), 0),
		       COALESCE(SUM(i.quantity * p.unit_cost), 0)
		FROM products p
		LEFT JOIN inventory i ON i.product_id = p.id
		WHERE p.is_active = true`
	if err := r.q.QueryRow(ctx, inventoryQuery).Scan(
		&out.TotalProducts, &out.TotalQuantity, &out.TotalValue,
	); err != nil {
		return nil, fmt.Errorf("kpi inventario: %w", err)
	}

	stockQuery := `
		SELECT
			COUNT(*) FILTER (WHERE qty.total > 0 AND qty.total <= p.reorder_level),
			COUNT(*) FILTER (WHERE qty.total <= 0)
		FROM products p
		JOIN LATERAL (
			SELECT COALESCE(SUM(i.quantity - i.reserved), 0) AS total
			FROM inventory i WHERE i.product_id = p.id
		) qty ON true
		WHERE p.is_active = true AND p.reorder_level > 0`
	if err := r.q.QueryRow(ctx, stockQuery).Scan(
		&out.LowStockItems, &out.OutOfStockItems,
	); err != nil {
		return nil, fmt.Errorf("kpi stock: %w", err)
	}

	pendingQuery := `
		SELECT
			(SELECT COUNT(*) FROM receipts WHERE status NOT IN ('Done', 'Canceled')),
			(SELECT COUNT(*) FROM deliveries WHERE status NOT IN ('Done', 'Canceled')),
			(SELECT COUNT(*) FROM transfers WHERE status NOT IN ('Done', 'Canceled'))`
	if err := r.q.QueryRow(ctx, pendingQuery).Scan(
		&out.PendingReceipts, &out.PendingDeliveries, &out.ScheduledTransfers,
	); err != nil {
		return nil, fmt.Errorf("kpi pendientes: %w", err)
	}

	return &out, nil
}

// ListLowStock lista pares producto-bodega con disponible por debajo del
// nivel de reorden, los más críticos primero.
func (r *DashboardRepo) ListLowStock(ctx context.Context, limit int) ([]repository.LowStockRow, error) {
	query := `
		SELECT p.id, p.name, p.sku, w.id, w.name,
		       i.quantity - i.reserved, p.reorder_level
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE p.is_active = true
		  AND p.reorder_level > 0
		  AND i.quantity - i.reserved <= p.reorder_level
		ORDER BY (i.quantity - i.reserved) / p.reorder_level ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.SKU,
			&row.WarehouseID, &row.WarehouseName, &row.Available, &row.ReorderLevel); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
