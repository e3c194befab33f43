package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, sku, barcode, category_id, uom, reorder_level, unit_cost, is_active, created_at, updated_at`

// Create persiste un producto nuevo. SKU duplicado devuelve ErrDuplicateReference.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.SKU, product.Barcode, product.CategoryID,
		product.UOM, product.ReorderLevel, product.UnitCost, product.IsActive,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReference
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepo) getBy(clause string, arg any) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + clause
	var p entity.Product
	var categoryID *string
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Barcode, &categoryID, &p.UOM,
		&p.ReorderLevel, &p.UnitCost, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

// GetByID obtiene un producto por ID. Devuelve nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy("id = $1", id)
}

// GetBySKU obtiene un producto por su SKU único.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getBy("sku = $1", sku)
}

// Update actualiza un producto.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, barcode = $3, category_id = NULLIF($4, ''), uom = $5,
		    reorder_level = $6, unit_cost = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Barcode, product.CategoryID, product.UOM,
		product.ReorderLevel, product.UnitCost, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func productFilterClause(filter repository.ProductFilter, args *[]any) string {
	clause := ""
	pos := len(*args) + 1
	if filter.CategoryID != "" {
		clause += fmt.Sprintf(" AND category_id = $%d", pos)
		*args = append(*args, filter.CategoryID)
		pos++
	}
	if filter.IsActive != nil {
		clause += fmt.Sprintf(" AND is_active = $%d", pos)
		*args = append(*args, *filter.IsActive)
	}
	return clause
}

// List lista productos con filtros opcionales de categoría y estado.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	args := []any{}
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1` + productFilterClause(filter, &args)
	pos := len(args) + 1
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var categoryID *string
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Barcode, &categoryID, &p.UOM,
			&p.ReorderLevel, &p.UnitCost, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if categoryID != nil {
			p.CategoryID = *categoryID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count cuenta productos según el filtro.
func (r *ProductRepo) Count(filter repository.ProductFilter) (int, error) {
	args := []any{}
	query := `SELECT COUNT(*) FROM products WHERE 1=1` + productFilterClause(filter, &args)
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}
