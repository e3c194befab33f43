package analytics

import (
	"context"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// DashboardUseCase agregados de solo lectura para el dashboard.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetKPIs devuelve los indicadores globales del inventario y las operaciones pendientes.
func (uc *DashboardUseCase) GetKPIs(ctx context.Context) (*dto.KPIResponse, error) {
	result, err := uc.repo.GetKPIs(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.KPIResponse{
		TotalProducts:      result.TotalProducts,
		TotalQuantity:      result.TotalQuantity,
		TotalValue:         result.TotalValue,
		LowStockItems:      result.LowStockItems,
		OutOfStockItems:    result.OutOfStockItems,
		PendingReceipts:    result.PendingReceipts,
		PendingDeliveries:  result.PendingDeliveries,
		ScheduledTransfers: result.ScheduledTransfers,
	}, nil
}

// ListLowStock lista productos cuya disponibilidad está por debajo del nivel de reorden.
func (uc *DashboardUseCase) ListLowStock(ctx context.Context, limit int) ([]dto.LowStockItemResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := uc.repo.ListLowStock(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.LowStockItemResponse{
			ProductID:     r.ProductID,
			ProductName:   r.ProductName,
			SKU:           r.SKU,
			WarehouseID:   r.WarehouseID,
			WarehouseName: r.WarehouseName,
			Available:     r.Available,
			ReorderLevel:  r.ReorderLevel,
		})
	}
	return items, nil
}
