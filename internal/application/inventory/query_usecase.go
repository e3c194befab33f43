package inventory

import (
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// QueryUseCase lecturas de inventario: balances y historial del ledger.
// Solo lectura; no comparte transacción con el Mutator.
type QueryUseCase struct {
	balanceRepo repository.BalanceRepository
	ledgerRepo  repository.LedgerRepository
}

// NewQueryUseCase construye el caso de uso de lecturas.
func NewQueryUseCase(balanceRepo repository.BalanceRepository, ledgerRepo repository.LedgerRepository) *QueryUseCase {
	return &QueryUseCase{balanceRepo: balanceRepo, ledgerRepo: ledgerRepo}
}

// ListBalances lista balances con nombres resueltos y filtros opcionales.
func (uc *QueryUseCase) ListBalances(warehouseID, productID string, limit, offset int) ([]dto.BalanceResponse, int, error) {
	filter := repository.BalanceFilter{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Limit:       limit,
		Offset:      offset,
	}
	rows, err := uc.balanceRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.balanceRepo.Count(filter)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.BalanceResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.BalanceResponse{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			SKU:           row.SKU,
			WarehouseID:   row.WarehouseID,
			WarehouseName: row.WarehouseName,
			Quantity:      row.Quantity,
			Reserved:      row.Reserved,
			Available:     row.Available,
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return items, total, nil
}

// ExportBalances devuelve todas las filas de balance que cumplen el filtro,
// sin paginar, para generar el reporte xlsx.
func (uc *QueryUseCase) ExportBalances(warehouseID, productID string) ([]repository.BalanceView, error) {
	filter := repository.BalanceFilter{
		WarehouseID: warehouseID,
		ProductID:   productID,
		Limit:       100000,
		Offset:      0,
	}
	return uc.balanceRepo.List(filter)
}

// ListLedger lista el historial del ledger, más reciente primero.
func (uc *QueryUseCase) ListLedger(q dto.LedgerQuery) ([]dto.LedgerEntryResponse, int, error) {
	q.DefaultPage()
	filter := repository.LedgerFilter{
		ProductID:   q.ProductID,
		WarehouseID: q.WarehouseID,
		Type:        q.Type,
		From:        q.From,
		To:          q.To,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
	entries, err := uc.ledgerRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.ledgerRepo.Count(filter)
	if err != nil {
		return nil, 0, err
	}
	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.LedgerEntryResponse{
			ID:              e.ID,
			ProductID:       e.ProductID,
			WarehouseID:     e.WarehouseID,
			Change:          e.Change,
			Type:            e.Type,
			ReferenceType:   e.ReferenceType,
			ReferenceID:     e.ReferenceID,
			ReferenceNumber: e.ReferenceNumber,
			Notes:           e.Notes,
			CreatedBy:       e.CreatedBy,
			CreatedAt:       e.CreatedAt,
		})
	}
	return items, total, nil
}
