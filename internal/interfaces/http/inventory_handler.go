package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/export"
)

// InventoryHandler lecturas de inventario: balances, exporte xlsx y ledger (protegido).
type InventoryHandler struct {
	uc *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ListBalances godoc
// @Summary      Listar balances por producto y bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.Response{data=[]dto.BalanceResponse}
// @Router       /api/inventory/balances [get]
func (h *InventoryHandler) ListBalances(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	items, total, err := h.uc.ListBalances(c.Query("warehouse_id"), c.Query("product_id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, items, total, page.Limit, page.Offset)
}

// ExportBalances godoc
// @Summary      Exportar balances a xlsx
// @Tags         inventory
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Success      200  {file}  binary
// @Router       /api/inventory/balances/export [get]
func (h *InventoryHandler) ExportBalances(c *fiber.Ctx) error {
	rows, err := h.uc.ExportBalances(c.Query("warehouse_id"), c.Query("product_id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="balances.xlsx"`)
	if err := export.WriteBalancesExcel(c.Response().BodyWriter(), rows); err != nil {
		return respondError(c, err)
	}
	return nil
}

// ListLedger godoc
// @Summary      Historial del stock ledger
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        type          query  string  false  "Tipo de asiento"
// @Param        from          query  string  false  "Desde (RFC3339)"
// @Param        to            query  string  false  "Hasta (RFC3339)"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.Response{data=[]dto.LedgerEntryResponse}
// @Router       /api/inventory/ledger [get]
func (h *InventoryHandler) ListLedger(c *fiber.Ctx) error {
	var q dto.LedgerQuery
	if err := c.QueryParser(&q); err != nil {
		return respondBadRequest(c, "query inválida")
	}
	if err := dto.Validate(q); err != nil {
		return respondBadRequest(c, err.Error())
	}
	q.DefaultPage()
	items, total, err := h.uc.ListLedger(q)
	if err != nil {
		return respondError(c, err)
	}
	return respondList(c, items, total, q.Limit, q.Offset)
}
