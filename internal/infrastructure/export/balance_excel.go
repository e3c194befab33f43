package export

import (
	"fmt"
	"io"

	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// WriteBalancesExcel genera un xlsx con el listado de balances y lo escribe en w.
func WriteBalancesExcel(w io.Writer, balances []repository.BalanceView) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := "Balances"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("renombrar hoja: %w", err)
	}

	headers := []string{"SKU", "Producto", "Bodega", "Cantidad", "Reservado", "Disponible", "Actualizado"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("escribir cabecera: %w", err)
		}
	}

	for i, b := range balances {
		row := i + 2
		values := []any{
			b.SKU,
			b.ProductName,
			b.WarehouseName,
			b.Quantity.String(),
			b.Reserved.String(),
			b.Available.String(),
			b.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("escribir fila %d: %w", row, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("escribir xlsx: %w", err)
	}
	return nil
}
