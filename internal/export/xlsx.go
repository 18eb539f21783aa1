// Package export renders shopping lists as spreadsheet files.
package export

import (
	"fmt"
	"io"

	"github.com/pageza/ourkitchen/backend/internal/service"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the list.
const SheetName = "Shopping List"

// ContentType is the MIME type of the files written by WriteShoppingListXLSX.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const nonConvertibleNote = "not convertible to weight"

// WriteShoppingListXLSX writes list as a single-sheet workbook: one row per
// line after a header, followed by a blank row and the summary.
func WriteShoppingListXLSX(w io.Writer, list *service.ShoppingList) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("failed to open sheet writer: %w", err)
	}
	if err := sw.SetColWidth(1, 1, 32); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	header := []interface{}{"Item", "Quantity", "Amount", "Unit", "Note"}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, line := range list.Items {
		note := ""
		if line.NonConvertible {
			note = nonConvertibleNote
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []interface{}{line.Name, line.Display, line.Amount, line.Unit, note}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
	}

	cell, _ := excelize.CoordinatesToCellName(1, row+1)
	if err := sw.SetRow(cell, []interface{}{list.Summary()}); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
