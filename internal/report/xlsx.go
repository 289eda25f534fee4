package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

const (
	// CustomersSheet holds one row per saved customer.
	CustomersSheet = "Customers"
	// ItemsSheet holds one row per line item across every customer.
	ItemsSheet = "Items"
)

var customerHeaders = []any{
	"ID", "Created", "Full Name", "Phone", "Address", "Attender", "Attender Phone",
	"Rooms", "Total Area (sqft)", "Total Weight (kg)", "Tile Cost", "Loading Charges", "Total Amount",
}

var itemHeaders = []any{
	"Customer ID", "Customer", "Room", "Area Type", "Item", "Design", "Details",
	"Boxes", "Area (sqft)", "Rate", "Cost", "Weight (kg)",
}

// CustomersWorkbook writes an xlsx export of customers to w.
func CustomersWorkbook(w io.Writer, customers []model.Customer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CustomersSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(ItemsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"F0F0F0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	if err := writeHeader(f, CustomersSheet, customerHeaders, header); err != nil {
		return err
	}
	if err := writeHeader(f, ItemsSheet, itemHeaders, header); err != nil {
		return err
	}

	itemRow := 2
	for i, c := range customers {
		id := c.ID.Hex()
		created := ""
		if !c.CreatedAt.IsZero() {
			created = c.CreatedAt.Format("2006-01-02 15:04")
		}
		row := []any{
			id, created, c.FullName, c.Phone, c.Address, c.Attender, c.AttenderPhone,
			len(c.Rooms), c.TotalArea, c.TotalWeight, c.TotalTileCost, c.LoadingCharges, c.TotalAmount,
		}
		if err := setRow(f, CustomersSheet, i+2, row); err != nil {
			return err
		}

		for _, room := range c.Rooms {
			for _, item := range room.Items {
				row := []any{
					id, c.FullName, room.Name, room.AreaType, item.Type, item.Design, itemDetails(item),
					item.Boxes, item.Area, item.Price, item.Cost, item.Weight,
				}
				if err := setRow(f, ItemsSheet, itemRow, row); err != nil {
					return err
				}
				itemRow++
			}
		}
	}

	for _, sheet := range []string{CustomersSheet, ItemsSheet} {
		if err := f.SetColWidth(sheet, "A", "M", 16); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	idx, err := f.GetSheetIndex(CustomersSheet)
	if err != nil {
		return fmt.Errorf("find sheet: %w", err)
	}
	f.SetActiveSheet(idx)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, titles []any, style int) error {
	if err := setRow(f, sheet, 1, titles); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(titles), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
