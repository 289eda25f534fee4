// Package report renders saved estimates as PDF quotations and Excel workbooks.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/tileworks/tile-estimator/internal/domain/model"
)

// ErrNilCustomer is returned when there is nothing to render.
var ErrNilCustomer = errors.New("report: nil customer")

// ShopName is printed at the top of every quotation.
var ShopName = "Tile Estimate"

// item table column widths in mm, summing to the A4 printable width
var itemColumns = []struct {
	title string
	width float64
	align string
}{
	{"Item", 30, "L"},
	{"Design", 28, "L"},
	{"Details", 44, "L"},
	{"Boxes", 14, "R"},
	{"Area (sqft)", 20, "R"},
	{"Rate", 14, "R"},
	{"Cost (Rs)", 20, "R"},
	{"Weight (kg)", 20, "R"},
}

// qrSizeMM is the printed edge of the lookup code.
const qrSizeMM = 24.0

// estimateCode is the payload of the lookup code printed on saved estimates.
type estimateCode struct {
	ID    string  `json:"id"`
	Phone string  `json:"phone"`
	Total float64 `json:"total"`
}

// EstimatePDF writes an A4 quotation for c to w.
func EstimatePDF(w io.Writer, c *model.Customer) error {
	if c == nil {
		return ErrNilCustomer
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetTitle(fmt.Sprintf("Estimate for %s", c.FullName), false)
	pdf.AddPage()

	codeBottom, err := writeLookupCode(pdf, c)
	if err != nil {
		return err
	}

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, ShopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	date := c.CreatedAt
	if date.IsZero() {
		date = time.Now()
	}
	pdf.CellFormat(0, 6, "Date: "+date.Format("02 Jan 2006"), "", 1, "R", false, 0, "")
	pdf.Ln(2)
	if pdf.GetY() < codeBottom {
		pdf.SetY(codeBottom + 2)
	}

	writeCustomerBlock(pdf, c)

	for _, room := range c.Rooms {
		writeRoom(pdf, room)
	}

	writeTotals(pdf, c)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return pdf.Output(w)
}

// writeLookupCode prints a QR code in the top left corner for saved customers
// and returns the y position below it. Unsaved customers get no code.
func writeLookupCode(pdf *gofpdf.Fpdf, c *model.Customer) (float64, error) {
	if c.ID.IsZero() {
		return 0, nil
	}

	payload, err := json.Marshal(estimateCode{ID: c.ID.Hex(), Phone: c.Phone, Total: c.TotalAmount})
	if err != nil {
		return 0, fmt.Errorf("encode lookup code: %w", err)
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return 0, fmt.Errorf("encode lookup code: %w", err)
	}

	left, top, _, _ := pdf.GetMargins()
	name := "lookup_" + c.ID.Hex()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, left, top, qrSizeMM, qrSizeMM, false, opts, 0, "")
	return top + qrSizeMM, nil
}

func writeCustomerBlock(pdf *gofpdf.Fpdf, c *model.Customer) {
	rows := [][2]string{
		{"Customer", c.FullName},
		{"Phone", c.Phone},
		{"Address", c.Address},
		{"Attender", c.Attender},
		{"Attender Phone", c.AttenderPhone},
	}
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(35, 6, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, row[1], "", "L", false)
	}
	pdf.Ln(4)
}

func writeRoom(pdf *gofpdf.Fpdf, room model.CustomerRoom) {
	pdf.SetFont("Arial", "B", 12)
	title := room.Name
	if room.AreaType != "" && room.AreaType != room.Name {
		title = fmt.Sprintf("%s (%s)", room.Name, room.AreaType)
	}
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for _, col := range itemColumns {
		pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(room.Items) == 0 {
		pdf.CellFormat(columnsWidth(), 7, "No tiles selected", "1", 1, "C", false, 0, "")
	}
	for _, item := range room.Items {
		cells := []string{
			item.Type,
			item.Design,
			itemDetails(item),
			fmt.Sprintf("%d", item.Boxes),
			formatNumber(item.Area),
			formatNumber(item.Price),
			formatNumber(item.Cost),
			formatNumber(item.Weight),
		}
		for i, col := range itemColumns {
			pdf.CellFormat(col.width, 7, fit(pdf, cells[i], col.width), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 9)
	lead := itemColumns[0].width + itemColumns[1].width + itemColumns[2].width + itemColumns[3].width
	pdf.CellFormat(lead, 7, "Room total", "1", 0, "R", true, 0, "")
	pdf.CellFormat(itemColumns[4].width, 7, formatNumber(room.TotalArea), "1", 0, "R", true, 0, "")
	pdf.CellFormat(itemColumns[5].width, 7, "", "1", 0, "R", true, 0, "")
	pdf.CellFormat(itemColumns[6].width, 7, formatNumber(room.TotalCost), "1", 0, "R", true, 0, "")
	pdf.CellFormat(itemColumns[7].width, 7, formatNumber(room.TotalWeight), "1", 1, "R", true, 0, "")
	pdf.Ln(4)
}

func writeTotals(pdf *gofpdf.Fpdf, c *model.Customer) {
	rows := [][2]string{
		{"Total Area (sqft)", formatNumber(c.TotalArea)},
		{"Total Weight (kg)", formatNumber(c.TotalWeight)},
		{"Tile Cost (Rs)", formatNumber(c.TotalTileCost)},
		{"Loading Charges (Rs)", formatNumber(c.LoadingCharges)},
	}

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.CellFormat(150, 7, row[0], "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(150, 8, "Grand Total (Rs)", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, formatNumber(c.TotalAmount), "1", 1, "R", true, 0, "")
}

// itemDetails summarises dimensions and the tile split of a line item.
func itemDetails(item model.CustomerItem) string {
	parts := make([]string, 0, 3)
	if item.Description != "" {
		parts = append(parts, item.Description)
	}
	if item.TilesPerWidth > 0 || item.TilesPerLength > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d tiles", item.TilesPerWidth, item.TilesPerLength))
	}
	if item.DarkBoxes > 0 || item.HighlightBoxes > 0 || item.LightBoxes > 0 {
		parts = append(parts, fmt.Sprintf("D%d/H%d/L%d", item.DarkBoxes, item.HighlightBoxes, item.LightBoxes))
	}
	return strings.Join(parts, ", ")
}

// fit truncates s so it renders inside a cell of the given width.
func fit(pdf *gofpdf.Fpdf, s string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(s) <= limit {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"..") > limit {
		r = r[:len(r)-1]
	}
	return string(r) + ".."
}

func columnsWidth() float64 {
	var total float64
	for _, col := range itemColumns {
		total += col.width
	}
	return total
}

// formatNumber prints whole values without decimals and the rest with two.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
