package billing

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

// A4 portrait, millimeter coordinates.
const (
	pageCenter  = 105
	rightEdge   = 190
	leftMargin  = 20
	rowHeight   = 7
	breakY      = 270 // start a new page before a table row past this line
	footerLimit = 220 // lowest finalY that still fits the footer blocks
)

// Table column widths: seq no, particulars, qty, rate, amount.
var colWidths = [5]float64{15, 70, 15, 25, 25}

var colAligns = [5]string{"C", "L", "C", "R", "R"}

var tableHeader = [5]string{"Sl.No", "PARTICULARS", "QTY", "RATE", "AMOUNT Rs. P"}

// RenderPDF writes the finished bill document to w. The document is built
// in memory first; on engine failure a GenerationError is returned and
// nothing is written.
func (inv *Invoice) RenderPDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Issuer header
	pdf.SetFont("Helvetica", "B", 16)
	textAt(pdf, pageCenter, 20, "C", BusinessName)

	pdf.SetFont("Helvetica", "", 10)
	textAt(pdf, pageCenter, 30, "C", businessAddr1)
	textAt(pdf, pageCenter, 36, "C", businessAddr2)
	textAt(pdf, pageCenter, 42, "C", businessLegal)
	textAt(pdf, pageCenter, 48, "C", businessGSTIN)

	// Bill details, right aligned
	textAt(pdf, rightEdge, 58, "R", businessPhones)
	textAt(pdf, rightEdge, 65, "R", "Bill No: "+inv.Number)
	textAt(pdf, rightEdge, 72, "R", "Date: "+inv.Date)

	// Customer block; optional lines are skipped when empty
	customerY := 83.0
	textAt(pdf, leftMargin, customerY, "L", "To: "+inv.Customer.Name)
	customerY += rowHeight
	textAt(pdf, leftMargin, customerY, "L", "Phone: "+inv.Customer.Phone)
	if inv.Customer.Address != "" {
		customerY += rowHeight
		textAt(pdf, leftMargin, customerY, "L", "Address: "+inv.Customer.Address)
	}
	if inv.Customer.VehicleNo != "" {
		customerY += rowHeight
		textAt(pdf, leftMargin, customerY, "L", "Vehicle No: "+inv.Customer.VehicleNo)
	}
	if inv.Customer.DeliveryNote != "" {
		customerY += rowHeight
		textAt(pdf, leftMargin, customerY, "L", "Delivery Note: "+inv.Customer.DeliveryNote)
	}

	// Itemized table
	y := customerY + 10
	y = drawHeaderRow(pdf, y)
	rows := inv.TableRows()
	summaryStart := len(rows) - 3
	for i, row := range rows {
		if y+rowHeight > breakY {
			pdf.AddPage()
			y = drawHeaderRow(pdf, 20)
		}
		style := ""
		if i >= summaryStart {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.SetXY(leftMargin, y)
		for col, cell := range row {
			pdf.CellFormat(colWidths[col], rowHeight, cell, "1", 0, colAligns[col], false, 0, "")
		}
		y += rowHeight
	}

	// Footer blocks need ~70mm; push them to a fresh page if the table ran long
	finalY := y + 15
	if finalY > footerLimit {
		pdf.AddPage()
		finalY = 30
	}

	pdf.SetFont("Helvetica", "B", 14)
	textAt(pdf, leftMargin, finalY, "L", "TOTAL AMOUNT")

	pdf.Rect(120, finalY-8, 50, 15, "D")
	pdf.SetFont("Helvetica", "B", 12)
	textAt(pdf, 145, finalY+2, "C", "Rs. "+FormatINR(inv.Totals.GrandTotal))

	pdf.SetFont("Helvetica", "", 9)
	textAt(pdf, leftMargin, finalY+15, "L", "Billed By: "+inv.Biller.Name)
	textAt(pdf, leftMargin, finalY+21, "L", "Email: "+inv.Biller.Email)

	pdf.SetFont("Helvetica", "", 8)
	textAt(pdf, leftMargin, finalY+33, "L", "Terms and Conditions")

	pdf.SetFont("Helvetica", "", 10)
	textAt(pdf, 130, finalY+43, "L", signatureLine)
	textAt(pdf, 130, finalY+63, "L", "Authorised Signatory")
	pdf.Line(130, finalY+66, 190, finalY+66)

	if pdf.Err() {
		return &GenerationError{Cause: pdf.Error()}
	}
	if err := pdf.Output(w); err != nil {
		return &GenerationError{Cause: err}
	}
	return nil
}

func drawHeaderRow(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetLineWidth(0.1)
	pdf.SetXY(leftMargin, y)
	for col, cell := range tableHeader {
		pdf.CellFormat(colWidths[col], rowHeight, cell, "1", 0, "C", true, 0, "")
	}
	return y + rowHeight
}

// textAt places s so that x is its left edge, center or right edge,
// with y as the text baseline.
func textAt(pdf *gofpdf.Fpdf, x, y float64, align, s string) {
	switch align {
	case "C":
		x -= pdf.GetStringWidth(s) / 2
	case "R":
		x -= pdf.GetStringWidth(s)
	}
	pdf.Text(x, y, s)
}
