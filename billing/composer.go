// Package billing turns a reviewed cart into a printable bill. The composer
// is a pure transformation over already-validated input; the only side
// effect lives in RenderPDF, which writes the finished document to an
// io.Writer in one shot.
package billing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Fixed issuer identity printed on every bill.
const (
	BusinessName   = "SRI KARTHIKEYA FROZEN FOODS"
	businessAddr1  = "Opp Bus Stand, 4-107/2, Beside DP Restaurant"
	businessAddr2  = "Attilli, West Godavari, Andhra Pradesh, 534134"
	businessLegal  = "Legal Name: GOKARAKONDA CHAITANYA"
	businessGSTIN  = "GSTIN: 37DZVPK8712C1ZY"
	businessPhones = "Phone: +91 9133363104, +91 9848222534"
	signatureLine  = "For Sri Karthikeya Frozen Foods"

	billNumberPrefix = "SKF"
	fileNamePrefix   = "Sri_Karthikeya_Bill_"
)

// taxRate is the rate applied twice, once as SGST and once as CGST.
const taxRate = 0.025

// maxFieldLen caps every free-text field placed into the document.
const maxFieldLen = 500

// ErrTotalMismatch is returned when the caller-supplied cart total does not
// agree with the sum of the line items.
var ErrTotalMismatch = errors.New("cart total does not match line items")

// GenerationError wraps a document engine failure. The bill can be retried;
// nothing was written.
type GenerationError struct {
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("failed to generate bill PDF: %v", e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// LineItem is one product-quantity-price tuple from the cart. The name is
// catalog display text and is rendered verbatim.
type LineItem struct {
	Name      string  `json:"name" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unitPrice" binding:"min=0"`
}

// Amount is the line total.
func (li LineItem) Amount() float64 {
	return float64(li.Quantity) * li.UnitPrice
}

// CustomerInfo is the billing recipient. Name and phone are required and
// validated by the caller; the composer only sanitizes for rendering.
type CustomerInfo struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address"`
	VehicleNo    string `json:"vehicleNo"`
	DeliveryNote string `json:"deliveryNote"`
}

// BillerInfo identifies the staff member issuing the bill.
type BillerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Totals holds the computed money figures for a bill.
type Totals struct {
	Subtotal   float64
	SGST       float64
	CGST       float64
	GrandTotal int64
}

// ComputeTotals applies SGST and CGST at 2.5% each and rounds the grand
// total half-up to whole rupees.
func ComputeTotals(subtotal float64) Totals {
	sgst := subtotal * taxRate
	cgst := subtotal * taxRate
	grand := int64(math.Floor(subtotal + sgst + cgst + 0.5))
	return Totals{
		Subtotal:   subtotal,
		SGST:       sgst,
		CGST:       cgst,
		GrandTotal: grand,
	}
}

// Sanitize prepares a free-text field for the document: angle brackets are
// stripped, surrounding whitespace removed, and the result capped at 500
// bytes. Sanitizing twice yields the same string.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = strings.TrimSpace(s)
	if len(s) > maxFieldLen {
		s = strings.TrimSpace(s[:maxFieldLen])
	}
	return s
}

func sanitizeCustomer(c CustomerInfo) CustomerInfo {
	return CustomerInfo{
		Name:         Sanitize(c.Name),
		Phone:        Sanitize(c.Phone),
		Address:      Sanitize(c.Address),
		VehicleNo:    Sanitize(c.VehicleNo),
		DeliveryNote: Sanitize(c.DeliveryNote),
	}
}

// Invoice is a fully laid-out bill, ready to render. It is never persisted.
type Invoice struct {
	Number   string
	Date     string
	Customer CustomerInfo
	Biller   BillerInfo
	Items    []LineItem
	Totals   Totals
}

// Compose assembles a bill from the cart. The supplied cart total is checked
// against the recomputed line item sum and rejected on divergence. now
// drives the bill number and date.
func Compose(items []LineItem, totalAmount float64, customer CustomerInfo, biller BillerInfo, now time.Time) (*Invoice, error) {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount()
	}
	if math.Abs(subtotal-totalAmount) >= 0.01 {
		return nil, ErrTotalMismatch
	}

	return &Invoice{
		Number:   billNumberPrefix + strconv.FormatInt(now.UnixMilli(), 10),
		Date:     now.Format("02/01/2006"),
		Customer: sanitizeCustomer(customer),
		Biller: BillerInfo{
			Name:  Sanitize(biller.Name),
			Email: Sanitize(biller.Email),
		},
		Items:  items,
		Totals: ComputeTotals(subtotal),
	}, nil
}

// FileName is the download name for the rendered document.
func (inv *Invoice) FileName() string {
	return fileNamePrefix + inv.Number + ".pdf"
}

// TableRows lays out the itemized table body: one row per line item in cart
// order, then SUBTOTAL, the combined tax row and GRAND TOTAL. Columns are
// sequence number, particulars, quantity, rate and amount.
func (inv *Invoice) TableRows() [][]string {
	rows := make([][]string, 0, len(inv.Items)+3)
	for i, item := range inv.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			item.Name,
			strconv.Itoa(item.Quantity),
			formatPlain(item.UnitPrice),
			formatPlain(item.Amount()),
		})
	}
	t := inv.Totals
	rows = append(rows,
		[]string{"", "SUBTOTAL", "", "", fmt.Sprintf("%.2f", t.Subtotal)},
		[]string{"", "SGST @ 2.5% + CGST @ 2.5%", "",
			fmt.Sprintf("%.2f + %.2f", t.SGST, t.CGST),
			fmt.Sprintf("%.2f", t.SGST+t.CGST)},
		[]string{"", "GRAND TOTAL", "", "", strconv.FormatInt(t.GrandTotal, 10)},
	)
	return rows
}

// formatPlain prints a price without trailing zeros, the way the catalog
// shows it (45, not 45.00; 45.5 stays 45.5).
func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatINR renders a whole rupee amount with Indian digit grouping and two
// decimal places, e.g. 1050 -> "1,050.00" and 150000 -> "1,50,000.00".
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var groups []string
	// last group of three, then groups of two
	if len(digits) > 3 {
		groups = append(groups, digits[len(digits)-3:])
		digits = digits[:len(digits)-3]
		for len(digits) > 2 {
			groups = append(groups, digits[len(digits)-2:])
			digits = digits[:len(digits)-2]
		}
	}
	groups = append(groups, digits)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := len(groups) - 1; i >= 0; i-- {
		b.WriteString(groups[i])
		if i > 0 {
			b.WriteByte(',')
		}
	}
	b.WriteString(".00")
	return b.String()
}
