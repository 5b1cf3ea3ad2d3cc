package billing

import (
	"bytes"
	"testing"
	"time"
)

func renderSample(t *testing.T, items []LineItem) []byte {
	t.Helper()
	var total float64
	for _, item := range items {
		total += item.Amount()
	}
	inv, err := Compose(items, total, CustomerInfo{
		Name:      "Asha Rao",
		Phone:     "9876543210",
		Address:   "12 Main Rd, Attilli",
		VehicleNo: "AP37AB1234",
	}, BillerInfo{Name: "ravi", Email: "ravi@example.com"}, time.Now())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	var buf bytes.Buffer
	if err := inv.RenderPDF(&buf); err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	return buf.Bytes()
}

func TestRenderPDF(t *testing.T) {
	out := renderSample(t, sampleCart)
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF header")
	}
	if len(out) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(out))
	}
}

func TestRenderPDFLongCart(t *testing.T) {
	// Enough rows to force the table onto a second page.
	items := make([]LineItem, 60)
	for i := range items {
		items[i] = LineItem{Name: "Cups (Small)", Quantity: 1, UnitPrice: 25}
	}
	out := renderSample(t, items)
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF header")
	}
}
