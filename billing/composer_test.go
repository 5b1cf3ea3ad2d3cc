package billing

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		sgst     float64
		cgst     float64
		grand    int64
	}{
		{"round figure", 1000.00, 25.00, 25.00, 1050},
		{"round half up", 333, 8.325, 8.325, 350}, // raw total 349.65
		{"sample cart", 150, 3.75, 3.75, 158},     // 157.5 rounds up
		{"zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.subtotal)
			if !almostEqual(got.SGST, tt.sgst) {
				t.Errorf("SGST = %v, want %v", got.SGST, tt.sgst)
			}
			if !almostEqual(got.CGST, tt.cgst) {
				t.Errorf("CGST = %v, want %v", got.CGST, tt.cgst)
			}
			if got.GrandTotal != tt.grand {
				t.Errorf("GrandTotal = %d, want %d", got.GrandTotal, tt.grand)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Asha Rao", "Asha Rao"},
		{"trims whitespace", "  Asha Rao  ", "Asha Rao"},
		{"strips tags", "<b>Bob</b>", "bBob/b"},
		{"strips script", "<script>", "script"},
		{"bracket exposing space", "< hi", "hi"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"Asha Rao",
		"  <script>alert('x')</script>  ",
		"< hi >",
		strings.Repeat("a ", 400),
		strings.Repeat("<", 600),
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeTruncates(t *testing.T) {
	in := strings.Repeat("a", 600)
	got := Sanitize(in)
	if len(got) != 500 {
		t.Fatalf("len(Sanitize(600 chars)) = %d, want 500", len(got))
	}
}

var sampleCart = []LineItem{
	{Name: "Chocobar (Big)", Quantity: 2, UnitPrice: 45},
	{Name: "Lollies", Quantity: 3, UnitPrice: 20},
}

var sampleCustomer = CustomerInfo{Name: "Asha Rao", Phone: "9876543210"}

func TestComposeSampleCart(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	inv, err := Compose(sampleCart, 150, sampleCustomer, BillerInfo{Name: "ravi", Email: "ravi@example.com"}, now)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	if inv.Totals.GrandTotal != 158 {
		t.Errorf("GrandTotal = %d, want 158", inv.Totals.GrandTotal)
	}
	if !strings.HasPrefix(inv.Number, "SKF") {
		t.Errorf("bill number %q lacks SKF prefix", inv.Number)
	}
	if inv.Date != "01/09/2026" {
		t.Errorf("Date = %q, want 01/09/2026", inv.Date)
	}
	if got, want := inv.FileName(), "Sri_Karthikeya_Bill_"+inv.Number+".pdf"; got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}

	rows := inv.TableRows()
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	if rows[0][1] != "Chocobar (Big)" || rows[0][4] != "90" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][1] != "Lollies" || rows[1][4] != "60" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][1] != "SUBTOTAL" || rows[2][4] != "150.00" {
		t.Errorf("subtotal row = %v", rows[2])
	}
	if rows[3][1] != "SGST @ 2.5% + CGST @ 2.5%" || rows[3][3] != "3.75 + 3.75" || rows[3][4] != "7.50" {
		t.Errorf("tax row = %v", rows[3])
	}
	if rows[4][1] != "GRAND TOTAL" || rows[4][4] != "158" {
		t.Errorf("grand total row = %v", rows[4])
	}
}

func TestTableRowsOrdering(t *testing.T) {
	for n := 1; n <= 10; n++ {
		items := make([]LineItem, n)
		var total float64
		for i := range items {
			items[i] = LineItem{Name: "Item", Quantity: i + 1, UnitPrice: 10}
			total += items[i].Amount()
		}
		inv, err := Compose(items, total, sampleCustomer, BillerInfo{}, time.Now())
		if err != nil {
			t.Fatalf("Compose(n=%d): %v", n, err)
		}
		rows := inv.TableRows()
		if len(rows) != n+3 {
			t.Fatalf("n=%d: got %d rows, want %d", n, len(rows), n+3)
		}
		if rows[n][1] != "SUBTOTAL" || rows[n+1][1] != "SGST @ 2.5% + CGST @ 2.5%" || rows[n+2][1] != "GRAND TOTAL" {
			t.Errorf("n=%d: summary rows out of order: %v %v %v", n, rows[n][1], rows[n+1][1], rows[n+2][1])
		}
	}
}

func TestComposeTotalMismatch(t *testing.T) {
	_, err := Compose(sampleCart, 140, sampleCustomer, BillerInfo{}, time.Now())
	if !errors.Is(err, ErrTotalMismatch) {
		t.Fatalf("err = %v, want ErrTotalMismatch", err)
	}
}

func TestComposeSanitizesFields(t *testing.T) {
	customer := CustomerInfo{
		Name:         " <Asha> ",
		Phone:        "9876543210",
		Address:      "<br>12 Main Rd",
		DeliveryNote: strings.Repeat("x", 600),
	}
	inv, err := Compose(sampleCart, 150, customer, BillerInfo{Name: "<root>", Email: "a@b.c"}, time.Now())
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	for _, s := range []string{
		inv.Customer.Name, inv.Customer.Address, inv.Customer.DeliveryNote,
		inv.Biller.Name, inv.Biller.Email,
	} {
		if strings.ContainsAny(s, "<>") {
			t.Errorf("field %q contains angle brackets", s)
		}
		if len(s) > 500 {
			t.Errorf("field exceeds 500 bytes: %d", len(s))
		}
	}
	if inv.Customer.Name != "Asha" {
		t.Errorf("Name = %q, want %q", inv.Customer.Name, "Asha")
	}
	// Line item names pass through verbatim
	if inv.Items[0].Name != "Chocobar (Big)" {
		t.Errorf("item name changed: %q", inv.Items[0].Name)
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00"},
		{158, "158.00"},
		{1050, "1,050.00"},
		{100000, "1,00,000.00"},
		{12345678, "1,23,45,678.00"},
	}
	for _, tt := range tests {
		if got := FormatINR(tt.in); got != tt.want {
			t.Errorf("FormatINR(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
