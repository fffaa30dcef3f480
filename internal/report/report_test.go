package report

import (
	"bytes"
	"testing"

	"bassam-order-service/internal/ledger"
)

var bassam = Restaurant{
	Name:     "Grand Bassam",
	Location: "Kouara Kano, Niamey",
	Phone:    "+227 8877 0594",
	Currency: "FCFA",
}

func TestBuildReceiptDineIn(t *testing.T) {
	order := ledger.Order{
		ID:            "1709290800123",
		Timestamp:     "2024-03-01T11:00:00Z",
		DishName:      "Kedjenou de Poulet",
		Price:         6000,
		Quantity:      2,
		CustomerName:  "Moussa Koné",
		CustomerPhone: "+22790000001",
		TableNumber:   "5",
		Status:        ledger.OrderStatusPaid,
	}

	rc := BuildReceipt(order, bassam, 1000)
	if rc.Number != "REC-800123" {
		t.Fatalf("receipt number = %q, want REC-800123", rc.Number)
	}
	if rc.Subtotal != 12000 || rc.Total != 12000 {
		t.Fatalf("subtotal/total = %d/%d, want 12000/12000 (no fee for dine-in)", rc.Subtotal, rc.Total)
	}
	if rc.DeliveryFee != 0 {
		t.Fatalf("dine-in delivery fee = %d, want 0", rc.DeliveryFee)
	}
	if rc.Restaurant.Name != "Grand Bassam" {
		t.Fatalf("restaurant header = %q", rc.Restaurant.Name)
	}
}

func TestBuildReceiptDeliveryFeeOnce(t *testing.T) {
	order := ledger.Order{
		ID:         "42",
		Timestamp:  "2024-03-01T11:00:00Z",
		DishName:   "Garba",
		Price:      3500,
		Quantity:   3,
		IsDelivery: true,
		Address:    "Quartier Plateau, Rue 12",
		Status:     ledger.OrderStatusNew,
	}

	rc := BuildReceipt(order, bassam, 1000)
	if rc.Subtotal != 10500 {
		t.Fatalf("subtotal = %d, want 10500", rc.Subtotal)
	}
	if rc.Total != 11500 {
		t.Fatalf("total = %d, want 11500 (fee once, not per item)", rc.Total)
	}
	if rc.Number != "REC-000042" {
		t.Fatalf("short ids must pad: number = %q, want REC-000042", rc.Number)
	}
}

func TestBuildPeriodReport(t *testing.T) {
	orders := []ledger.Order{
		{ID: "1", Timestamp: "2024-03-01T10:00:00Z", DishName: "Garba", Price: 3500, Quantity: 2, CustomerName: "Awa", Status: ledger.OrderStatusPaid},
		{ID: "2", Timestamp: "2024-03-02T10:00:00Z", DishName: "Garba", Price: 3500, Quantity: 1, IsDelivery: true, Status: ledger.OrderStatusNew},
		{ID: "3", Timestamp: "2024-03-02T13:00:00Z", DishName: "Alloco Poisson Frit", Price: 5500, Quantity: 1, IsDelivery: true, CustomerName: "Issa", Status: ledger.OrderStatusPaid},
		{ID: "4", Timestamp: "2024-04-01T13:00:00Z", DishName: "Placali", Price: 5000, Quantity: 1, Status: ledger.OrderStatusPaid},
	}

	start, _ := ledger.ParseDay("2024-03-01")
	end, _ := ledger.ParseDay("2024-03-31")
	pr := BuildPeriodReport(orders, start, end, bassam, 1000)

	if pr.OrderCount != 2 {
		t.Fatalf("order count = %d, want 2 (paid, in range)", pr.OrderCount)
	}
	// 3500*2 + (5500 + 1000 fee); the unpaid and out-of-range orders drop out.
	if pr.Revenue != 13500 {
		t.Fatalf("revenue = %d, want 13500", pr.Revenue)
	}

	var rowsTotal int64
	for _, row := range pr.Rows {
		rowsTotal += row.LineTotal
	}
	if rowsTotal != pr.Revenue {
		t.Fatalf("rows sum to %d, headline revenue is %d", rowsTotal, pr.Revenue)
	}
	if !pr.Rows[1].IsDelivery || pr.Rows[1].LineTotal != 6500 {
		t.Fatalf("delivery row = %+v, want line total 6500 with delivery flag", pr.Rows[1])
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0 FCFA"},
		{500, "500 FCFA"},
		{6500, "6 500 FCFA"},
		{1250000, "1 250 000 FCFA"},
		{-7000, "-7 000 FCFA"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.amount, "FCFA"); got != tc.want {
			t.Errorf("FormatAmount(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	order := ledger.Order{
		ID: "1709290800123", Timestamp: "2024-03-01T11:00:00Z",
		DishName: "Attiéké Poisson Thon", Price: 4500, Quantity: 1,
		CustomerName: "Moussa", Status: ledger.OrderStatusPaid,
	}
	buf, err := BuildReceipt(order, bassam, 1000).RenderPDF()
	if err != nil {
		t.Fatalf("receipt RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("receipt output does not start with %%PDF")
	}

	start, _ := ledger.ParseDay("2024-03-01")
	end, _ := ledger.ParseDay("2024-03-31")
	buf, err = BuildPeriodReport([]ledger.Order{order}, start, end, bassam, 1000).RenderPDF()
	if err != nil {
		t.Fatalf("period report RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("report output does not start with %%PDF")
	}
}
