// Package report projects ledger data into human-consumable documents.
// The structs carry the contract — every field and computed total a
// document must contain; the PDF renderers are one encoding of them.
package report

import (
	"fmt"
	"strings"
	"time"

	"bassam-order-service/internal/ledger"
)

// Restaurant is the identity header printed on every document.
type Restaurant struct {
	Name     string
	Location string
	Phone    string
	Currency string
}

// Receipt is the line-item breakdown for a single order.
type Receipt struct {
	Number     string
	Restaurant Restaurant

	OrderID  string
	IssuedAt string

	DishName  string
	Quantity  int
	UnitPrice int64
	Subtotal  int64

	IsDelivery  bool
	DeliveryFee int64
	Address     string
	TableNumber string

	Total int64

	CustomerName  string
	CustomerPhone string
	Status        string
}

// BuildReceipt computes the receipt for one order. deliveryFee is charged
// once when the order is a delivery, never per item.
func BuildReceipt(o ledger.Order, r Restaurant, deliveryFee int64) Receipt {
	rc := Receipt{
		Number:        receiptNumber(o.ID),
		Restaurant:    r,
		OrderID:       o.ID,
		IssuedAt:      formatTimestamp(o.Timestamp),
		DishName:      o.DishName,
		Quantity:      o.Quantity,
		UnitPrice:     o.Price,
		Subtotal:      o.LineTotal(),
		IsDelivery:    o.IsDelivery,
		Address:       o.Address,
		TableNumber:   o.TableNumber,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Status:        o.Status,
	}
	if o.IsDelivery {
		rc.DeliveryFee = deliveryFee
	}
	rc.Total = rc.Subtotal + rc.DeliveryFee
	return rc
}

// PeriodRow is one paid order inside a financial summary.
type PeriodRow struct {
	Date       string
	Customer   string
	Dish       string
	Quantity   int
	IsDelivery bool
	LineTotal  int64
}

// PeriodReport is the financial summary over an inclusive date range.
type PeriodReport struct {
	Restaurant Restaurant
	Start      string
	End        string

	Revenue    int64
	OrderCount int
	Rows       []PeriodRow
}

// BuildPeriodReport filters orders to [start, end], keeps the paid subset
// and itemizes it. Row line totals include the delivery fee so the rows
// sum to the headline revenue figure.
func BuildPeriodReport(orders []ledger.Order, start, end time.Time, r Restaurant, deliveryFee int64) PeriodReport {
	inRange := ledger.FilterByDateRange(orders, start, end)

	pr := PeriodReport{
		Restaurant: r,
		Start:      start.Format("2006-01-02"),
		End:        end.Format("2006-01-02"),
		Revenue: ledger.Revenue(inRange, ledger.RevenueOptions{
			IncludeDeliveryFee: true,
			DeliveryFee:        deliveryFee,
		}),
	}

	for _, o := range inRange {
		if o.Status != ledger.OrderStatusPaid {
			continue
		}
		lineTotal := o.LineTotal()
		if o.IsDelivery {
			lineTotal += deliveryFee
		}
		pr.Rows = append(pr.Rows, PeriodRow{
			Date:       formatTimestamp(o.Timestamp),
			Customer:   o.CustomerName,
			Dish:       o.DishName,
			Quantity:   o.Quantity,
			IsDelivery: o.IsDelivery,
			LineTotal:  lineTotal,
		})
	}
	pr.OrderCount = len(pr.Rows)
	return pr
}

// receiptNumber derives a short printable number from the order id: the
// last six characters, zero-padded. Not meant to be unguessable.
func receiptNumber(orderID string) string {
	suffix := orderID
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	for len(suffix) < 6 {
		suffix = "0" + suffix
	}
	return "REC-" + suffix
}

// FormatAmount renders a whole-unit amount with thousands grouping and the
// currency symbol ("6 500 FCFA").
func FormatAmount(amount int64, currency string) string {
	return groupDigits(amount) + " " + currency
}

func groupDigits(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	if negative {
		return "-" + b.String()
	}
	return b.String()
}

func formatTimestamp(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.UTC().Format("2006-01-02 15:04")
}
