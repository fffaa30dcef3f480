package ledger

import (
	"sort"
	"time"
)

// Aggregates are pure functions over an orders snapshot; nothing here
// touches the store.

// ParseDay parses a YYYY-MM-DD range bound.
func ParseDay(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// FilterByDateRange keeps orders whose creation date falls inside
// [start, end], both bounds inclusive, comparing dates only. An inverted
// range yields an empty result.
func FilterByDateRange(orders []Order, start, end time.Time) []Order {
	startDay := dayOf(start)
	endDay := dayOf(end)
	if startDay.After(endDay) {
		return []Order{}
	}

	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		day, ok := o.Day()
		if !ok {
			continue
		}
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		out = append(out, o)
	}
	return out
}

type RevenueOptions struct {
	IncludeDeliveryFee bool
	DeliveryFee        int64
}

// Revenue sums price × quantity over paid orders. The delivery fee, when
// included, is added once per delivery order — never per item.
func Revenue(orders []Order, opts RevenueOptions) int64 {
	return sumByStatus(orders, OrderStatusPaid, opts)
}

// OutstandingRevenue is the billed-but-uncollected counterpart: the same
// sum restricted to "Nouveau" orders.
func OutstandingRevenue(orders []Order, opts RevenueOptions) int64 {
	return sumByStatus(orders, OrderStatusNew, opts)
}

// GrossRevenue sums every order regardless of status, matching the
// "Total Commandes" figure on the accounting panel.
func GrossRevenue(orders []Order) int64 {
	var total int64
	for _, o := range orders {
		total += o.LineTotal()
	}
	return total
}

func sumByStatus(orders []Order, status string, opts RevenueOptions) int64 {
	var total int64
	for _, o := range orders {
		if o.Status != status {
			continue
		}
		total += o.LineTotal()
		if opts.IncludeDeliveryFee && o.IsDelivery {
			total += opts.DeliveryFee
		}
	}
	return total
}

type DishSales struct {
	DishName string `json:"dishName"`
	Quantity int64  `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

// TopDishes groups orders by dish name and returns the n best sellers by
// total quantity. Ties keep the order in which a dish first appeared.
func TopDishes(orders []Order, n int) []DishSales {
	if n <= 0 {
		return []DishSales{}
	}

	index := make(map[string]int)
	sales := make([]DishSales, 0)
	for _, o := range orders {
		i, ok := index[o.DishName]
		if !ok {
			i = len(sales)
			index[o.DishName] = i
			sales = append(sales, DishSales{DishName: o.DishName})
		}
		sales[i].Quantity += int64(o.Quantity)
		sales[i].Revenue += o.LineTotal()
	}

	sort.SliceStable(sales, func(a, b int) bool {
		return sales[a].Quantity > sales[b].Quantity
	})
	if n < len(sales) {
		sales = sales[:n]
	}
	return sales
}

// TodayCount counts orders created on now's date.
func TodayCount(orders []Order, now time.Time) int {
	today := dayOf(now)
	count := 0
	for _, o := range orders {
		if day, ok := o.Day(); ok && day.Equal(today) {
			count++
		}
	}
	return count
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
