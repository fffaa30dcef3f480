package ledger

import (
	"context"
	"reflect"
	"testing"
	"time"

	"bassam-order-service/internal/store"
)

func testLedger(t *testing.T) (*Ledger, *store.MemKV) {
	t.Helper()
	kv := store.NewMemKV()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	l := NewWithClock(kv, func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	})
	return l, kv
}

func TestCreateOrderPrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	l, kv := testLedger(t)

	first, err := l.CreateOrder(ctx, OrderDraft{
		DishName: "Garba", Price: 3500, Quantity: 2,
		CustomerName: "Moussa", CustomerPhone: "+22790000001",
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if first.Status != OrderStatusNew {
		t.Fatalf("new order status = %q, want %q", first.Status, OrderStatusNew)
	}
	if first.ID == "" || first.Timestamp == "" {
		t.Fatalf("order missing id or timestamp: %+v", first)
	}

	second, err := l.CreateOrder(ctx, OrderDraft{
		DishName: "Alloco Poisson Frit", Price: 5500, Quantity: 1,
		CustomerName: "Awa", CustomerPhone: "+22790000002",
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("ids must be unique, both %q", first.ID)
	}

	orders := store.Load(context.Background(), kv, SlotOrders, []Order{})
	if len(orders) != 2 {
		t.Fatalf("persisted %d orders, want 2", len(orders))
	}
	if orders[0].ID != second.ID {
		t.Fatalf("newest order must be first, got %q", orders[0].ID)
	}
}

func TestCreateOrderRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	l, _ := testLedger(t)

	if _, err := l.CreateOrder(ctx, OrderDraft{DishName: "Garba", Price: 3500, Quantity: 0}); err != ErrInvalidQuantity {
		t.Fatalf("quantity 0: err = %v, want ErrInvalidQuantity", err)
	}
	if _, err := l.CreateOrder(ctx, OrderDraft{DishName: "Garba", Price: -1, Quantity: 1}); err != ErrNegativePrice {
		t.Fatalf("negative price: err = %v, want ErrNegativePrice", err)
	}
	if got := l.Orders(ctx); len(got) != 0 {
		t.Fatalf("rejected drafts must not persist, got %d orders", len(got))
	}
}

func TestSetOrderStatusBothDirections(t *testing.T) {
	ctx := context.Background()
	l, _ := testLedger(t)

	order, err := l.CreateOrder(ctx, OrderDraft{DishName: "Garba", Price: 3500, Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}

	orders, err := l.SetOrderStatus(ctx, order.ID, OrderStatusPaid)
	if err != nil {
		t.Fatalf("SetOrderStatus: %v", err)
	}
	if orders[0].Status != OrderStatusPaid {
		t.Fatalf("status = %q, want %q", orders[0].Status, OrderStatusPaid)
	}

	// A paid order can be reverted.
	orders, err = l.SetOrderStatus(ctx, order.ID, OrderStatusNew)
	if err != nil {
		t.Fatalf("SetOrderStatus revert: %v", err)
	}
	if orders[0].Status != OrderStatusNew {
		t.Fatalf("status after revert = %q, want %q", orders[0].Status, OrderStatusNew)
	}

	if _, err := l.SetOrderStatus(ctx, order.ID, "Annulé"); err != ErrUnknownStatus {
		t.Fatalf("unknown status: err = %v, want ErrUnknownStatus", err)
	}
}

func TestSetOrderStatusMissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	l, _ := testLedger(t)

	if _, err := l.CreateOrder(ctx, OrderDraft{DishName: "Garba", Price: 3500, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	before := l.Orders(ctx)

	after, err := l.SetOrderStatus(ctx, "nonexistent", OrderStatusPaid)
	if err != nil {
		t.Fatalf("SetOrderStatus: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("collection changed on missing id:\nbefore %v\nafter  %v", before, after)
	}
}

func TestDeleteOrderIdempotent(t *testing.T) {
	ctx := context.Background()
	l, _ := testLedger(t)

	order, err := l.CreateOrder(ctx, OrderDraft{DishName: "Garba", Price: 3500, Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}
	keep, err := l.CreateOrder(ctx, OrderDraft{DishName: "Kedjenou de Poulet", Price: 6000, Quantity: 1})
	if err != nil {
		t.Fatal(err)
	}

	once, err := l.DeleteOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	twice, err := l.DeleteOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("DeleteOrder again: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second delete changed the collection:\nonce  %v\ntwice %v", once, twice)
	}
	if len(twice) != 1 || twice[0].ID != keep.ID {
		t.Fatalf("remaining orders = %v, want only %q", twice, keep.ID)
	}
}

func TestReservationLifecycle(t *testing.T) {
	ctx := context.Background()
	l, _ := testLedger(t)

	res, err := l.CreateReservation(ctx, ReservationDraft{
		Name: "Abdoul Razak", Phone: "+22790000003",
		Date: "2024-03-15", Guests: "4 personnes", Message: "Anniversaire",
	})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if res.Status != ReservationStatusPending {
		t.Fatalf("new reservation status = %q, want %q", res.Status, ReservationStatusPending)
	}

	// Transitions are permissive: pending straight to completed is allowed.
	reservations, err := l.SetReservationStatus(ctx, res.ID, ReservationStatusCompleted)
	if err != nil {
		t.Fatalf("SetReservationStatus: %v", err)
	}
	if reservations[0].Status != ReservationStatusCompleted {
		t.Fatalf("status = %q, want %q", reservations[0].Status, ReservationStatusCompleted)
	}

	reservations, err = l.DeleteReservation(ctx, res.ID)
	if err != nil {
		t.Fatalf("DeleteReservation: %v", err)
	}
	if len(reservations) != 0 {
		t.Fatalf("reservations after delete = %v, want none", reservations)
	}
}

func TestCreateDishAssignsFreshIDAtHead(t *testing.T) {
	ctx := context.Background()
	l, _ := testLedger(t)

	dish, err := l.CreateDish(ctx, DishDraft{Name: "Nouveau Plat", Price: 0})
	if err != nil {
		t.Fatalf("CreateDish: %v", err)
	}
	if dish.Category != CategoryMain {
		t.Fatalf("default category = %q, want %q", dish.Category, CategoryMain)
	}

	menu := l.Menu(ctx)
	if menu[0].ID != dish.ID {
		t.Fatalf("new dish must be at head, got %q", menu[0].ID)
	}
	seen := make(map[string]int)
	for _, d := range menu {
		seen[d.ID]++
	}
	if seen[dish.ID] != 1 {
		t.Fatalf("dish id %q appears %d times", dish.ID, seen[dish.ID])
	}
}

func TestUpdateDishMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	l, _ := testLedger(t)

	price := int64(4800)
	menu, err := l.UpdateDish(ctx, "attieke-thon", DishUpdate{Price: &price})
	if err != nil {
		t.Fatalf("UpdateDish: %v", err)
	}

	var updated Dish
	for _, d := range menu {
		if d.ID == "attieke-thon" {
			updated = d
		}
	}
	if updated.Price != 4800 {
		t.Fatalf("price = %d, want 4800", updated.Price)
	}
	if updated.Name != "Attiéké Poisson Thon" {
		t.Fatalf("unset fields must be retained, name = %q", updated.Name)
	}

	bad := int64(-5)
	if _, err := l.UpdateDish(ctx, "attieke-thon", DishUpdate{Price: &bad}); err != ErrNegativePrice {
		t.Fatalf("negative price: err = %v, want ErrNegativePrice", err)
	}
	category := Category("brunch")
	if _, err := l.UpdateDish(ctx, "attieke-thon", DishUpdate{Category: &category}); err != ErrUnknownCategory {
		t.Fatalf("bad category: err = %v, want ErrUnknownCategory", err)
	}
}

func TestDeleteDishLeavesOrderHistoryIntact(t *testing.T) {
	ctx := context.Background()
	l, _ := testLedger(t)

	order, err := l.CreateOrder(ctx, OrderDraft{DishName: "Attiéké Poisson Thon", Price: 4500, Quantity: 2})
	if err != nil {
		t.Fatal(err)
	}

	menu, err := l.DeleteDish(ctx, "attieke-thon")
	if err != nil {
		t.Fatalf("DeleteDish: %v", err)
	}
	for _, d := range menu {
		if d.ID == "attieke-thon" {
			t.Fatalf("dish still present after delete")
		}
	}

	orders := l.Orders(ctx)
	if orders[0].ID != order.ID || orders[0].DishName != "Attiéké Poisson Thon" || orders[0].Price != 4500 {
		t.Fatalf("order snapshot changed after menu delete: %+v", orders[0])
	}
}
