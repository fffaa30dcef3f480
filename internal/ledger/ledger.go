package ledger

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"bassam-order-service/internal/store"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrUnknownStatus   = errors.New("unknown status")
	ErrUnknownCategory = errors.New("unknown category")
)

// Ledger applies one semantic change per call and persists it before
// returning. A mutex serializes mutations so concurrent HTTP requests keep
// the single-writer guarantee the data model assumes; readers go straight
// to the store.
type Ledger struct {
	kv  store.KV
	mu  sync.Mutex
	now func() time.Time
}

func New(kv store.KV) *Ledger {
	return &Ledger{kv: kv, now: time.Now}
}

// NewWithClock pins the clock, for tests that assert on IDs or timestamps.
func NewWithClock(kv store.KV, now func() time.Time) *Ledger {
	return &Ledger{kv: kv, now: now}
}

func (l *Ledger) Menu(ctx context.Context) []Dish {
	return store.Load(ctx, l.kv, SlotMenu, DefaultMenu())
}

func (l *Ledger) Orders(ctx context.Context) []Order {
	return store.Load(ctx, l.kv, SlotOrders, []Order{})
}

func (l *Ledger) Reservations(ctx context.Context) []Reservation {
	return store.Load(ctx, l.kv, SlotReservations, []Reservation{})
}

// OrderDraft carries the caller-captured dish snapshot. The ledger never
// resolves DishName or Price against the menu after creation.
type OrderDraft struct {
	DishName      string
	Price         int64
	Quantity      int
	CustomerName  string
	CustomerPhone string
	IsDelivery    bool
	Address       string
	TableNumber   string
}

func (l *Ledger) CreateOrder(ctx context.Context, draft OrderDraft) (Order, error) {
	if draft.Quantity < 1 {
		return Order{}, ErrInvalidQuantity
	}
	if draft.Price < 0 {
		return Order{}, ErrNegativePrice
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	orders := l.Orders(ctx)
	order := Order{
		ID:            l.nextID("", orderIDs(orders)),
		Timestamp:     l.now().UTC().Format(time.RFC3339),
		DishName:      draft.DishName,
		Price:         draft.Price,
		Quantity:      draft.Quantity,
		CustomerName:  draft.CustomerName,
		CustomerPhone: draft.CustomerPhone,
		IsDelivery:    draft.IsDelivery,
		Address:       draft.Address,
		TableNumber:   draft.TableNumber,
		Status:        OrderStatusNew,
	}
	updated := append([]Order{order}, orders...)
	if err := store.Save(ctx, l.kv, SlotOrders, updated); err != nil {
		return Order{}, err
	}
	return order, nil
}

// SetOrderStatus moves an order between "Nouveau" and "Payé" in either
// direction. A missing id is a no-op, not an error: the admin UI may race
// its own deletes.
func (l *Ledger) SetOrderStatus(ctx context.Context, id, status string) ([]Order, error) {
	if !validOrderStatus(status) {
		return nil, ErrUnknownStatus
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	orders := l.Orders(ctx)
	found := false
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return orders, nil
	}
	if err := store.Save(ctx, l.kv, SlotOrders, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteOrder removes the order permanently. Idempotent.
func (l *Ledger) DeleteOrder(ctx context.Context, id string) ([]Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders := l.Orders(ctx)
	updated := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.ID != id {
			updated = append(updated, o)
		}
	}
	if len(updated) == len(orders) {
		return orders, nil
	}
	if err := store.Save(ctx, l.kv, SlotOrders, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

type ReservationDraft struct {
	Name    string
	Phone   string
	Date    string
	Guests  string
	Message string
}

func (l *Ledger) CreateReservation(ctx context.Context, draft ReservationDraft) (Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	reservations := l.Reservations(ctx)
	res := Reservation{
		ID:        l.nextID("", reservationIDs(reservations)),
		Name:      draft.Name,
		Phone:     draft.Phone,
		Date:      draft.Date,
		Guests:    draft.Guests,
		Message:   draft.Message,
		Status:    ReservationStatusPending,
		Timestamp: l.now().UTC().Format(time.RFC3339),
	}
	updated := append([]Reservation{res}, reservations...)
	if err := store.Save(ctx, l.kv, SlotReservations, updated); err != nil {
		return Reservation{}, err
	}
	return res, nil
}

// SetReservationStatus accepts any of the three statuses in any order;
// the workflow is advisory, not enforced.
func (l *Ledger) SetReservationStatus(ctx context.Context, id, status string) ([]Reservation, error) {
	if !validReservationStatus(status) {
		return nil, ErrUnknownStatus
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	reservations := l.Reservations(ctx)
	found := false
	for i := range reservations {
		if reservations[i].ID == id {
			reservations[i].Status = status
			found = true
			break
		}
	}
	if !found {
		return reservations, nil
	}
	if err := store.Save(ctx, l.kv, SlotReservations, reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (l *Ledger) DeleteReservation(ctx context.Context, id string) ([]Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	reservations := l.Reservations(ctx)
	updated := make([]Reservation, 0, len(reservations))
	for _, r := range reservations {
		if r.ID != id {
			updated = append(updated, r)
		}
	}
	if len(updated) == len(reservations) {
		return reservations, nil
	}
	if err := store.Save(ctx, l.kv, SlotReservations, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

type DishDraft struct {
	Name        string
	Description string
	Price       int64
	Category    Category
	Image       string
}

func (l *Ledger) CreateDish(ctx context.Context, draft DishDraft) (Dish, error) {
	if draft.Price < 0 {
		return Dish{}, ErrNegativePrice
	}
	if draft.Category == "" {
		draft.Category = CategoryMain
	}
	if !draft.Category.Valid() {
		return Dish{}, ErrUnknownCategory
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	menu := l.Menu(ctx)
	dish := Dish{
		ID:          l.nextID("dish-", dishIDs(menu)),
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Category:    draft.Category,
		Image:       draft.Image,
	}
	updated := append([]Dish{dish}, menu...)
	if err := store.Save(ctx, l.kv, SlotMenu, updated); err != nil {
		return Dish{}, err
	}
	return dish, nil
}

// DishUpdate merges into an existing dish; nil fields keep their prior
// value. The id itself is immutable.
type DishUpdate struct {
	Name        *string
	Description *string
	Price       *int64
	Category    *Category
	Image       *string
}

func (l *Ledger) UpdateDish(ctx context.Context, id string, upd DishUpdate) ([]Dish, error) {
	if upd.Price != nil && *upd.Price < 0 {
		return nil, ErrNegativePrice
	}
	if upd.Category != nil && !upd.Category.Valid() {
		return nil, ErrUnknownCategory
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	menu := l.Menu(ctx)
	found := false
	for i := range menu {
		if menu[i].ID != id {
			continue
		}
		if upd.Name != nil {
			menu[i].Name = *upd.Name
		}
		if upd.Description != nil {
			menu[i].Description = *upd.Description
		}
		if upd.Price != nil {
			menu[i].Price = *upd.Price
		}
		if upd.Category != nil {
			menu[i].Category = *upd.Category
		}
		if upd.Image != nil {
			menu[i].Image = *upd.Image
		}
		found = true
		break
	}
	if !found {
		return menu, nil
	}
	if err := store.Save(ctx, l.kv, SlotMenu, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (l *Ledger) DeleteDish(ctx context.Context, id string) ([]Dish, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	menu := l.Menu(ctx)
	updated := make([]Dish, 0, len(menu))
	for _, d := range menu {
		if d.ID != id {
			updated = append(updated, d)
		}
	}
	if len(updated) == len(menu) {
		return menu, nil
	}
	if err := store.Save(ctx, l.kv, SlotMenu, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// nextID derives a time-based id, suffixing on collision so two records
// created in the same millisecond stay distinct.
func (l *Ledger) nextID(prefix string, taken map[string]struct{}) string {
	base := prefix + strconv.FormatInt(l.now().UnixMilli(), 10)
	id := base
	for i := 1; ; i++ {
		if _, exists := taken[id]; !exists {
			return id
		}
		id = base + "-" + strconv.Itoa(i)
	}
}

func orderIDs(orders []Order) map[string]struct{} {
	ids := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		ids[o.ID] = struct{}{}
	}
	return ids
}

func reservationIDs(reservations []Reservation) map[string]struct{} {
	ids := make(map[string]struct{}, len(reservations))
	for _, r := range reservations {
		ids[r.ID] = struct{}{}
	}
	return ids
}

func dishIDs(menu []Dish) map[string]struct{} {
	ids := make(map[string]struct{}, len(menu))
	for _, d := range menu {
		ids[d.ID] = struct{}{}
	}
	return ids
}
