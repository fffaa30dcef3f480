// Package ledger holds the restaurant's data of record — menu, orders and
// reservations — plus the mutators and aggregates derived from it.
package ledger

import "time"

// Slot names, kept from the storage keys of the original site so existing
// exports stay readable.
const (
	SlotMenu         = "grand_bassam_menu"
	SlotOrders       = "grand_bassam_orders"
	SlotReservations = "grand_bassam_reservations"
)

type Category string

const (
	CategoryStarter Category = "entrée"
	CategoryMain    Category = "plat"
	CategoryDessert Category = "dessert"
	CategoryDrink   Category = "boisson"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryStarter, CategoryMain, CategoryDessert, CategoryDrink:
		return true
	}
	return false
}

// Dish is a sellable item on the menu. Price is in whole FCFA.
type Dish struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
}

const (
	OrderStatusNew  = "Nouveau"
	OrderStatusPaid = "Payé"
)

// Order is one purchase of a single dish. DishName and Price are copied
// from the menu at order time on purpose: editing or deleting a dish must
// never rewrite order history.
type Order struct {
	ID            string `json:"id"`
	Timestamp     string `json:"timestamp"`
	DishName      string `json:"dishName"`
	Price         int64  `json:"price"`
	Quantity      int    `json:"quantity"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	IsDelivery    bool   `json:"isDelivery"`
	Address       string `json:"address,omitempty"`
	TableNumber   string `json:"tableNumber,omitempty"`
	Status        string `json:"status"`
}

// LineTotal is price × quantity, without any delivery fee.
func (o Order) LineTotal() int64 {
	return o.Price * int64(o.Quantity)
}

// Day returns the creation date with the time of day dropped. ok is false
// when the timestamp does not parse.
func (o Order) Day() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, o.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

const (
	ReservationStatusPending   = "En attente"
	ReservationStatusConfirmed = "Confirmé"
	ReservationStatusCompleted = "Terminé"
)

// Reservation is a table booking request. Guests stays free text
// ("2 personnes", "Groupe (Plus de 6)").
type Reservation struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Guests    string `json:"guests"`
	Message   string `json:"message,omitempty"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func validOrderStatus(status string) bool {
	return status == OrderStatusNew || status == OrderStatusPaid
}

func validReservationStatus(status string) bool {
	switch status {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCompleted:
		return true
	}
	return false
}
