// Package whatsapp builds the message text and deep link handed to the
// customer's messaging app. The service's obligation ends at the string;
// opening the composer is the client's job.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"bassam-order-service/internal/ledger"
)

// OrderMessage formats the order summary sent to the restaurant when a
// customer finalizes. total must already include the delivery fee when the
// order is a delivery.
func OrderMessage(o ledger.Order, restaurantName string, total int64, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*NOUVELLE COMMANDE - %s*\n\n", strings.ToUpper(restaurantName))
	fmt.Fprintf(&b, "*Client :* %s\n", o.CustomerName)
	fmt.Fprintf(&b, "*Téléphone :* %s\n", o.CustomerPhone)
	fmt.Fprintf(&b, "*Plat :* %s (x%d)\n", o.DishName, o.Quantity)
	fmt.Fprintf(&b, "*Total :* %d %s\n", total, currency)

	if o.IsDelivery {
		b.WriteString("*Type :* 🚀 Livraison à domicile\n")
		if o.Address != "" {
			fmt.Fprintf(&b, "*Adresse :* %s\n", o.Address)
		}
	} else {
		b.WriteString("*Type :* 🍽️ Sur place\n")
		if o.TableNumber != "" {
			fmt.Fprintf(&b, "*Table :* #%s\n", o.TableNumber)
		}
	}
	return b.String()
}

// ReservationMessage formats the booking request.
func ReservationMessage(r ledger.Reservation, restaurantName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*RÉSERVATION - RESTAURANT %s*\n\n", strings.ToUpper(restaurantName))
	fmt.Fprintf(&b, "*Nom :* %s\n", r.Name)
	fmt.Fprintf(&b, "*Téléphone :* %s\n", r.Phone)
	fmt.Fprintf(&b, "*Date :* %s\n", r.Date)
	fmt.Fprintf(&b, "*Couverts :* %s\n", r.Guests)
	if r.Message != "" {
		fmt.Fprintf(&b, "*Note :* %s\n", r.Message)
	}
	return b.String()
}

// Link builds the wa.me deep link that opens the composer prefilled with
// message, addressed to the restaurant's phone number.
func Link(phone, message string) string {
	return "https://wa.me/" + stripSpaces(phone) + "?text=" + url.QueryEscape(message)
}

func stripSpaces(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}
