package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"bassam-order-service/internal/ledger"
)

func TestOrderMessageDelivery(t *testing.T) {
	order := ledger.Order{
		DishName:      "Kedjenou de Poulet",
		Quantity:      2,
		CustomerName:  "Moussa Koné",
		CustomerPhone: "+227 90 00 00 01",
		IsDelivery:    true,
		Address:       "Quartier Plateau, Rue 12",
	}

	msg := OrderMessage(order, "Grand Bassam", 13000, "FCFA")
	for _, want := range []string{
		"*NOUVELLE COMMANDE - GRAND BASSAM*",
		"*Client :* Moussa Koné",
		"*Plat :* Kedjenou de Poulet (x2)",
		"*Total :* 13000 FCFA",
		"Livraison à domicile",
		"*Adresse :* Quartier Plateau, Rue 12",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "*Table :*") {
		t.Errorf("delivery message must not carry a table line:\n%s", msg)
	}
}

func TestOrderMessageDineIn(t *testing.T) {
	order := ledger.Order{
		DishName:     "Garba",
		Quantity:     1,
		CustomerName: "Awa",
		TableNumber:  "5",
	}

	msg := OrderMessage(order, "Grand Bassam", 3500, "FCFA")
	if !strings.Contains(msg, "Sur place") || !strings.Contains(msg, "*Table :* #5") {
		t.Fatalf("dine-in message missing table info:\n%s", msg)
	}
	if strings.Contains(msg, "*Adresse :*") {
		t.Fatalf("dine-in message must not carry an address line:\n%s", msg)
	}
}

func TestReservationMessage(t *testing.T) {
	res := ledger.Reservation{
		Name:    "Abdoul Razak",
		Phone:   "+227 00 00 00 00",
		Date:    "2024-03-15",
		Guests:  "4 personnes",
		Message: "Anniversaire",
	}

	msg := ReservationMessage(res, "Grand Bassam")
	for _, want := range []string{
		"*RÉSERVATION - RESTAURANT GRAND BASSAM*",
		"*Nom :* Abdoul Razak",
		"*Date :* 2024-03-15",
		"*Couverts :* 4 personnes",
		"*Note :* Anniversaire",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}

	res.Message = ""
	if msg := ReservationMessage(res, "Grand Bassam"); strings.Contains(msg, "*Note :*") {
		t.Errorf("empty note must not produce a note line:\n%s", msg)
	}
}

func TestLink(t *testing.T) {
	link := Link("+227 8877 0594", "*NOUVELLE COMMANDE*\n\nTotal : 7 000 FCFA")

	if !strings.HasPrefix(link, "https://wa.me/+22788770594?text=") {
		t.Fatalf("link = %q, want wa.me with whitespace-stripped phone", link)
	}

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := parsed.Query().Get("text")
	if !strings.Contains(text, "NOUVELLE COMMANDE") || !strings.Contains(text, "\n") {
		t.Fatalf("decoded text = %q, want original message intact", text)
	}
}
