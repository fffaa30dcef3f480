package report

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// RenderPDF renders the receipt as a printable A4 ticket.
func (rc Receipt) RenderPDF() (*bytes.Buffer, error) {
	currency := rc.Restaurant.Currency

	pdf, tr := newDocument(rc.Restaurant)
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Reçu %s", rc.Number)), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Commande %s", rc.OrderID)), "", 1, "C", false, 0, "")
	if rc.IssuedAt != "" {
		pdf.CellFormat(0, 5, rc.IssuedAt, "", 1, "C", false, 0, "")
	}
	if rc.IsDelivery {
		pdf.CellFormat(0, 5, tr("Livraison à domicile"), "", 1, "C", false, 0, "")
		if rc.Address != "" {
			pdf.MultiCell(0, 4, tr(rc.Address), "", "C", false)
		}
	} else {
		line := "Sur place"
		if rc.TableNumber != "" {
			line = fmt.Sprintf("Sur place - Table %s", rc.TableNumber)
		}
		pdf.CellFormat(0, 5, tr(line), "", 1, "C", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, tr("Détail"), "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("%dx %s", rc.Quantity, rc.DishName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Prix unitaire : %s", FormatAmount(rc.UnitPrice, currency))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Sous-total : %s", FormatAmount(rc.Subtotal, currency))), "", 1, "L", false, 0, "")
	if rc.DeliveryFee > 0 {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Livraison : %s", FormatAmount(rc.DeliveryFee, currency))), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total : %s", FormatAmount(rc.Total, currency))), "", 1, "L", false, 0, "")

	pdf.Ln(2)
	pdf.SetFont("Arial", "", 9)
	if rc.CustomerName != "" {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Client : %s", rc.CustomerName)), "", 1, "L", false, 0, "")
	}
	if rc.CustomerPhone != "" {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Téléphone : %s", rc.CustomerPhone)), "", 1, "L", false, 0, "")
	}
	if rc.Status != "" {
		pdf.CellFormat(0, 5, tr(fmt.Sprintf("Statut : %s", rc.Status)), "", 1, "L", false, 0, "")
	}

	return output(pdf)
}

// RenderPDF renders the period report as a one-page financial summary.
func (pr PeriodReport) RenderPDF() (*bytes.Buffer, error) {
	currency := pr.Restaurant.Currency

	pdf, tr := newDocument(pr.Restaurant)
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 7, tr("Bilan Financier"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Période du %s au %s", pr.Start, pr.End)), "", 1, "C", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Recettes encaissées : %s", FormatAmount(pr.Revenue, currency))), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("%d commandes payées", pr.OrderCount)), "", 1, "L", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(34, 6, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Client", "B", 0, "L", false, 0, "")
	pdf.CellFormat(52, 6, "Plat", "B", 0, "L", false, 0, "")
	pdf.CellFormat(12, 6, tr("Qté"), "B", 0, "R", false, 0, "")
	pdf.CellFormat(18, 6, "Livr.", "B", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, row := range pr.Rows {
		delivery := "-"
		if row.IsDelivery {
			delivery = "Oui"
		}
		pdf.CellFormat(34, 5, row.Date, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 5, tr(row.Customer), "", 0, "L", false, 0, "")
		pdf.CellFormat(52, 5, tr(row.Dish), "", 0, "L", false, 0, "")
		pdf.CellFormat(12, 5, fmt.Sprintf("%d", row.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(18, 5, delivery, "", 0, "C", false, 0, "")
		pdf.CellFormat(30, 5, FormatAmount(row.LineTotal, currency), "", 1, "R", false, 0, "")
	}
	if len(pr.Rows) == 0 {
		pdf.CellFormat(0, 6, tr("Aucune commande payée sur la période."), "", 1, "L", false, 0, "")
	}

	return output(pdf)
}

// newDocument starts an A4 page with the restaurant identity header. The
// returned translator maps UTF-8 to the cp1252 core fonts so accented
// French renders correctly.
func newDocument(r Restaurant) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, tr(r.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if r.Location != "" {
		pdf.CellFormat(0, 5, tr(r.Location), "", 1, "C", false, 0, "")
	}
	if r.Phone != "" {
		pdf.CellFormat(0, 5, r.Phone, "", 1, "C", false, 0, "")
	}
	return pdf, tr
}

func output(pdf *gofpdf.Fpdf) (*bytes.Buffer, error) {
	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
