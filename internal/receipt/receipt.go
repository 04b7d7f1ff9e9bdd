// Package receipt renders finalized bills for printing and export.
// Bills are read-only here; every currency value is formatted with
// exactly two decimal places.
package receipt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/deekxa/tillpoint/domain"
)

// Render returns the printable text receipt for one bill.
func Render(bill domain.Bill) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bill #%d  %s\n", bill.Number, bill.CreatedAt.Format("2006-01-02 15:04"))
	if bill.CustomerName != "" {
		fmt.Fprintf(&b, "Customer: %s\n", bill.CustomerName)
	}
	b.WriteString("--------------------------------\n")
	for _, line := range bill.Lines {
		name := line.Name
		if name == "" {
			name = line.ItemID
		}
		fmt.Fprintf(&b, "%s  %.2f x %g = %.2f\n", name, line.UnitPrice, line.Quantity, line.UnitPrice*line.Quantity)
	}
	b.WriteString("--------------------------------\n")
	fmt.Fprintf(&b, "Subtotal: %.2f\n", bill.Subtotal)
	if bill.DiscountAmount > 0 {
		fmt.Fprintf(&b, "Discount: -%.2f\n", bill.DiscountAmount)
	}
	fmt.Fprintf(&b, "Tax: %.2f\n", bill.Tax)
	fmt.Fprintf(&b, "Total: %.2f\n", bill.Total)

	if bill.PaymentMethod == domain.PaymentMixed && bill.PaymentSplit != nil {
		fmt.Fprintf(&b, "Paid: mixed (cash %.2f, online %.2f)\n", bill.PaymentSplit.Cash, bill.PaymentSplit.Online)
	} else {
		fmt.Fprintf(&b, "Paid: %s\n", bill.PaymentMethod)
	}
	return b.String()
}

// WriteCSV exports bills as CSV, one row per bill.
func WriteCSV(w io.Writer, bills []domain.Bill) error {
	cw := csv.NewWriter(w)
	header := []string{"bill_id", "number", "created_at", "customer", "subtotal", "discount", "tax", "total", "payment_method"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, bill := range bills {
		row := []string{
			bill.ID,
			strconv.FormatInt(bill.Number, 10),
			bill.CreatedAt.Format("2006-01-02 15:04:05"),
			bill.CustomerName,
			money(bill.Subtotal),
			money(bill.DiscountAmount),
			money(bill.Tax),
			money(bill.Total),
			string(bill.PaymentMethod),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
