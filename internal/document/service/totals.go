package service

import (
	"strconv"

	orderdomain "github.com/smallbiznis/folio/internal/order/domain"
)

// taxLine is one non-refunded tax amount grouped under its display label.
type taxLine struct {
	Label  string
	Amount int64
}

// totals is the money view of one order, computed once per assembly and
// reused by both render modes. All amounts are integer minor units.
type totals struct {
	// ItemCount is the number of distinct priced lines, free trials
	// included. The zero-override below changes amounts, not counts.
	ItemCount int
	ItemTotal int64
	TaxLines  []taxLine
	Shipping  int64
	Total     int64
}

// computeTotals sums the non-refunded amounts of every successful
// purchase. A free-trial purchase contributes exactly zero regardless of
// its stored amount; it still counts as a purchased item.
func computeTotals(items []orderdomain.Purchase, shipping int64) totals {
	t := totals{Shipping: shipping}

	taxIndex := map[string]int{}
	for _, item := range items {
		if item.Status != orderdomain.PurchaseStatusSuccessful {
			continue
		}
		t.ItemCount++
		if item.FreeTrial {
			continue
		}
		t.ItemTotal += item.Amount - item.RefundedAmount

		tax := item.TaxAmount - item.TaxRefunded
		if tax == 0 {
			continue
		}
		label := item.TaxLabel
		if label == "" {
			label = "Tax"
		}
		if i, ok := taxIndex[label]; ok {
			t.TaxLines[i].Amount += tax
		} else {
			taxIndex[label] = len(t.TaxLines)
			t.TaxLines = append(t.TaxLines, taxLine{Label: label, Amount: tax})
		}
	}

	t.Total = t.ItemTotal + t.Shipping
	for _, line := range t.TaxLines {
		t.Total += line.Amount
	}
	return t
}

// itemSummary phrases the purchased-item count, pluralized on the count
// of priced lines only.
func (t totals) itemSummary() string {
	if t.ItemCount == 1 {
		return "1 item purchased"
	}
	return strconv.Itoa(t.ItemCount) + " items purchased"
}
