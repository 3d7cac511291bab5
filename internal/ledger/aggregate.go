package ledger

// Totals are the form-level aggregates folded over the collection.
type Totals struct {
	GrandTotal      float64 `json:"grand_total"`
	TotalTax        float64 `json:"total_tax"`
	TotalDiscount   float64 `json:"total_discount"`
	TotalDifference float64 `json:"total_difference"`
	ItemCount       int     `json:"item_count"`
}

// Aggregate folds the collection into form-level totals. Always recomputed
// from current state, never cached, so it cannot drift from the rows it
// summarizes. O(n) per call is fine at tens of rows.
func (r RuleSet) Aggregate(items []*Item) Totals {
	t := Totals{ItemCount: len(items)}
	for _, it := range items {
		switch r.Mode {
		case ModeInventory:
			t.TotalDifference += it.Difference
			t.GrandTotal += it.Difference
		case ModePricing:
			t.GrandTotal += it.LineTotal
			t.TotalTax += it.TaxAmount
			t.TotalDiscount += it.DiscountAmount
		}
	}
	return t
}
