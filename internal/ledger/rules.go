package ledger

import (
	"math"
	"strconv"
	"strings"
)

// Mode selects which derivation family a rule set applies.
type Mode string

const (
	// ModePricing derives amount, discount, tax and line total from
	// quantity, rate and percentage fields.
	ModePricing Mode = "pricing"

	// ModeInventory derives the stock difference from current and
	// adjusted stock.
	ModeInventory Mode = "inventory"
)

// NumberPolicy controls how unparsable numeric strings are treated.
type NumberPolicy string

const (
	// PolicyCoerceZero silently degrades unparsable or empty input to 0 so
	// the row always stays computable. This is the portal-wide default.
	PolicyCoerceZero NumberPolicy = "coerce"

	// PolicyStrict records the failing field on the item instead of hiding
	// the mistake; the form shell reports it at submit time.
	PolicyStrict NumberPolicy = "strict"
)

// RuleSet is the per-form derivation configuration. The same Store code
// serves every form; only the rule set differs between, say, a quotation
// and a raw-material stock adjustment.
type RuleSet struct {
	Mode Mode `json:"mode"`

	// TaxComponents lists the percentage fields summed into the tax amount,
	// e.g. CGST+SGST for intra-state forms or IGST alone.
	TaxComponents []Field `json:"tax_components,omitempty"`

	HasDiscount bool `json:"has_discount,omitempty"`
	HasShipping bool `json:"has_shipping,omitempty"`

	// TotalOverridable permits a user-entered line total to replace the
	// derived one (the purchase-order contract). Default is derive-only.
	TotalOverridable bool `json:"total_overridable,omitempty"`

	Numbers NumberPolicy `json:"numbers,omitempty"`
}

// IsInput reports whether editing f must trigger re-derivation.
func (r RuleSet) IsInput(f Field) bool {
	switch r.Mode {
	case ModeInventory:
		return f == FieldCurrentStock || f == FieldAdjustedStock
	case ModePricing:
		switch f {
		case FieldQuantity, FieldRate:
			return true
		case FieldDiscountPct:
			return r.HasDiscount
		case FieldShipping:
			return r.HasShipping
		case FieldTotalOverride:
			return r.TotalOverridable
		}
		for _, c := range r.TaxComponents {
			if c == f {
				return true
			}
		}
	}
	return false
}

// parseNumber parses a raw numeric string under the rule set's policy.
// ok is false only under the strict policy; coercion always succeeds.
func (r RuleSet) parseNumber(raw string) (value float64, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		// Empty input is the initial state of every row, not a mistake.
		return 0, true
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, r.Numbers != PolicyStrict
	}
	return v, true
}

// Derive recomputes every derived field on the item from its raw fields.
// Pure with respect to the rest of the collection: one row's derivation
// never reads another row.
func (r RuleSet) Derive(it *Item) {
	it.ParseFailures = nil

	parse := func(f Field) float64 {
		v, ok := r.parseNumber(it.rawValue(f))
		if !ok {
			it.ParseFailures = append(it.ParseFailures, f)
		}
		return v
	}

	switch r.Mode {
	case ModeInventory:
		current := parse(FieldCurrentStock)
		adjusted := parse(FieldAdjustedStock)
		// Sign is preserved: negative means shrinkage, positive means gain.
		it.Difference = adjusted - current

	case ModePricing:
		qty := parse(FieldQuantity)
		rate := parse(FieldRate)
		it.Amount = qty * rate

		it.DiscountAmount = 0
		if r.HasDiscount {
			it.DiscountAmount = it.Amount * parse(FieldDiscountPct) / 100
		}
		it.TaxableAmount = it.Amount - it.DiscountAmount

		it.TaxAmount = 0
		for _, c := range r.TaxComponents {
			it.TaxAmount += it.TaxableAmount * parse(c) / 100
		}

		total := it.TaxableAmount + it.TaxAmount
		if r.HasShipping {
			total += parse(FieldShipping)
		}

		if r.TotalOverridable && strings.TrimSpace(it.TotalOverride) != "" {
			total = parse(FieldTotalOverride)
		}
		it.LineTotal = total
	}
}

// Round2 rounds a derived value to two decimals for display and export.
// Stored derived values stay unrounded so aggregation does not accumulate
// rounding error.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
