// Package ledger implements the dynamic line-item collection shared by the
// wholesale and inventory forms: an ordered set of rows with stable
// identities, per-row derivation of monetary and stock fields, and
// aggregate totals folded fresh from the current collection.
package ledger

// Field identifies one updatable raw field on a line item. Keeping the set
// closed (instead of a stringly-typed bag) lets Update be exhaustive.
type Field string

const (
	FieldName          Field = "name"
	FieldCode          Field = "code"
	FieldBatch         Field = "batch"
	FieldUnit          Field = "unit"
	FieldQuantity      Field = "quantity"
	FieldRate          Field = "rate"
	FieldDiscountPct   Field = "discount_pct"
	FieldCGSTPct       Field = "cgst_pct"
	FieldSGSTPct       Field = "sgst_pct"
	FieldIGSTPct       Field = "igst_pct"
	FieldShipping      Field = "shipping"
	FieldCurrentStock  Field = "current_stock"
	FieldAdjustedStock Field = "adjusted_stock"
	FieldTotalOverride Field = "total_override"
)

// validFields is the closed set of updatable fields.
var validFields = map[Field]bool{
	FieldName: true, FieldCode: true, FieldBatch: true, FieldUnit: true,
	FieldQuantity: true, FieldRate: true, FieldDiscountPct: true,
	FieldCGSTPct: true, FieldSGSTPct: true, FieldIGSTPct: true,
	FieldShipping: true, FieldCurrentStock: true, FieldAdjustedStock: true,
	FieldTotalOverride: true,
}

// IsValid returns true if f is a recognized line-item field.
func (f Field) IsValid() bool {
	return validFields[f]
}

// Item is one row of the ledger. Raw fields hold the user's numeric strings
// verbatim; derived fields are recomputed by the rule set on every relevant
// update and are never written directly.
type Item struct {
	ID string `json:"id"`

	Name  string `json:"name"`
	Code  string `json:"code,omitempty"`
	Batch string `json:"batch,omitempty"`
	Unit  string `json:"unit,omitempty"`

	Quantity      string `json:"quantity"`
	Rate          string `json:"rate"`
	DiscountPct   string `json:"discount_pct,omitempty"`
	CGSTPct       string `json:"cgst_pct,omitempty"`
	SGSTPct       string `json:"sgst_pct,omitempty"`
	IGSTPct       string `json:"igst_pct,omitempty"`
	Shipping      string `json:"shipping,omitempty"`
	CurrentStock  string `json:"current_stock,omitempty"`
	AdjustedStock string `json:"adjusted_stock,omitempty"`

	// TotalOverride is honored only by rule sets with TotalOverridable set;
	// everywhere else the line total is derive-only.
	TotalOverride string `json:"total_override,omitempty"`

	Amount         float64 `json:"amount"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxableAmount  float64 `json:"taxable_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	LineTotal      float64 `json:"line_total"`
	Difference     float64 `json:"difference"`

	// ParseFailures lists raw fields that failed numeric parsing during the
	// last derivation. Populated only under the strict number policy; the
	// default coerce policy degrades to zero instead.
	ParseFailures []Field `json:"parse_failures,omitempty"`
}

// rawValue returns the raw string currently held for f.
func (it *Item) rawValue(f Field) string {
	switch f {
	case FieldName:
		return it.Name
	case FieldCode:
		return it.Code
	case FieldBatch:
		return it.Batch
	case FieldUnit:
		return it.Unit
	case FieldQuantity:
		return it.Quantity
	case FieldRate:
		return it.Rate
	case FieldDiscountPct:
		return it.DiscountPct
	case FieldCGSTPct:
		return it.CGSTPct
	case FieldSGSTPct:
		return it.SGSTPct
	case FieldIGSTPct:
		return it.IGSTPct
	case FieldShipping:
		return it.Shipping
	case FieldCurrentStock:
		return it.CurrentStock
	case FieldAdjustedStock:
		return it.AdjustedStock
	case FieldTotalOverride:
		return it.TotalOverride
	}
	return ""
}

// setRaw writes the raw string for f. Exhaustive over the field set.
func (it *Item) setRaw(f Field, value string) {
	switch f {
	case FieldName:
		it.Name = value
	case FieldCode:
		it.Code = value
	case FieldBatch:
		it.Batch = value
	case FieldUnit:
		it.Unit = value
	case FieldQuantity:
		it.Quantity = value
	case FieldRate:
		it.Rate = value
	case FieldDiscountPct:
		it.DiscountPct = value
	case FieldSGSTPct:
		it.SGSTPct = value
	case FieldCGSTPct:
		it.CGSTPct = value
	case FieldIGSTPct:
		it.IGSTPct = value
	case FieldShipping:
		it.Shipping = value
	case FieldCurrentStock:
		it.CurrentStock = value
	case FieldAdjustedStock:
		it.AdjustedStock = value
	case FieldTotalOverride:
		it.TotalOverride = value
	}
}
