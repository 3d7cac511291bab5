// Package catalog holds the static option sets consumed by form fields.
// The portal treats these as immutable inputs with no dynamic refresh.
package catalog

// Option set names referenced by form header schemas.
const (
	SetCropTypes        = "crop_types"
	SetPaymentModes     = "payment_modes"
	SetPaymentTerms     = "payment_terms"
	SetTransportModes   = "transport_modes"
	SetUnits            = "units"
	SetGSTSlabs         = "gst_slabs"
	SetStates           = "states"
	SetEquipmentTypes   = "equipment_types"
	SetTenureMonths     = "tenure_months"
	SetAdjustmentReason = "adjustment_reasons"
	SetCancelReasons    = "cancellation_reasons"
	SetVendorCategories = "vendor_categories"
	SetWarehouses       = "warehouses"
)

var optionSets = map[string][]string{
	SetCropTypes: {
		"Wheat", "Paddy", "Maize", "Cotton", "Soybean", "Mustard",
		"Sugarcane", "Groundnut", "Chana", "Tur",
	},
	SetPaymentModes: {
		"Cash", "Cheque", "NEFT", "RTGS", "UPI", "Demand Draft",
	},
	SetPaymentTerms: {
		"Advance", "On Delivery", "Net 15", "Net 30", "Net 45", "Net 60",
	},
	SetTransportModes: {
		"Road", "Rail", "Air", "Courier", "Self Pickup",
	},
	SetUnits: {
		"Nos", "Kg", "Quintal", "MT", "Litre", "Box", "Bag", "Bundle", "Meter",
	},
	SetGSTSlabs: {
		"0", "5", "12", "18", "28",
	},
	SetStates: {
		"Andhra Pradesh", "Bihar", "Gujarat", "Haryana", "Karnataka",
		"Madhya Pradesh", "Maharashtra", "Punjab", "Rajasthan", "Tamil Nadu",
		"Telangana", "Uttar Pradesh", "West Bengal", "Delhi",
	},
	SetEquipmentTypes: {
		"Tractor", "Harvester", "Thresher", "Rotavator", "Seed Drill",
		"Power Tiller", "Sprayer",
	},
	SetTenureMonths: {
		"12", "24", "36", "48", "60", "84",
	},
	SetAdjustmentReason: {
		"Physical Count", "Damage", "Spoilage", "Theft", "Data Entry Error",
		"Quality Rejection",
	},
	SetCancelReasons: {
		"Pricing Issue", "Delayed Delivery", "Quality Concerns",
		"Business Closed", "Switching Provider", "Other",
	},
	SetVendorCategories: {
		"Manufacturer", "Wholesaler", "Distributor", "Commission Agent",
		"Transporter", "Service Provider",
	},
	SetWarehouses: {
		"Central Warehouse", "North Depot", "South Depot", "Mandi Yard A",
		"Mandi Yard B",
	},
}

// Options returns the allowed values for a named option set.
// Unknown names return nil.
func Options(set string) []string {
	values, ok := optionSets[set]
	if !ok {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Contains reports whether value is a member of the named option set.
func Contains(set, value string) bool {
	for _, v := range optionSets[set] {
		if v == value {
			return true
		}
	}
	return false
}

// Sets returns the names of all registered option sets.
func Sets() []string {
	names := make([]string, 0, len(optionSets))
	for name := range optionSets {
		names = append(names, name)
	}
	return names
}
