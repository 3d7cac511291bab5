// Package forms holds the portal's form definitions: one Definition per
// vertical document, all instantiating the same shell/ledger pattern with
// different header schemas and derivation rules.
package forms

import (
	"github.com/tradeport/formengine/internal/catalog"
	"github.com/tradeport/formengine/internal/form"
	"github.com/tradeport/formengine/internal/ledger"
	"github.com/tradeport/formengine/internal/schema"
)

// splitGST is the CGST+SGST derivation used by intra-state documents.
var splitGST = []ledger.Field{ledger.FieldCGSTPct, ledger.FieldSGSTPct}

// singleGST is the single-component derivation used by inter-state documents.
var singleGST = []ledger.Field{ledger.FieldIGSTPct}

func partyFields(prefix, label string) []schema.Field {
	return []schema.Field{
		{Name: prefix + "_name", Label: label + " Name", Kind: schema.KindText, Required: true},
		{Name: prefix + "_phone", Label: label + " Phone", Kind: schema.KindText, Required: true, Pattern: schema.PatternPhone},
		{Name: prefix + "_gstin", Label: label + " GSTIN", Kind: schema.KindText, Pattern: schema.PatternGSTIN},
		{Name: prefix + "_state", Label: label + " State", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetStates},
	}
}

func purchaseOrder() form.Definition {
	header := []schema.Field{
		{Name: "po_number", Label: "PO Number", Kind: schema.KindText, Required: true},
		{Name: "po_date", Label: "PO Date", Kind: schema.KindDate, Required: true},
	}
	header = append(header, partyFields("supplier", "Supplier")...)
	header = append(header,
		schema.Field{Name: "payment_terms", Label: "Payment Terms", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetPaymentTerms},
		schema.Field{Name: "delivery_pincode", Label: "Delivery Pincode", Kind: schema.KindText, Required: true, Pattern: schema.PatternPincode},
	)
	return form.Definition{
		ID:       "purchase-order",
		Title:    "Purchase Order",
		Vertical: "wholesale",
		Header:   schema.Schema{Fields: header},
		Rules: ledger.RuleSet{
			Mode:          ledger.ModePricing,
			TaxComponents: splitGST,
			// The PO is the one document whose line total the buyer may
			// override after negotiation; every other form is derive-only.
			TotalOverridable: true,
		},
		ResetOnSubmit: true,
	}
}

func quotation() form.Definition {
	header := []schema.Field{
		{Name: "quotation_number", Label: "Quotation Number", Kind: schema.KindText, Required: true},
		{Name: "quotation_date", Label: "Quotation Date", Kind: schema.KindDate, Required: true},
		{Name: "valid_until", Label: "Valid Until", Kind: schema.KindDate},
	}
	header = append(header, partyFields("customer", "Customer")...)
	return form.Definition{
		ID:       "quotation",
		Title:    "Quotation",
		Vertical: "wholesale",
		Header:   schema.Schema{Fields: header},
		Rules: ledger.RuleSet{
			Mode:          ledger.ModePricing,
			TaxComponents: singleGST,
			HasDiscount:   true,
		},
		ResetOnSubmit: true,
	}
}

func creditNote() form.Definition {
	header := []schema.Field{
		{Name: "note_number", Label: "Credit Note Number", Kind: schema.KindText, Required: true},
		{Name: "note_date", Label: "Credit Note Date", Kind: schema.KindDate, Required: true},
		{Name: "against_invoice", Label: "Against Invoice", Kind: schema.KindText, Required: true},
		{Name: "reason", Label: "Reason", Kind: schema.KindText, Required: true, MinLen: 10},
	}
	header = append(header, partyFields("customer", "Customer")...)
	return form.Definition{
		ID:       "credit-note",
		Title:    "Credit Note",
		Vertical: "wholesale",
		Header:   schema.Schema{Fields: header},
		Rules: ledger.RuleSet{
			Mode:          ledger.ModePricing,
			TaxComponents: splitGST,
		},
		ResetOnSubmit: true,
	}
}

func debitNote() form.Definition {
	def := creditNote()
	def.ID = "debit-note"
	def.Title = "Debit Note"
	fields := make([]schema.Field, len(def.Header.Fields))
	copy(fields, def.Header.Fields)
	fields[0].Label = "Debit Note Number"
	fields[1].Label = "Debit Note Date"
	def.Header = schema.Schema{Fields: fields}
	return def
}

func deliveryChallan() form.Definition {
	header := []schema.Field{
		{Name: "challan_number", Label: "Challan Number", Kind: schema.KindText, Required: true},
		{Name: "challan_date", Label: "Challan Date", Kind: schema.KindDate, Required: true},
	}
	header = append(header, partyFields("consignee", "Consignee")...)
	header = append(header,
		schema.Field{Name: "transport_mode", Label: "Transport Mode", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetTransportModes},
		schema.Field{Name: "vehicle_number", Label: "Vehicle Number", Kind: schema.KindText,
			VisibleWhen: &schema.Condition{Field: "transport_mode", Equals: "Road"}},
		schema.Field{Name: "delivery_pincode", Label: "Delivery Pincode", Kind: schema.KindText, Required: true, Pattern: schema.PatternPincode},
	)
	return form.Definition{
		ID:       "delivery-challan",
		Title:    "Delivery Challan",
		Vertical: "wholesale",
		Header:   schema.Schema{Fields: header},
		Rules: ledger.RuleSet{
			Mode:          ledger.ModePricing,
			TaxComponents: splitGST,
			HasShipping:   true,
		},
		ResetOnSubmit: true,
	}
}

func stockTransfer() form.Definition {
	return form.Definition{
		ID:       "stock-transfer",
		Title:    "Stock Transfer",
		Vertical: "raw-materials",
		Header: schema.Schema{Fields: []schema.Field{
			{Name: "transfer_number", Label: "Transfer Number", Kind: schema.KindText, Required: true},
			{Name: "transfer_date", Label: "Transfer Date", Kind: schema.KindDate, Required: true},
			{Name: "from_warehouse", Label: "From Warehouse", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetWarehouses},
			{Name: "to_warehouse", Label: "To Warehouse", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetWarehouses},
			{Name: "transport_mode", Label: "Transport Mode", Kind: schema.KindEnum, OptionSet: catalog.SetTransportModes},
		}},
		Rules: ledger.RuleSet{
			Mode:          ledger.ModePricing,
			TaxComponents: nil, // internal movement, no tax
		},
		ResetOnSubmit: true,
	}
}

func purchaseReturn() form.Definition {
	header := []schema.Field{
		{Name: "return_number", Label: "Return Number", Kind: schema.KindText, Required: true},
		{Name: "return_date", Label: "Return Date", Kind: schema.KindDate, Required: true},
		{Name: "against_grn", Label: "Against GRN", Kind: schema.KindText},
		{Name: "reason", Label: "Return Reason", Kind: schema.KindText, Required: true, MinLen: 10},
	}
	header = append(header, partyFields("supplier", "Supplier")...)
	return form.Definition{
		ID:       "purchase-return",
		Title:    "Purchase Return",
		Vertical: "wholesale",
		Header:   schema.Schema{Fields: header},
		Rules: ledger.RuleSet{
			Mode:          ledger.ModePricing,
			TaxComponents: splitGST,
		},
		ResetOnSubmit: true,
	}
}

func goodsReceipt() form.Definition {
	header := []schema.Field{
		{Name: "grn_number", Label: "GRN Number", Kind: schema.KindText, Required: true},
		{Name: "receipt_date", Label: "Receipt Date", Kind: schema.KindDate, Required: true},
		{Name: "against_po", Label: "Against PO", Kind: schema.KindText, Required: true},
		{Name: "warehouse", Label: "Warehouse", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetWarehouses},
	}
	header = append(header, partyFields("supplier", "Supplier")...)
	return form.Definition{
		ID:       "goods-receipt",
		Title:    "Goods Receipt Note",
		Vertical: "raw-materials",
		Header:   schema.Schema{Fields: header},
		Rules: ledger.RuleSet{
			Mode:          ledger.ModePricing,
			TaxComponents: splitGST,
			HasShipping:   true,
		},
		ResetOnSubmit: true,
	}
}

func rawMaterialAdjustment() form.Definition {
	return form.Definition{
		ID:       "raw-material-adjustment",
		Title:    "Raw Material Inventory Adjustment",
		Vertical: "raw-materials",
		Header: schema.Schema{Fields: []schema.Field{
			{Name: "adjustment_date", Label: "Adjustment Date", Kind: schema.KindDate, Required: true},
			{Name: "warehouse", Label: "Warehouse", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetWarehouses},
			{Name: "reason", Label: "Adjustment Reason", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetAdjustmentReason},
			{Name: "remarks", Label: "Remarks", Kind: schema.KindText, MinLen: 10},
		}},
		Rules: ledger.RuleSet{
			Mode: ledger.ModeInventory,
		},
		// Stocktakers review the entered differences after submitting.
		ResetOnSubmit: false,
	}
}

func vendorRegistration() form.Definition {
	return form.Definition{
		ID:       "vendor-registration",
		Title:    "Vendor Registration",
		Vertical: "wholesale",
		Header: schema.Schema{Fields: []schema.Field{
			{Name: "vendor_name", Label: "Vendor Name", Kind: schema.KindText, Required: true},
			{Name: "category", Label: "Category", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetVendorCategories},
			{Name: "pan", Label: "PAN", Kind: schema.KindText, Required: true, Pattern: schema.PatternPAN},
			{Name: "gstin", Label: "GSTIN", Kind: schema.KindText, Pattern: schema.PatternGSTIN},
			{Name: "phone", Label: "Phone", Kind: schema.KindText, Required: true, Pattern: schema.PatternPhone},
			{Name: "email", Label: "Email", Kind: schema.KindText, Required: true, Pattern: schema.PatternEmail},
			{Name: "bank_account", Label: "Bank Account Number", Kind: schema.KindText, Required: true},
			{Name: "ifsc", Label: "IFSC", Kind: schema.KindText, Required: true, Pattern: schema.PatternIFSC},
			{Name: "address", Label: "Registered Address", Kind: schema.KindText, Required: true, MinLen: 15},
			{Name: "pincode", Label: "Pincode", Kind: schema.KindText, Required: true, Pattern: schema.PatternPincode},
			{Name: "state", Label: "State", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetStates},
		}},
		Rules: ledger.RuleSet{
			// Products/services the vendor supplies, priced indicatively.
			Mode:          ledger.ModePricing,
			TaxComponents: singleGST,
		},
		ResetOnSubmit: true,
	}
}

func equipmentFinancing() form.Definition {
	return form.Definition{
		ID:       "equipment-financing",
		Title:    "Equipment Financing Application",
		Vertical: "equipment",
		Header: schema.Schema{Fields: []schema.Field{
			{Name: "applicant_name", Label: "Applicant Name", Kind: schema.KindText, Required: true},
			{Name: "pan", Label: "PAN", Kind: schema.KindText, Required: true, Pattern: schema.PatternPAN},
			{Name: "phone", Label: "Phone", Kind: schema.KindText, Required: true, Pattern: schema.PatternPhone},
			{Name: "email", Label: "Email", Kind: schema.KindText, Pattern: schema.PatternEmail},
			{Name: "equipment_type", Label: "Equipment Type", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetEquipmentTypes},
			{Name: "tenure_months", Label: "Tenure (Months)", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetTenureMonths},
			{Name: "has_cosigner", Label: "Has Co-signer", Kind: schema.KindBool},
			{Name: "cosigner_name", Label: "Co-signer Name", Kind: schema.KindText, Required: true,
				VisibleWhen: &schema.Condition{Field: "has_cosigner", Equals: "true"}},
			{Name: "cosigner_pan", Label: "Co-signer PAN", Kind: schema.KindText, Required: true, Pattern: schema.PatternPAN,
				VisibleWhen: &schema.Condition{Field: "has_cosigner", Equals: "true"}},
			{Name: "ifsc", Label: "Disbursement IFSC", Kind: schema.KindText, Required: true, Pattern: schema.PatternIFSC},
		}},
		Rules: ledger.RuleSet{
			// Financed units with quantity and quoted price per unit.
			Mode:          ledger.ModePricing,
			TaxComponents: splitGST,
		},
		ResetOnSubmit: true,
	}
}

func agricultureCompliance() form.Definition {
	return form.Definition{
		ID:       "agriculture-compliance",
		Title:    "Agriculture Compliance Declaration",
		Vertical: "agriculture",
		Header: schema.Schema{Fields: []schema.Field{
			{Name: "farmer_name", Label: "Farmer Name", Kind: schema.KindText, Required: true},
			{Name: "phone", Label: "Phone", Kind: schema.KindText, Required: true, Pattern: schema.PatternPhone},
			{Name: "crop_type", Label: "Crop Type", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetCropTypes},
			{Name: "survey_number", Label: "Survey Number", Kind: schema.KindText, Required: true},
			{Name: "state", Label: "State", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetStates},
			{Name: "pincode", Label: "Pincode", Kind: schema.KindText, Required: true, Pattern: schema.PatternPincode},
			{Name: "organic_certified", Label: "Organic Certified", Kind: schema.KindBool},
			{Name: "certificate_number", Label: "Certificate Number", Kind: schema.KindText, Required: true,
				VisibleWhen: &schema.Condition{Field: "organic_certified", Equals: "true"}},
			{Name: "declaration", Label: "Declaration", Kind: schema.KindText, Required: true, MinLen: 20},
		}},
		Rules: ledger.RuleSet{
			// Declared produce lots: quantity at the notified rate, untaxed.
			Mode: ledger.ModePricing,
		},
		ResetOnSubmit: true,
	}
}

func serviceCancellation() form.Definition {
	return form.Definition{
		ID:       "service-cancellation",
		Title:    "Service Cancellation Request",
		Vertical: "services",
		Header: schema.Schema{Fields: []schema.Field{
			{Name: "account_number", Label: "Account Number", Kind: schema.KindText, Required: true},
			{Name: "customer_name", Label: "Customer Name", Kind: schema.KindText, Required: true},
			{Name: "phone", Label: "Phone", Kind: schema.KindText, Required: true, Pattern: schema.PatternPhone},
			{Name: "email", Label: "Email", Kind: schema.KindText, Pattern: schema.PatternEmail},
			{Name: "effective_date", Label: "Effective Date", Kind: schema.KindDate, Required: true},
			{Name: "reason", Label: "Cancellation Reason", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetCancelReasons},
			{Name: "reason_details", Label: "Details", Kind: schema.KindText, Required: true, MinLen: 20,
				VisibleWhen: &schema.Condition{Field: "reason", Equals: "Other"}},
			{Name: "refund_mode", Label: "Refund Mode", Kind: schema.KindEnum, Required: true, OptionSet: catalog.SetPaymentModes},
		}},
		Rules: ledger.RuleSet{
			// Services being cancelled with their billed amounts.
			Mode:          ledger.ModePricing,
			TaxComponents: singleGST,
		},
		ResetOnSubmit: true,
	}
}
