package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradeport/formengine/internal/catalog"
)

func vendorSchema() Schema {
	return Schema{Fields: []Field{
		{Name: "vendor_name", Label: "Vendor Name", Kind: KindText, Required: true},
		{Name: "pan", Label: "PAN", Kind: KindText, Required: true, Pattern: PatternPAN},
		{Name: "phone", Label: "Phone", Kind: KindText, Required: true, Pattern: PatternPhone},
		{Name: "email", Label: "Email", Kind: KindText, Pattern: PatternEmail},
		{Name: "ifsc", Label: "IFSC", Kind: KindText, Pattern: PatternIFSC},
		{Name: "pincode", Label: "Pincode", Kind: KindText, Pattern: PatternPincode},
		{Name: "category", Label: "Category", Kind: KindEnum, Required: true, OptionSet: catalog.SetVendorCategories},
		{Name: "justification", Label: "Justification", Kind: KindText, MinLen: 20},
		{Name: "transit_insured", Label: "Transit Insured", Kind: KindBool},
		{Name: "policy_number", Label: "Policy Number", Kind: KindText, Required: true,
			VisibleWhen: &Condition{Field: "transit_insured", Equals: "true"}},
	}}
}

func TestSchema_Validate(t *testing.T) {
	s := vendorSchema()

	t.Run("valid values pass", func(t *testing.T) {
		errs := s.Validate(map[string]string{
			"vendor_name": "Sharma Traders",
			"pan":         "ABCDE1234F",
			"phone":       "9876543210",
			"email":       "accounts@sharmatraders.in",
			"category":    "Wholesaler",
		})
		assert.Empty(t, errs)
	})

	t.Run("invalid PAN reports only the PAN field", func(t *testing.T) {
		errs := s.Validate(map[string]string{
			"vendor_name": "Sharma Traders",
			"pan":         "1234",
			"phone":       "9876543210",
			"category":    "Wholesaler",
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "pan", errs[0].Field)
	})

	t.Run("reports every violation, not just the first", func(t *testing.T) {
		errs := s.Validate(map[string]string{
			"vendor_name":   "",      // required
			"pan":           "1234",  // pattern
			"phone":         "12345", // pattern
			"email":         "not-an-email",
			"category":      "Astrologer", // enum membership
			"justification": "too short",  // min length
		})
		require.Len(t, errs, 6)
		fields := make(map[string]bool)
		for _, e := range errs {
			fields[e.Field] = true
		}
		for _, want := range []string{"vendor_name", "pan", "phone", "email", "category", "justification"} {
			assert.True(t, fields[want], "expected error on %s", want)
		}
	})

	t.Run("optional empty fields are not errors", func(t *testing.T) {
		errs := s.Validate(map[string]string{
			"vendor_name": "Sharma Traders",
			"pan":         "ABCDE1234F",
			"phone":       "9876543210",
			"category":    "Wholesaler",
			"email":       "",
			"ifsc":        "",
		})
		assert.Empty(t, errs)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		errs := s.Validate(map[string]string{
			"vendor_name": "Sharma Traders",
			"pan":         "ABCDE1234F",
			"phone":       "9876543210",
			"category":    "Wholesaler",
			"surprise":    "value",
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "surprise", errs[0].Field)
		assert.Equal(t, "unknown field", errs[0].Message)
	})
}

func TestSchema_ConditionalFields(t *testing.T) {
	s := vendorSchema()

	t.Run("hidden conditional field is not required", func(t *testing.T) {
		errs := s.Validate(map[string]string{
			"vendor_name": "Sharma Traders",
			"pan":         "ABCDE1234F",
			"phone":       "9876543210",
			"category":    "Transporter",
		})
		assert.Empty(t, errs)
	})

	t.Run("visible conditional field becomes required", func(t *testing.T) {
		errs := s.Validate(map[string]string{
			"vendor_name":     "Sharma Traders",
			"pan":             "ABCDE1234F",
			"phone":           "9876543210",
			"category":        "Transporter",
			"transit_insured": "true",
		})
		require.Len(t, errs, 1)
		assert.Equal(t, "policy_number", errs[0].Field)
	})

	t.Run("ActiveFields tracks the gating value", func(t *testing.T) {
		hidden := s.ActiveFields(map[string]string{})
		shown := s.ActiveFields(map[string]string{"transit_insured": "true"})
		assert.Len(t, shown, len(hidden)+1)

		names := make(map[string]bool)
		for _, f := range shown {
			names[f.Name] = true
		}
		assert.True(t, names["policy_number"])
	})
}

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern string
		value   string
		ok      bool
	}{
		{PatternPhone, "9876543210", true},
		{PatternPhone, "98765", false},
		{PatternPhone, "98765432101", false},
		{PatternPAN, "ABCDE1234F", true},
		{PatternPAN, "abcde1234f", false},
		{PatternIFSC, "HDFC0001234", true},
		{PatternIFSC, "HDFC1001234", false},
		{PatternPincode, "400001", true},
		{PatternPincode, "4000011", false},
		{PatternEmail, "ops@tradeport.in", true},
		{PatternEmail, "ops@", false},
		{PatternGSTIN, "27ABCDE1234FZ19", true},
		{PatternGSTIN, "XYZ", false},
	}

	for _, tc := range cases {
		err := MatchPattern(tc.pattern, tc.value)
		if tc.ok {
			assert.NoError(t, err, "%s %q", tc.pattern, tc.value)
		} else {
			assert.Error(t, err, "%s %q", tc.pattern, tc.value)
		}
	}

	assert.Error(t, MatchPattern("no-such-pattern", "x"))
}
