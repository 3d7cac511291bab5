package schema

import (
	"fmt"
	"regexp"
)

// Named patterns shared by the header schemas. Referenced from Field.Pattern
// so form definitions stay declarative.
const (
	PatternPhone   = "phone"
	PatternPAN     = "pan"
	PatternIFSC    = "ifsc"
	PatternPincode = "pincode"
	PatternEmail   = "email"
	PatternGSTIN   = "gstin"
)

var patterns = map[string]struct {
	re      *regexp.Regexp
	message string
}{
	PatternPhone: {
		re:      regexp.MustCompile(`^[0-9]{10}$`),
		message: "must be a 10 digit phone number",
	},
	PatternPAN: {
		re:      regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`),
		message: "must be a valid PAN (5 letters, 4 digits, 1 letter)",
	},
	PatternIFSC: {
		re:      regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`),
		message: "must be a valid IFSC code",
	},
	PatternPincode: {
		re:      regexp.MustCompile(`^[0-9]{6}$`),
		message: "must be a 6 digit pincode",
	},
	PatternEmail: {
		re:      regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`),
		message: "must be a valid email address",
	},
	PatternGSTIN: {
		re:      regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]{3}$`),
		message: "must be a valid GSTIN",
	},
}

// MatchPattern validates value against the named pattern.
// Unknown pattern names are a programming error in a form definition.
func MatchPattern(name, value string) error {
	p, ok := patterns[name]
	if !ok {
		return fmt.Errorf("unknown pattern %q", name)
	}
	if !p.re.MatchString(value) {
		return fmt.Errorf("%s", p.message)
	}
	return nil
}
