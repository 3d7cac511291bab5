// Package words converts monetary amounts to their written form using the
// Indian numbering system (thousand, lakh, crore), as printed on the
// portal's commercial documents.
package words

import (
	"math"
	"strings"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// upToHundred renders 0-99.
func upToHundred(n int) string {
	if n < 20 {
		return ones[n]
	}
	word := tens[n/10]
	if n%10 != 0 {
		word += " " + ones[n%10]
	}
	return word
}

// upToThousand renders 0-999.
func upToThousand(n int) string {
	if n < 100 {
		return upToHundred(n)
	}
	word := ones[n/100] + " Hundred"
	if n%100 != 0 {
		word += " " + upToHundred(n%100)
	}
	return word
}

// integerWords renders a non-negative integer with Indian grouping.
func integerWords(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var parts []string

	// The crore group recurses so amounts past 99 crore keep the Indian
	// convention: "Two Thousand Crore", "One Lakh Crore".
	if crore := n / 10000000; crore > 0 {
		parts = append(parts, integerWords(crore)+" Crore")
		n %= 10000000
	}

	appendGroup := func(value int64, label string) {
		if value > 0 {
			word := upToThousand(int(value))
			if label != "" {
				word += " " + label
			}
			parts = append(parts, word)
		}
	}

	appendGroup(n/100000, "Lakh")
	n %= 100000
	appendGroup(n/1000, "Thousand")
	n %= 1000
	appendGroup(n, "")

	return strings.Join(parts, " ")
}

// Rupees renders an amount as rupee words, with paise when the fractional
// part is non-zero. The amount is rounded to two decimals first, matching
// what the forms display.
func Rupees(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	// Work in paise to avoid float comparisons on the fractional part.
	totalPaise := int64(math.Round(amount * 100))
	rupees := totalPaise / 100
	paise := totalPaise % 100

	unit := "Rupees"
	if rupees == 1 {
		unit = "Rupee"
	}
	word := integerWords(rupees) + " " + unit
	if paise > 0 {
		fraction := "Paise"
		if paise == 1 {
			fraction = "Paisa"
		}
		word += " and " + upToHundred(int(paise)) + " " + fraction
	}
	word += " Only"

	if negative {
		word = "Minus " + word
	}
	return word
}
