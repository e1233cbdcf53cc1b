package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern matches the leading numeric magnitude of a cost string:
// the first run of digits with optional thousands separators and up to one
// decimal point. Currency symbols, "approx." qualifiers and trailing text
// are ignored.
var amountPattern = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)

// budgetPattern is the strict form accepted for a user-supplied budget:
// an integer or a number with up to two decimal places, nothing else.
var budgetPattern = regexp.MustCompile(`^[0-9]+(?:\.[0-9]{1,2})?$`)

// ParseAmount extracts the leading numeric magnitude from a currency-prefixed
// cost string such as "₹1,500" or "$120-150 (approx.)". Returns 0 and false
// when no digits are present.
func ParseAmount(s string) (float64, bool) {
	match := amountPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	match = strings.ReplaceAll(match, ",", "")
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ParseBudget validates and parses a user-supplied budget field. Unlike
// ParseAmount it rejects rather than parses around embedded symbols or free
// text. Empty input means "no budget" and yields 0.
func ParseBudget(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if !budgetPattern.MatchString(s) {
		return 0, ErrInvalidBudget
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidBudget
	}
	return value, nil
}
