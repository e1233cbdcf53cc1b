package utils

import "strings"

// CurrencyInfo describes one supported currency code.
type CurrencyInfo struct {
	Symbol    string
	Name      string
	Countries []string
}

// Currencies is the closed set of currency codes the planner accepts.
// Country keywords are used to guess a currency from a free-text location.
var Currencies = map[string]CurrencyInfo{
	"USD": {"$", "US Dollar", []string{"united states", "usa", "america"}},
	"EUR": {"€", "Euro", []string{"germany", "france", "italy", "spain", "netherlands", "belgium", "portugal", "austria", "ireland", "greece", "finland"}},
	"GBP": {"£", "British Pound", []string{"united kingdom", "uk", "england", "scotland", "wales"}},
	"INR": {"₹", "Indian Rupee", []string{"india"}},
	"JPY": {"¥", "Japanese Yen", []string{"japan"}},
	"CNY": {"¥", "Chinese Yuan", []string{"china"}},
	"AUD": {"A$", "Australian Dollar", []string{"australia"}},
	"CAD": {"C$", "Canadian Dollar", []string{"canada"}},
	"CHF": {"Fr", "Swiss Franc", []string{"switzerland"}},
	"SGD": {"S$", "Singapore Dollar", []string{"singapore"}},
	"AED": {"د.إ", "UAE Dirham", []string{"uae", "dubai", "abu dhabi", "united arab emirates"}},
	"THB": {"฿", "Thai Baht", []string{"thailand"}},
	"MYR": {"RM", "Malaysian Ringgit", []string{"malaysia"}},
	"IDR": {"Rp", "Indonesian Rupiah", []string{"indonesia", "bali"}},
	"KRW": {"₩", "South Korean Won", []string{"south korea", "korea"}},
	"MXN": {"Mex$", "Mexican Peso", []string{"mexico"}},
	"BRL": {"R$", "Brazilian Real", []string{"brazil"}},
	"ZAR": {"R", "South African Rand", []string{"south africa"}},
	"NZD": {"NZ$", "New Zealand Dollar", []string{"new zealand"}},
	"SEK": {"kr", "Swedish Krona", []string{"sweden"}},
	"NOK": {"kr", "Norwegian Krone", []string{"norway"}},
	"DKK": {"kr", "Danish Krone", []string{"denmark"}},
	"RUB": {"₽", "Russian Ruble", []string{"russia"}},
	"TRY": {"₺", "Turkish Lira", []string{"turkey"}},
	"PHP": {"₱", "Philippine Peso", []string{"philippines"}},
	"VND": {"₫", "Vietnamese Dong", []string{"vietnam"}},
	"EGP": {"E£", "Egyptian Pound", []string{"egypt"}},
	"PKR": {"Rs", "Pakistani Rupee", []string{"pakistan"}},
	"LKR": {"Rs", "Sri Lankan Rupee", []string{"sri lanka"}},
	"NPR": {"Rs", "Nepalese Rupee", []string{"nepal"}},
	"BDT": {"৳", "Bangladeshi Taka", []string{"bangladesh"}},
}

// IsSupportedCurrency reports whether code is one of the accepted currency codes.
func IsSupportedCurrency(code string) bool {
	_, ok := Currencies[strings.ToUpper(code)]
	return ok
}

// CurrencySymbol returns the display symbol for code, falling back to "$"
// for unknown codes so rendered costs always carry some prefix.
func CurrencySymbol(code string) string {
	if info, ok := Currencies[strings.ToUpper(code)]; ok {
		return info.Symbol
	}
	return "$"
}

// CurrencyFromLocation guesses a currency code from a free-text location name.
// Defaults to USD when no country keyword matches.
func CurrencyFromLocation(location string) string {
	if location == "" {
		return "USD"
	}
	lower := strings.ToLower(location)
	for code, info := range Currencies {
		for _, country := range info.Countries {
			if strings.Contains(lower, country) {
				return code
			}
		}
	}
	return "USD"
}
