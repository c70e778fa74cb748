package types

import (
	"sort"
	"strings"
)

// CurrencyRule describes how amounts in one ISO 4217 currency are displayed
type CurrencyRule struct {
	Code                        string `json:"code"`
	Symbol                      string `json:"symbol"`
	ThousandsSeparator          string `json:"thousandsSeparator"`
	DecimalSeparator            string `json:"decimalSeparator"`
	SymbolOnLeft                bool   `json:"symbolOnLeft"`
	SpaceBetweenAmountAndSymbol bool   `json:"spaceBetweenAmountAndSymbol"`
	DecimalDigits               int    `json:"decimalDigits"`
}

// currencyRules is keyed by upper case ISO code and never written after init
var currencyRules = indexCurrencyRules([]CurrencyRule{
	{Code: "USD", Symbol: "$", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "EUR", Symbol: "€", ThousandsSeparator: " ", DecimalSeparator: ",", SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "TRY", Symbol: "₺", ThousandsSeparator: ".", DecimalSeparator: ",", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "GBP", Symbol: "£", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "JPY", Symbol: "¥", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 0},
	{Code: "CAD", Symbol: "$", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "AUD", Symbol: "$", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "CHF", Symbol: "CHF", ThousandsSeparator: "'", DecimalSeparator: ".", SymbolOnLeft: true, SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "CNY", Symbol: "¥", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "INR", Symbol: "₹", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "KRW", Symbol: "₩", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 0},
	{Code: "BRL", Symbol: "R$", ThousandsSeparator: ".", DecimalSeparator: ",", SymbolOnLeft: true, SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "MXN", Symbol: "$", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "RUB", Symbol: "₽", ThousandsSeparator: " ", DecimalSeparator: ",", SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "PLN", Symbol: "zł", ThousandsSeparator: " ", DecimalSeparator: ",", SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "SEK", Symbol: "kr", ThousandsSeparator: ".", DecimalSeparator: ",", SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "NOK", Symbol: "kr", ThousandsSeparator: " ", DecimalSeparator: ",", SymbolOnLeft: true, SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "DKK", Symbol: "kr.", ThousandsSeparator: "", DecimalSeparator: ",", SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "SGD", Symbol: "$", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "HKD", Symbol: "HK$", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "NZD", Symbol: "$", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "ZAR", Symbol: "R", ThousandsSeparator: " ", DecimalSeparator: ",", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "AED", Symbol: "د.إ.‏", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "SAR", Symbol: "﷼", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "THB", Symbol: "฿", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "PHP", Symbol: "₱", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "MYR", Symbol: "RM", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, DecimalDigits: 2},
	{Code: "IDR", Symbol: "Rp", ThousandsSeparator: ".", DecimalSeparator: ",", SymbolOnLeft: true, DecimalDigits: 0},
	{Code: "VND", Symbol: "₫", ThousandsSeparator: ".", DecimalSeparator: ".", SpaceBetweenAmountAndSymbol: true, DecimalDigits: 0},
	{Code: "ILS", Symbol: "₪", ThousandsSeparator: ",", DecimalSeparator: ".", SymbolOnLeft: true, SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "CZK", Symbol: "Kč", ThousandsSeparator: " ", DecimalSeparator: ",", SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
	{Code: "HUF", Symbol: "Ft", ThousandsSeparator: " ", DecimalSeparator: ",", SpaceBetweenAmountAndSymbol: true, DecimalDigits: 2},
})

func indexCurrencyRules(rules []CurrencyRule) map[string]CurrencyRule {
	index := make(map[string]CurrencyRule, len(rules))
	for _, r := range rules {
		index[r.Code] = r
	}
	return index
}

// NormalizeCurrencyCode trims and upper cases a currency code for table lookups
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GetCurrencyRule returns the display rule for a currency code, case-insensitively.
// The returned rule is a copy.
func GetCurrencyRule(code string) (CurrencyRule, bool) {
	rule, ok := currencyRules[NormalizeCurrencyCode(code)]
	return rule, ok
}

// GetCurrencySymbol returns the symbol for a given currency code
// if the code is not found, it returns the code itself
func GetCurrencySymbol(code string) string {
	if rule, ok := GetCurrencyRule(code); ok {
		return rule.Symbol
	}
	return code
}

// SupportedCurrencyCodes returns all codes of the rule table in alphabetical order
func SupportedCurrencyCodes() []string {
	codes := make([]string, 0, len(currencyRules))
	for code := range currencyRules {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// PopularCurrencies is the ordered list offered by the interactive wizard
var PopularCurrencies = []struct {
	Code string
	Name string
}{
	{"USD", "US Dollar"},
	{"EUR", "Euro"},
	{"TRY", "Turkish Lira"},
	{"GBP", "British Pound"},
	{"JPY", "Japanese Yen"},
	{"CAD", "Canadian Dollar"},
	{"AUD", "Australian Dollar"},
	{"CHF", "Swiss Franc"},
	{"CNY", "Chinese Yuan"},
	{"INR", "Indian Rupee"},
	{"BRL", "Brazilian Real"},
	{"RUB", "Russian Ruble"},
	{"KRW", "South Korean Won"},
}
