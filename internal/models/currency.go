package models

// Default view inputs.
const (
	DefaultAmount = "1000"
	USD           = "USD"
	INR           = "INR"
)

// Currency holds display metadata for a currency code
// swagger:model Currency
type Currency struct {
	// ISO-4217 code
	// example: USD
	Code string `json:"code"`

	// Display name
	// example: US Dollar
	Name string `json:"name"`

	// Flag glyph
	// example: 🇺🇸
	Flag string `json:"flag"`

	// Currency symbol
	// example: $
	Symbol string `json:"symbol"`
}

// CurrenciesResponse lists the local catalog and the codes the remote service supports
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// Currencies available in the converter
	Currencies []Currency `json:"currencies"`

	// [code, name] pairs reported by the conversion service
	SupportedCodes [][]string `json:"supported_codes"`
}
