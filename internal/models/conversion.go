package models

// ConversionResult is the normalized outcome of a single conversion call.
type ConversionResult struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
	Result    float64 `json:"result"`
	Timestamp string  `json:"timestamp"`
	Success   bool    `json:"success"`
	Error     string  `json:"error,omitempty"`
}

// ConvertRequest is the body sent to the conversion service
type ConvertRequest struct {
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
	Amount       float64 `json:"amount"`
}

// ConvertResponse is the body returned by the conversion service.
// Pointers distinguish a missing field from a zero value.
type ConvertResponse struct {
	FromCurrency    *string  `json:"from_currency"`
	ToCurrency      *string  `json:"to_currency"`
	ExchangeRate    *float64 `json:"exchange_rate"`
	Amount          *float64 `json:"amount"`
	ConvertedAmount *float64 `json:"converted_amount"`
	Timestamp       string   `json:"timestamp"`
	Success         bool     `json:"success"`
	Error           *string  `json:"error"`
}

// SupportedCurrenciesResponse is the body of GET /currencies
type SupportedCurrenciesResponse struct {
	SupportedCodes [][]string `json:"supported_codes"`
}

// HealthResponse is the body of GET /health
// swagger:model HealthResponse
type HealthResponse struct {
	// example: healthy
	Status string `json:"status"`

	// example: currency-converter
	Service string `json:"service"`
}
