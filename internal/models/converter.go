package models

// Status is the derived phase of the converter view.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// ResultDisplay is the rendered form of a conversion result
// swagger:model ResultDisplay
type ResultDisplay struct {
	// example: 🇺🇸 USD → 🇮🇳 INR
	Pair string `json:"pair"`

	// example: ₹83,120.00
	Converted string `json:"converted"`

	// example: 1 USD = 83.1200 INR
	Rate string `json:"rate"`
}

// ConverterState is a point-in-time snapshot of the converter view
// swagger:model ConverterState
type ConverterState struct {
	// Raw amount text as typed
	// example: 1000
	Amount string `json:"amount"`

	// example: USD
	From string `json:"from"`

	// example: INR
	To string `json:"to"`

	// Symbol shown next to the amount input
	// example: $
	AmountSymbol string `json:"amount_symbol"`

	// example: success
	Status Status `json:"status"`

	Loading bool `json:"loading"`

	// Error message of the last failed conversion
	// example: Unsupported currency pair
	Error string `json:"error,omitempty"`

	Result *ConversionResult `json:"result,omitempty"`

	Display *ResultDisplay `json:"display,omitempty"`
}

// AmountRequest is the body of PUT /amount
// swagger:model AmountRequest
type AmountRequest struct {
	// required: true
	// example: 1000
	Amount string `json:"amount"`
}

// CurrencyCodeRequest is the body of PUT /from and PUT /to
// swagger:model CurrencyCodeRequest
type CurrencyCodeRequest struct {
	// required: true
	// example: EUR
	Code string `json:"code"`
}

// ErrorResponse represents an error returned by the converter API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: invalid request body
	Error string `json:"error"`
}
