package handlers

//go:generate mockgen -source=converter.go -destination=converter_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// maxRequestBodyBytes caps JSON and form bodies.
const maxRequestBodyBytes = 4 << 10

// Converter is the converter view driven by the handlers.
type Converter interface {
	State() models.ConverterState
	SetAmount(amount string) models.ConverterState
	SetFrom(code string) models.ConverterState
	SetTo(code string) models.ConverterState
	Swap() models.ConverterState
	Convert(ctx context.Context) models.ConverterState
}

// CurrencyLister lists the currencies offered by the converter.
type CurrencyLister interface {
	List() []models.Currency
}

// SupportedCurrenciesLister lists the [code, name] pairs the remote service supports.
type SupportedCurrenciesLister interface {
	ListSupportedCurrencies(ctx context.Context) [][]string
}

// NewGetStateHandler returns the current converter state.
// @Summary Get converter state
// @Description Returns the amount, currency pair, loading flag, error and last result
// @Tags converter
// @Produce json
// @Success 200 {object} models.ConverterState
// @Router /state [get]
func NewGetStateHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, conv.State())
	}
}

// NewSetAmountHandler replaces the amount text.
// @Summary Set amount
// @Description Replaces the raw amount text. Clears any displayed result.
// @Tags converter
// @Accept json
// @Produce json
// @Param request body models.AmountRequest true "Amount"
// @Success 200 {object} models.ConverterState
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Router /amount [put]
func NewSetAmountHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		var req models.AmountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}
		writeJSON(w, http.StatusOK, conv.SetAmount(req.Amount))
	}
}

// NewSetFromHandler changes the source currency.
// @Summary Set source currency
// @Description Changes the currency converted from. Clears any displayed result.
// @Tags converter
// @Accept json
// @Produce json
// @Param request body models.CurrencyCodeRequest true "Currency code"
// @Success 200 {object} models.ConverterState
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Router /from [put]
func NewSetFromHandler(conv Converter) http.HandlerFunc {
	return newSetCodeHandler(conv.SetFrom)
}

// NewSetToHandler changes the target currency.
// @Summary Set target currency
// @Description Changes the currency converted to. Clears any displayed result.
// @Tags converter
// @Accept json
// @Produce json
// @Param request body models.CurrencyCodeRequest true "Currency code"
// @Success 200 {object} models.ConverterState
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Router /to [put]
func NewSetToHandler(conv Converter) http.HandlerFunc {
	return newSetCodeHandler(conv.SetTo)
}

func newSetCodeHandler(set func(code string) models.ConverterState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		var req models.CurrencyCodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}
		writeJSON(w, http.StatusOK, set(req.Code))
	}
}

// NewSwapHandler exchanges the source and target currencies.
// @Summary Swap currencies
// @Description Exchanges from and to. Keeps the amount and does not convert.
// @Tags converter
// @Produce json
// @Success 200 {object} models.ConverterState
// @Router /swap [post]
func NewSwapHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, conv.Swap())
	}
}

// NewConvertHandler converts the current amount.
// @Summary Convert
// @Description Converts the current amount with the current currency pair. An invalid amount only clears the result. Conversion failures are reported in the state's error field.
// @Tags converter
// @Produce json
// @Success 200 {object} models.ConverterState
// @Router /convert [post]
func NewConvertHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, conv.Convert(r.Context()))
	}
}

// NewGetCurrenciesHandler lists the local catalog and the remote supported codes.
// @Summary List currencies
// @Description Returns the converter's currencies and the [code, name] pairs reported by the conversion service. The remote list is empty if the service cannot be reached.
// @Tags converter
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewGetCurrenciesHandler(currencies CurrencyLister, supported SupportedCurrenciesLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.CurrenciesResponse{
			Currencies:     currencies.List(),
			SupportedCodes: supported.ListSupportedCurrencies(r.Context()),
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
