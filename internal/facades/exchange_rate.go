package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// FallbackErrorMessage is shown when the service gives no usable detail.
const FallbackErrorMessage = "Failed to fetch exchange rate"

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 << 10

// ConversionError is returned when a conversion call fails.
// Message is safe to show to the user as is.
type ConversionError struct {
	Message    string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *ConversionError) Error() string {
	return e.Message
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ExchangeRatesHTTPFacade talks to the remote conversion service over HTTP.
type ExchangeRatesHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewExchangeRatesHTTPFacade creates a facade for the service at baseURL.
// A zero timeout means requests are bounded only by their context.
func NewExchangeRatesHTTPFacade(baseURL string, timeout time.Duration) *ExchangeRatesHTTPFacade {
	return &ExchangeRatesHTTPFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Convert asks the service to convert amount from one currency to another.
// On failure no partial result is returned.
func (f *ExchangeRatesHTTPFacade) Convert(
	ctx context.Context,
	fromCurrency, toCurrency string,
	amount float64,
) (*models.ConversionResult, error) {
	body, err := json.Marshal(models.ConvertRequest{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Amount:       amount,
	})
	if err != nil {
		return nil, &ConversionError{Message: FallbackErrorMessage, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/convert", bytes.NewReader(body))
	if err != nil {
		return nil, &ConversionError{Message: FallbackErrorMessage, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	reqID := middlewares.RequestIDFromContext(ctx)

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Log.Debugw("conversion request canceled",
				"request_id", reqID, "from", fromCurrency, "to", toCurrency)
		} else {
			logger.Log.Errorw("failed to reach conversion service",
				"request_id", reqID, "from", fromCurrency, "to", toCurrency, "error", err)
		}
		return nil, &ConversionError{Message: FallbackErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		convErr := errorFromResponse(resp)
		logger.Log.Errorw("conversion service returned an error",
			"request_id", reqID, "from", fromCurrency, "to", toCurrency,
			"status", resp.StatusCode, "message", convErr.Message)
		return nil, convErr
	}

	var data models.ConvertResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.Log.Errorw("malformed conversion response",
			"request_id", reqID, "status", resp.StatusCode, "error", err)
		return nil, &ConversionError{Message: FallbackErrorMessage, StatusCode: resp.StatusCode, Err: err}
	}
	if data.ExchangeRate == nil || data.ConvertedAmount == nil {
		err := errors.New("exchange_rate or converted_amount missing")
		logger.Log.Errorw("malformed conversion response",
			"request_id", reqID, "status", resp.StatusCode, "error", err)
		return nil, &ConversionError{Message: FallbackErrorMessage, StatusCode: resp.StatusCode, Err: err}
	}

	result := &models.ConversionResult{
		From:      valueOr(data.FromCurrency, fromCurrency),
		To:        valueOr(data.ToCurrency, toCurrency),
		Rate:      *data.ExchangeRate,
		Amount:    valueOr(data.Amount, amount),
		Result:    *data.ConvertedAmount,
		Timestamp: data.Timestamp,
		Success:   data.Success,
		Error:     valueOr(data.Error, ""),
	}

	logger.Log.Infow("conversion completed",
		"request_id", reqID, "from", result.From, "to", result.To,
		"amount", result.Amount, "rate", result.Rate, "result", result.Result)

	return result, nil
}

// ListSupportedCurrencies fetches the [code, name] pairs the service supports.
// It never fails: any error is logged and an empty list returned.
func (f *ExchangeRatesHTTPFacade) ListSupportedCurrencies(ctx context.Context) [][]string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/currencies", nil)
	if err != nil {
		logger.Log.Errorw("failed to fetch supported currencies", "error", err)
		return [][]string{}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch supported currencies", "error", err)
		return [][]string{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("failed to fetch supported currencies", "status", resp.StatusCode)
		return [][]string{}
	}

	var data models.SupportedCurrenciesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		logger.Log.Errorw("failed to decode supported currencies", "error", err)
		return [][]string{}
	}
	if data.SupportedCodes == nil {
		return [][]string{}
	}

	return data.SupportedCodes
}

// CheckHealth reports whether the service answers its health endpoint.
func (f *ExchangeRatesHTTPFacade) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("conversion service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// errorFromResponse extracts a string "detail" field from an error body.
func errorFromResponse(resp *http.Response) *ConversionError {
	convErr := &ConversionError{
		Message:    FallbackErrorMessage,
		StatusCode: resp.StatusCode,
		Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body); err != nil {
		return convErr
	}

	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err == nil && detail != "" {
		convErr.Message = detail
	}
	return convErr
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
