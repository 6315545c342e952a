package services

//go:generate mockgen -source=converter.go -destination=converter_mock.go -package=services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ConversionClient converts an amount through the remote service
type ConversionClient interface {
	Convert(ctx context.Context, fromCurrency, toCurrency string, amount float64) (*models.ConversionResult, error)
}

// CurrencyLookup resolves display metadata for a currency code
type CurrencyLookup interface {
	Lookup(code string) (models.Currency, bool)
}

// ConverterService holds the state of the converter view and drives conversions.
//
// Every conversion is tagged with a sequence number. Starting a conversion
// cancels the one in flight, and a response is applied only if its sequence
// number is still the latest, so the view always reflects the most recently
// triggered request.
type ConverterService struct {
	client  ConversionClient
	lookup  CurrencyLookup
	display *Formatter

	mu      sync.Mutex
	amount  string
	from    string
	to      string
	result  *models.ConversionResult
	loading bool
	errMsg  string

	seq    uint64
	cancel context.CancelFunc
}

// NewConverterService creates a view with the default amount and currency pair
func NewConverterService(client ConversionClient, lookup CurrencyLookup) *ConverterService {
	return &ConverterService{
		client:  client,
		lookup:  lookup,
		display: NewFormatter(lookup),
		amount:  models.DefaultAmount,
		from:    models.USD,
		to:      models.INR,
	}
}

// SetAmount replaces the raw amount text and clears any result.
func (svc *ConverterService) SetAmount(amount string) models.ConverterState {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.amount = amount
	svc.result = nil
	return svc.snapshot()
}

// SetFrom changes the source currency and clears any result.
func (svc *ConverterService) SetFrom(code string) models.ConverterState {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.from = code
	svc.result = nil
	return svc.snapshot()
}

// SetTo changes the target currency and clears any result.
func (svc *ConverterService) SetTo(code string) models.ConverterState {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.to = code
	svc.result = nil
	return svc.snapshot()
}

// Swap exchanges the source and target currencies.
// The amount and any displayed result are left as they are.
func (svc *ConverterService) Swap() models.ConverterState {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	svc.from, svc.to = svc.to, svc.from
	return svc.snapshot()
}

// State returns the current view snapshot.
func (svc *ConverterService) State() models.ConverterState {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	return svc.snapshot()
}

// Convert validates the amount and, if it is a positive number, converts it
// with the current currency pair. It blocks until the request resolves or ctx
// is done and returns the resulting snapshot.
func (svc *ConverterService) Convert(ctx context.Context) models.ConverterState {
	svc.mu.Lock()

	amount, ok := parseAmount(svc.amount)
	if !ok {
		// A rejected trigger still supersedes any request in flight.
		if svc.cancel != nil {
			svc.cancel()
			svc.cancel = nil
		}
		svc.seq++
		svc.loading = false
		svc.result = nil
		state := svc.snapshot()
		svc.mu.Unlock()
		logger.Log.Debugw("conversion skipped, invalid amount", "amount", state.Amount)
		return state
	}

	if svc.cancel != nil {
		svc.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	svc.seq++
	seq := svc.seq
	svc.cancel = cancel
	svc.loading = true
	svc.errMsg = ""
	from, to := svc.from, svc.to
	svc.mu.Unlock()

	logger.Log.Infow("conversion started", "seq", seq, "from", from, "to", to, "amount", amount)

	res, err := svc.client.Convert(reqCtx, from, to, amount)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	cancel()

	if seq != svc.seq {
		logger.Log.Infow("discarding superseded conversion", "seq", seq, "latest", svc.seq)
		return svc.snapshot()
	}

	svc.cancel = nil
	svc.loading = false
	if err != nil {
		svc.errMsg = err.Error()
		svc.result = nil
		logger.Log.Errorw("conversion failed", "seq", seq, "from", from, "to", to, "error", err)
		return svc.snapshot()
	}

	svc.result = res
	svc.errMsg = ""
	return svc.snapshot()
}

// snapshot must be called with mu held.
func (svc *ConverterService) snapshot() models.ConverterState {
	state := models.ConverterState{
		Amount:  svc.amount,
		From:    svc.from,
		To:      svc.to,
		Loading: svc.loading,
		Error:   svc.errMsg,
	}

	if cur, ok := svc.lookup.Lookup(svc.from); ok {
		state.AmountSymbol = cur.Symbol
	}

	if svc.result != nil {
		res := *svc.result
		state.Result = &res
		display := svc.display.Result(res)
		state.Display = &display
	}

	switch {
	case svc.loading:
		state.Status = models.StatusLoading
	case svc.errMsg != "":
		state.Status = models.StatusFailed
	case svc.result != nil:
		state.Status = models.StatusSuccess
	default:
		state.Status = models.StatusIdle
	}

	return state
}

// parseAmount accepts finite, strictly positive decimal numbers.
func parseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
