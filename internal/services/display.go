package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Formatter renders conversion results for display.
// Unknown currency codes render without symbol or flag.
type Formatter struct {
	lookup  CurrencyLookup
	printer *message.Printer
}

// NewFormatter creates a formatter using English digit grouping
func NewFormatter(lookup CurrencyLookup) *Formatter {
	return &Formatter{
		lookup:  lookup,
		printer: message.NewPrinter(language.English),
	}
}

// Result renders the pair, converted amount and rate lines.
func (f *Formatter) Result(res models.ConversionResult) models.ResultDisplay {
	from, _ := f.lookup.Lookup(res.From)
	to, _ := f.lookup.Lookup(res.To)

	return models.ResultDisplay{
		Pair:      strings.TrimSpace(joinNonEmpty(from.Flag, res.From) + " → " + joinNonEmpty(to.Flag, res.To)),
		Converted: to.Symbol + f.Amount(res.Result),
		Rate:      fmt.Sprintf("1 %s = %.4f %s", res.From, res.Rate, res.To),
	}
}

// Amount formats v with thousands separators and two decimals.
func (f *Formatter) Amount(v float64) string {
	return f.printer.Sprintf("%.2f", v)
}

func joinNonEmpty(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
