// Package catalog provides the fixed set of currencies the converter offers.
package catalog

import "github.com/sbilibin2017/gw-currency-converter/internal/models"

var defaultCurrencies = []models.Currency{
	{Code: "USD", Name: "US Dollar", Flag: "🇺🇸", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Flag: "🇪🇺", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Flag: "🇬🇧", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Flag: "🇯🇵", Symbol: "¥"},
	{Code: "INR", Name: "Indian Rupee", Flag: "🇮🇳", Symbol: "₹"},
	{Code: "AUD", Name: "Australian Dollar", Flag: "🇦🇺", Symbol: "A$"},
	{Code: "CAD", Name: "Canadian Dollar", Flag: "🇨🇦", Symbol: "C$"},
	{Code: "CHF", Name: "Swiss Franc", Flag: "🇨🇭", Symbol: "Fr"},
	{Code: "CNY", Name: "Chinese Yuan", Flag: "🇨🇳", Symbol: "¥"},
	{Code: "SEK", Name: "Swedish Krona", Flag: "🇸🇪", Symbol: "kr"},
	{Code: "NZD", Name: "New Zealand Dollar", Flag: "🇳🇿", Symbol: "NZ$"},
	{Code: "KRW", Name: "South Korean Won", Flag: "🇰🇷", Symbol: "₩"},
	{Code: "SGD", Name: "Singapore Dollar", Flag: "🇸🇬", Symbol: "S$"},
	{Code: "HKD", Name: "Hong Kong Dollar", Flag: "🇭🇰", Symbol: "HK$"},
	{Code: "BRL", Name: "Brazilian Real", Flag: "🇧🇷", Symbol: "R$"},
	{Code: "MXN", Name: "Mexican Peso", Flag: "🇲🇽", Symbol: "Mex$"},
	{Code: "ZAR", Name: "South African Rand", Flag: "🇿🇦", Symbol: "R"},
	{Code: "AED", Name: "UAE Dirham", Flag: "🇦🇪", Symbol: "د.إ"},
	{Code: "THB", Name: "Thai Baht", Flag: "🇹🇭", Symbol: "฿"},
	{Code: "TRY", Name: "Turkish Lira", Flag: "🇹🇷", Symbol: "₺"},
}

// Catalog is a read-only lookup of currencies by code.
type Catalog struct {
	list   []models.Currency
	byCode map[string]models.Currency
}

// New returns a catalog holding the default twenty currencies.
func New() *Catalog {
	return NewWithCurrencies(defaultCurrencies)
}

// NewWithCurrencies builds a catalog from the given currencies.
// Later entries with a duplicate code are ignored.
func NewWithCurrencies(currencies []models.Currency) *Catalog {
	c := &Catalog{
		list:   make([]models.Currency, 0, len(currencies)),
		byCode: make(map[string]models.Currency, len(currencies)),
	}
	for _, cur := range currencies {
		if _, ok := c.byCode[cur.Code]; ok {
			continue
		}
		c.byCode[cur.Code] = cur
		c.list = append(c.list, cur)
	}
	return c
}

// Lookup returns the currency for code and whether it exists.
func (c *Catalog) Lookup(code string) (models.Currency, bool) {
	cur, ok := c.byCode[code]
	return cur, ok
}

// List returns the currencies in catalog order.
func (c *Catalog) List() []models.Currency {
	out := make([]models.Currency, len(c.list))
	copy(out, c.list)
	return out
}
