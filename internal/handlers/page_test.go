package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/stretchr/testify/assert"
)

var pageCurrencies = []models.Currency{
	{Code: "USD", Name: "US Dollar", Flag: "🇺🇸", Symbol: "$"},
	{Code: "INR", Name: "Indian Rupee", Flag: "🇮🇳", Symbol: "₹"},
}

func TestPageHandler(t *testing.T) {
	tests := []struct {
		name        string
		state       models.ConverterState
		contains    []string
		notContains []string
	}{
		{
			name:  "result",
			state: successState,
			contains: []string{
				"₹83,120.00",
				"1 USD = 83.1200 INR",
				`<option value="USD" selected>🇺🇸 USD — US Dollar</option>`,
				`<option value="INR" selected>🇮🇳 INR — Indian Rupee</option>`,
				`value="1000"`,
				"Convert",
			},
			notContains: []string{`class="error"`, "Converting..."},
		},
		{
			name: "error",
			state: models.ConverterState{
				Amount: "1000", From: "USD", To: "INR",
				Status: models.StatusFailed, Error: "Unsupported currency pair",
			},
			contains:    []string{`<div class="error">Unsupported currency pair</div>`},
			notContains: []string{`class="result"`},
		},
		{
			name: "loading hides result and disables convert",
			state: models.ConverterState{
				Amount: "1000", From: "USD", To: "INR", Loading: true,
				Status: models.StatusLoading, Result: successState.Result, Display: successState.Display,
			},
			contains:    []string{"Converting...", " disabled"},
			notContains: []string{`class="result"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			conv := NewMockConverter(ctrl)
			currencies := NewMockCurrencyLister(ctrl)
			conv.EXPECT().State().Return(tt.state)
			currencies.EXPECT().List().Return(pageCurrencies)

			rec := httptest.NewRecorder()
			NewPageHandler(conv, currencies).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

			body := rec.Body.String()
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestPageActionHandler(t *testing.T) {
	current := models.ConverterState{Amount: "1000", From: "USD", To: "INR"}

	tests := []struct {
		name  string
		form  url.Values
		setup func(conv *MockConverter)
	}{
		{
			name: "convert with unchanged fields",
			form: url.Values{"amount": {"1000"}, "from": {"USD"}, "to": {"INR"}, "action": {"convert"}},
			setup: func(conv *MockConverter) {
				conv.EXPECT().Convert(gomock.Any()).Return(successState)
			},
		},
		{
			name: "changed fields are applied before convert",
			form: url.Values{"amount": {"50"}, "from": {"EUR"}, "to": {"GBP"}, "action": {"convert"}},
			setup: func(conv *MockConverter) {
				gomock.InOrder(
					conv.EXPECT().SetAmount("50"),
					conv.EXPECT().SetFrom("EUR"),
					conv.EXPECT().SetTo("GBP"),
					conv.EXPECT().Convert(gomock.Any()),
				)
			},
		},
		{
			name: "swap",
			form: url.Values{"amount": {"1000"}, "from": {"USD"}, "to": {"INR"}, "action": {"swap"}},
			setup: func(conv *MockConverter) {
				conv.EXPECT().Swap()
			},
		},
		{
			name: "edit only",
			form: url.Values{"amount": {""}},
			setup: func(conv *MockConverter) {
				conv.EXPECT().SetAmount("")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			conv := NewMockConverter(ctrl)
			conv.EXPECT().State().Return(current)
			tt.setup(conv)

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			NewPageActionHandler(conv).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get("Location"))
		})
	}
}
