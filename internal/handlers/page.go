package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:embed templates/converter.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/converter.html"))

type pageData struct {
	State      models.ConverterState
	Currencies []models.Currency
}

// NewPageHandler renders the converter page.
func NewPageHandler(conv Converter, currencies CurrencyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		err := pageTemplate.Execute(&buf, pageData{
			State:      conv.State(),
			Currencies: currencies.List(),
		})
		if err != nil {
			logger.Log.Errorw("failed to render page", "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

// NewPageActionHandler applies a submitted converter form and redirects back to the page.
// Fields that differ from the current state are applied as edits first,
// then the requested action ("convert" or "swap") runs.
func NewPageActionHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		state := conv.State()
		if v, ok := formValue(r, "amount"); ok && v != state.Amount {
			conv.SetAmount(v)
		}
		if v, ok := formValue(r, "from"); ok && v != "" && v != state.From {
			conv.SetFrom(v)
		}
		if v, ok := formValue(r, "to"); ok && v != "" && v != state.To {
			conv.SetTo(v)
		}

		switch r.PostForm.Get("action") {
		case "convert":
			conv.Convert(r.Context())
		case "swap":
			conv.Swap()
		}

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func formValue(r *http.Request, key string) (string, bool) {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
