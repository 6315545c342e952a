package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/catalog"
	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv(t *testing.T) {
	for _, key := range []string{
		"APP_HOST", "APP_PORT", "APP_LOG_LEVEL", "APP_LOG_FORMAT",
		"API_URL", "API_TIMEOUT_SECOND",
	} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv(t)

	appHost, appPort, logLevel, logFormat, apiURL, apiTimeout, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "json", logFormat)
	assert.Equal(t, "http://localhost:8000", apiURL)
	assert.Equal(t, 0, apiTimeout)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv(t)
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_LOG_FORMAT", "console")
	t.Setenv("API_URL", "https://rates.example.com")
	t.Setenv("API_TIMEOUT_SECOND", "15")

	appHost, appPort, logLevel, logFormat, apiURL, apiTimeout, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", appHost)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, "debug", logLevel)
	assert.Equal(t, "console", logFormat)
	assert.Equal(t, "https://rates.example.com", apiURL)
	assert.Equal(t, 15, apiTimeout)
}

func TestParseConfig_EnvFile(t *testing.T) {
	resetEnv(t)

	// godotenv never overrides variables that exist, even empty ones
	require.NoError(t, os.Unsetenv("API_URL"))
	require.NoError(t, os.Unsetenv("APP_PORT"))
	t.Cleanup(func() {
		os.Unsetenv("API_URL")
		os.Unsetenv("APP_PORT")
	})

	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("API_URL=http://file.example.com\nAPP_PORT=7070\n"), 0o600))

	_, appPort, _, _, apiURL, _, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", appPort)
	assert.Equal(t, "http://file.example.com", apiURL)
}

func TestParseConfig_InvalidTimeout(t *testing.T) {
	for _, v := range []string{"soon", "-1"} {
		t.Run(v, func(t *testing.T) {
			resetEnv(t)
			t.Setenv("API_TIMEOUT_SECOND", v)

			_, _, _, _, _, _, err := parseConfig("nonexistent.env")
			assert.Error(t, err)
		})
	}
}

// fakeConversionService mimics the remote conversion API.
func fakeConversionService(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/convert", func(w http.ResponseWriter, r *http.Request) {
		var req models.ConvertRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.ToCurrency != "INR" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"detail": "Unsupported currency pair"}`)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"from_currency":    req.FromCurrency,
			"to_currency":      req.ToCurrency,
			"amount":           req.Amount,
			"exchange_rate":    83.12,
			"converted_amount": req.Amount * 83.12,
			"timestamp":        "1718000000",
			"success":          true,
		})
	})
	mux.HandleFunc("/currencies", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"supported_codes": [["USD", "United States Dollar"], ["INR", "Indian Rupee"]]}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, apiURL string) *httptest.Server {
	t.Helper()
	facade := facades.NewExchangeRatesHTTPFacade(apiURL, 2*time.Second)
	currencies := catalog.New()
	converter := services.NewConverterService(facade, currencies)

	app := httptest.NewServer(newRouter(converter, currencies, facade))
	t.Cleanup(app.Close)
	return app
}

func doJSON(t *testing.T, method, url, body string) models.ConverterState {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state models.ConverterState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	return state
}

func TestRouter_ConvertFlow(t *testing.T) {
	upstream := fakeConversionService(t)
	app := newTestApp(t, upstream.URL)
	api := app.URL + "/api/v1"

	state := doJSON(t, http.MethodGet, api+"/state", "")
	assert.Equal(t, "1000", state.Amount)
	assert.Equal(t, "USD", state.From)
	assert.Equal(t, "INR", state.To)
	assert.Equal(t, models.StatusIdle, state.Status)

	state = doJSON(t, http.MethodPost, api+"/convert", "")
	require.NotNil(t, state.Display)
	assert.Equal(t, "₹83,120.00", state.Display.Converted)
	assert.Equal(t, "1 USD = 83.1200 INR", state.Display.Rate)
	assert.Empty(t, state.Error)

	state = doJSON(t, http.MethodPut, api+"/amount", `{"amount": "-3"}`)
	assert.Nil(t, state.Result)

	state = doJSON(t, http.MethodPost, api+"/convert", "")
	assert.Nil(t, state.Result)
	assert.Empty(t, state.Error)
	assert.Equal(t, models.StatusIdle, state.Status)

	doJSON(t, http.MethodPut, api+"/amount", `{"amount": "10"}`)
	state = doJSON(t, http.MethodPut, api+"/to", `{"code": "EUR"}`)
	assert.Equal(t, "EUR", state.To)

	state = doJSON(t, http.MethodPost, api+"/convert", "")
	assert.Equal(t, "Unsupported currency pair", state.Error)
	assert.Nil(t, state.Result)
	assert.Equal(t, models.StatusFailed, state.Status)

	state = doJSON(t, http.MethodPost, api+"/swap", "")
	assert.Equal(t, "EUR", state.From)
	assert.Equal(t, "USD", state.To)
	assert.Equal(t, "10", state.Amount)
}

func TestRouter_UpstreamUnreachable(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	app := newTestApp(t, deadURL)

	state := doJSON(t, http.MethodPost, app.URL+"/api/v1/convert", "")
	assert.Equal(t, facades.FallbackErrorMessage, state.Error)
	assert.Nil(t, state.Result)

	resp, err := http.Get(app.URL + "/api/v1/currencies")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got models.CurrenciesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got.Currencies, 20)
	assert.Empty(t, got.SupportedCodes)
}

func TestRouter_Currencies(t *testing.T) {
	upstream := fakeConversionService(t)
	app := newTestApp(t, upstream.URL)

	resp, err := http.Get(app.URL + "/api/v1/currencies")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got models.CurrenciesResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Len(t, got.Currencies, 20)
	assert.Equal(t, [][]string{{"USD", "United States Dollar"}, {"INR", "Indian Rupee"}}, got.SupportedCodes)
}

func TestRouter_PageFlow(t *testing.T) {
	upstream := fakeConversionService(t)
	app := newTestApp(t, upstream.URL)

	form := url.Values{"amount": {"1000"}, "from": {"USD"}, "to": {"INR"}, "action": {"convert"}}
	resp, err := http.PostForm(app.URL+"/", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	// the client follows the 303 back to the page
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "₹83,120.00")
	assert.Contains(t, string(body), "1 USD = 83.1200 INR")
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:1")

	resp, err := http.Get(app.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_CORSPreflight(t *testing.T) {
	app := newTestApp(t, "http://127.0.0.1:1")

	req, err := http.NewRequest(http.MethodOptions, app.URL+"/api/v1/convert", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, "127.0.0.1", "0", "error", "json", "http://127.0.0.1:1", 1)
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	}
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := run(context.Background(), "127.0.0.1", "0", "loud", "json", "http://127.0.0.1:1", 0)
	assert.Error(t, err)
}
