package gasreport

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
)

var bsc = &config.Network{Name: "bsc", ChainID: 56}

func newTestReporter(gasAPI, quoteURL, cmcKey string) *Reporter {
	cfg := &config.RuntimeConfig{GasReporter: config.GasReporterConfig{
		Enabled:          true,
		Currency:         "USD",
		Token:            "BNB",
		CoinMarketCapKey: cmcKey,
		GasPriceAPI:      gasAPI,
	}}
	r := NewReporter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if quoteURL != "" {
		r.SetQuoteURL(quoteURL)
	}
	return r
}

func receipt(gasUsed uint64, priceWei int64) *types.Receipt {
	return &types.Receipt{GasUsed: gasUsed, EffectiveGasPrice: big.NewInt(priceWei)}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestReporter(t *testing.T) {
	ctx := context.Background()

	gasAPI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":73,"result":"0x12a05f200"}`)
	}))
	defer gasAPI.Close()

	var gotKey, gotSymbol, gotConvert string
	quotes := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-CMC_PRO_API_KEY")
		gotSymbol = r.URL.Query().Get("symbol")
		gotConvert = r.URL.Query().Get("convert")
		_, _ = io.WriteString(w, `{"status":{"error_code":0},"data":{"BNB":{"quote":{"USD":{"price":300.5}}}}}`)
	}))
	defer quotes.Close()

	t.Run("api price with fiat quote", func(t *testing.T) {
		r := newTestReporter(gasAPI.URL, quotes.URL, "cmc-key")

		report, err := r.Report(ctx, bsc, receipt(1_000_000, 1))
		require.NoError(t, err)

		assert.Equal(t, uint64(1_000_000), report.GasUsed)
		assert.Equal(t, SourceAPI, report.GasPriceSource)
		assertDecimal(t, "5", report.GasPriceGwei)
		assertDecimal(t, "0.005", report.CostNative)
		require.True(t, report.HasFiat())
		assertDecimal(t, "300.5", *report.TokenPrice)
		assertDecimal(t, "1.5025", *report.CostFiat)
		assert.Equal(t, "BNB", report.Token)
		assert.Equal(t, "USD", report.Currency)

		assert.Equal(t, "cmc-key", gotKey)
		assert.Equal(t, "BNB", gotSymbol)
		assert.Equal(t, "USD", gotConvert)
	})

	t.Run("no key means no fiat", func(t *testing.T) {
		r := newTestReporter(gasAPI.URL, quotes.URL, "")

		report, err := r.Report(ctx, bsc, receipt(21_000, 1))
		require.NoError(t, err)
		assert.False(t, report.HasFiat())
		assertDecimal(t, "0.000105", report.CostNative)
	})

	t.Run("falls back to receipt price", func(t *testing.T) {
		down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer down.Close()

		r := newTestReporter(down.URL, "", "")
		report, err := r.Report(ctx, bsc, receipt(2_000_000, 3_000_000_000))
		require.NoError(t, err)
		assert.Equal(t, SourceReceipt, report.GasPriceSource)
		assertDecimal(t, "3", report.GasPriceGwei)
		assertDecimal(t, "0.006", report.CostNative)
	})

	t.Run("garbage gas price falls back", func(t *testing.T) {
		bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"status":"0","message":"NOTOK","result":"Invalid API Key"}`)
		}))
		defer bad.Close()

		r := newTestReporter(bad.URL, "", "")
		report, err := r.Report(ctx, bsc, receipt(100, 10))
		require.NoError(t, err)
		assert.Equal(t, SourceReceipt, report.GasPriceSource)
	})

	t.Run("quote failure keeps native cost", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"status":{"error_code":1001,"error_message":"This API Key is invalid."}}`)
		}))
		defer failing.Close()

		r := newTestReporter(gasAPI.URL, failing.URL, "bad-key")
		report, err := r.Report(ctx, bsc, receipt(1_000_000, 1))
		require.NoError(t, err)
		assert.False(t, report.HasFiat())
		assertDecimal(t, "0.005", report.CostNative)
	})

	t.Run("missing receipt", func(t *testing.T) {
		r := newTestReporter(gasAPI.URL, "", "")
		_, err := r.Report(ctx, bsc, nil)
		assert.Error(t, err)
	})
}
