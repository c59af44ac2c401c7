package gasreport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/usvp-token/usvp-deploy/internal/domain/config"
	"github.com/usvp-token/usvp-deploy/internal/domain/models"
	"github.com/usvp-token/usvp-deploy/internal/usecase"
)

// DefaultQuoteURL is the CoinMarketCap latest quotes endpoint
const DefaultQuoteURL = "https://pro-api.coinmarketcap.com/v1/cryptocurrency/quotes/latest"

const (
	SourceAPI     = "api"
	SourceReceipt = "receipt"
)

// Reporter prices the deployment transaction
type Reporter struct {
	client   *http.Client
	cfg      config.GasReporterConfig
	quoteURL string
	log      *slog.Logger
}

// NewReporter creates a new gas reporter
func NewReporter(cfg *config.RuntimeConfig, log *slog.Logger) *Reporter {
	return &Reporter{
		client:   &http.Client{Timeout: 15 * time.Second},
		cfg:      cfg.GasReporter,
		quoteURL: DefaultQuoteURL,
		log:      log.With("component", "GasReporter"),
	}
}

// SetQuoteURL points the reporter at another quotes endpoint
func (r *Reporter) SetQuoteURL(u string) {
	r.quoteURL = u
}

// Report builds the gas report for receipt. Price lookups that fail leave
// their columns out instead of failing the report.
func (r *Reporter) Report(ctx context.Context, network *config.Network, receipt *types.Receipt) (*models.GasReport, error) {
	if receipt == nil {
		return nil, fmt.Errorf("no receipt to report on")
	}

	report := &models.GasReport{
		GasUsed:  receipt.GasUsed,
		Token:    r.cfg.Token,
		Currency: r.cfg.Currency,
	}

	gasPrice, err := r.fetchGasPrice(ctx)
	if err != nil {
		r.log.Debug("gas price API unavailable, using receipt price", "error", err)
		gasPrice = receipt.EffectiveGasPrice
		report.GasPriceSource = SourceReceipt
	} else {
		report.GasPriceSource = SourceAPI
	}
	if gasPrice == nil {
		gasPrice = new(big.Int)
	}

	cost := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(receipt.GasUsed))
	report.GasPriceGwei = decimal.NewFromBigInt(gasPrice, -9)
	report.CostNative = decimal.NewFromBigInt(cost, -18)

	if r.cfg.CoinMarketCapKey == "" {
		return report, nil
	}

	price, err := r.fetchQuote(ctx)
	if err != nil {
		r.log.Warn("token quote unavailable", "token", r.cfg.Token, "error", err)
		return report, nil
	}
	fiat := report.CostNative.Mul(price)
	report.TokenPrice = &price
	report.CostFiat = &fiat

	r.log.Debug("gas report", "network", network.Name, "gas_used", report.GasUsed, "cost", report.CostNative.String())
	return report, nil
}

// fetchGasPrice queries an eth_gasPrice proxy endpoint, result in wei
func (r *Reporter) fetchGasPrice(ctx context.Context) (*big.Int, error) {
	if r.cfg.GasPriceAPI == "" {
		return nil, fmt.Errorf("no gas price API configured")
	}

	var resp struct {
		Result string `json:"result"`
	}
	if err := r.getJSON(ctx, r.cfg.GasPriceAPI, nil, &resp); err != nil {
		return nil, err
	}

	price, err := hexutil.DecodeBig(resp.Result)
	if err != nil {
		return nil, fmt.Errorf("invalid gas price %q: %w", resp.Result, err)
	}
	return price, nil
}

// fetchQuote returns the price of one token in the configured currency
func (r *Reporter) fetchQuote(ctx context.Context) (decimal.Decimal, error) {
	symbol := strings.ToUpper(r.cfg.Token)
	currency := strings.ToUpper(r.cfg.Currency)

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("convert", currency)

	var resp struct {
		Status struct {
			ErrorCode    int    `json:"error_code"`
			ErrorMessage string `json:"error_message"`
		} `json:"status"`
		Data map[string]struct {
			Quote map[string]struct {
				Price decimal.Decimal `json:"price"`
			} `json:"quote"`
		} `json:"data"`
	}
	headers := map[string]string{"X-CMC_PRO_API_KEY": r.cfg.CoinMarketCapKey}
	if err := r.getJSON(ctx, r.quoteURL+"?"+q.Encode(), headers, &resp); err != nil {
		return decimal.Zero, err
	}
	if resp.Status.ErrorCode != 0 {
		return decimal.Zero, fmt.Errorf("coinmarketcap error %d: %s", resp.Status.ErrorCode, resp.Status.ErrorMessage)
	}

	data, ok := resp.Data[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("no quote for %s", symbol)
	}
	quote, ok := data.Quote[currency]
	if !ok {
		return decimal.Zero, fmt.Errorf("no %s quote for %s", currency, symbol)
	}
	return quote.Price, nil
}

func (r *Reporter) getJSON(ctx context.Context, endpoint string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d: %s", req.URL.Host, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", req.URL.Host, err)
	}
	return nil
}

// Ensure the reporter implements the interface
var _ usecase.GasReporter = (*Reporter)(nil)
