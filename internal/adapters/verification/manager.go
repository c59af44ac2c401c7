package verification

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/usvp-token/usvp-deploy/internal/domain"
)

// DefaultPollInterval is how often checkverifystatus is polled
const DefaultPollInterval = 3 * time.Second

const (
	statusPending  = "pending in queue"
	statusVerified = "pass - verified"
)

// Service talks to Etherscan-compatible explorer APIs
type Service struct {
	client       *http.Client
	pollInterval time.Duration
	log          *slog.Logger
}

// NewService creates a new verification service
func NewService(log *slog.Logger) *Service {
	return &Service{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		pollInterval: DefaultPollInterval,
		log:          log.With("component", "Etherscan"),
	}
}

// SetPollInterval changes how often the verification status is checked
func (s *Service) SetPollInterval(d time.Duration) {
	s.pollInterval = d
}

// Endpoint identifies one explorer API
type Endpoint struct {
	APIURL  string
	APIKey  string
	ChainID uint64
}

// SubmitParams contains parameters for a standard-JSON verification request
type SubmitParams struct {
	Address         string
	ContractName    string // fully qualified, "<sourceName>:<name>"
	CompilerVersion string // "v0.8.22+commit.4fc1097e"
	StandardJSON    string
	ConstructorArgs string // ABI-encoded hex without 0x
}

// etherscanResponse is the envelope every Etherscan endpoint returns.
// Result is a string for most actions and an array for getsourcecode.
type etherscanResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func (r *etherscanResponse) resultString() string {
	var s string
	if err := json.Unmarshal(r.Result, &s); err == nil {
		return s
	}
	return string(r.Result)
}

// IsVerified reports whether the explorer already has source for address
func (s *Service) IsVerified(ctx context.Context, ep Endpoint, address string) (bool, error) {
	params := s.baseParams(ep, "getsourcecode")
	params.Set("address", address)

	resp, err := s.get(ctx, ep, params)
	if err != nil {
		return false, err
	}
	if resp.Status != "1" {
		return false, fmt.Errorf("getsourcecode failed: %s", resp.resultString())
	}

	var sources []struct {
		SourceCode   string `json:"SourceCode"`
		ContractName string `json:"ContractName"`
	}
	if err := json.Unmarshal(resp.Result, &sources); err != nil {
		return false, fmt.Errorf("failed to parse getsourcecode result: %w", err)
	}

	return len(sources) > 0 && sources[0].SourceCode != "", nil
}

// Submit sends the verification request and returns the GUID to poll
func (s *Service) Submit(ctx context.Context, ep Endpoint, p SubmitParams) (string, error) {
	data := s.baseParams(ep, "verifysourcecode")
	data.Set("contractaddress", p.Address)
	data.Set("sourceCode", p.StandardJSON)
	data.Set("codeformat", "solidity-standard-json-input")
	data.Set("contractname", p.ContractName)
	data.Set("compilerversion", p.CompilerVersion)
	if p.ConstructorArgs != "" {
		data.Set("constructorArguements", p.ConstructorArgs) // Note: Etherscan typo
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ep.APIURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.do(req)
	if err != nil {
		return "", fmt.Errorf("failed to submit verification: %w", err)
	}

	if resp.Status != "1" {
		return "", explorerError(resp.resultString())
	}

	guid := resp.resultString()
	s.log.Debug("verification submitted", "address", p.Address, "guid", guid)
	return guid, nil
}

// WaitForVerification polls checkverifystatus until the explorer reaches a verdict
func (s *Service) WaitForVerification(ctx context.Context, ep Endpoint, guid string) error {
	params := s.baseParams(ep, "checkverifystatus")
	params.Set("guid", guid)

	timer := time.NewTimer(s.pollInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		resp, err := s.get(ctx, ep, params)
		if err != nil {
			return err
		}

		result := resp.resultString()
		switch lower := strings.ToLower(result); {
		case strings.Contains(lower, statusPending):
			s.log.Debug("verification pending", "guid", guid)
			timer.Reset(s.pollInterval)
		case strings.Contains(lower, statusVerified):
			return nil
		default:
			return explorerError(result)
		}
	}
}

func (s *Service) baseParams(ep Endpoint, action string) url.Values {
	params := url.Values{}
	params.Set("apikey", ep.APIKey)
	params.Set("module", "contract")
	params.Set("action", action)
	if ep.ChainID != 0 {
		params.Set("chainid", strconv.FormatUint(ep.ChainID, 10))
	}
	return params
}

func (s *Service) get(ctx context.Context, ep Endpoint, params url.Values) (*etherscanResponse, error) {
	sep := "?"
	if strings.Contains(ep.APIURL, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ep.APIURL+sep+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	return s.do(req)
}

func (s *Service) do(req *http.Request) (*etherscanResponse, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("explorer returned HTTP %d", resp.StatusCode)
	}

	var result etherscanResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

// explorerError keeps the explorer message and tags already-verified replies
func explorerError(msg string) error {
	if strings.Contains(strings.ToLower(msg), "already verified") {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyVerified, msg)
	}
	return fmt.Errorf("%w: %s", domain.ErrVerificationFailed, msg)
}
