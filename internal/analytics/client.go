// Package analytics fetches wallet totals from the Moralis deep index API.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"onebase/internal/config"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const (
	statsPath         = "/wallets/:address/stats"
	profitabilityPath = "/wallets/:address/profitability/summary"
	maxErrorBody      = 512
)

var ErrMalformedResponse = errors.New("analytics: malformed response")

// Client is a Moralis API client bound to one network.
type Client struct {
	svc     httpc.Service
	baseURL string
	chain   string
}

func NewClient(c config.MoralisConf) *Client {
	cli := &http.Client{Timeout: c.Timeout}
	apiKey := c.ApiKey

	return &Client{
		svc: httpc.NewServiceWithClient("moralis", cli, func(r *http.Request) *http.Request {
			r.Header.Set("Accept", "application/json")
			r.Header.Set("X-API-Key", apiKey)
			return r
		}),
		baseURL: strings.TrimRight(c.ApiUrl, "/"),
		chain:   c.Chain,
	}
}

// TransactionCount returns transactions.total of the wallet stats.
func (c *Client) TransactionCount(ctx context.Context, address string) (uint64, error) {
	var resp statsResp
	if err := c.get(ctx, statsPath, address, &resp); err != nil {
		return 0, err
	}
	if resp.Transactions == nil || resp.Transactions.Total == nil {
		return 0, fmt.Errorf("%w: missing transactions.total", ErrMalformedResponse)
	}

	n, err := strconv.ParseUint(string(*resp.Transactions.Total), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: transactions.total %q", ErrMalformedResponse, *resp.Transactions.Total)
	}
	return n, nil
}

// TradeVolume returns total_trade_volume of the profitability summary.
func (c *Client) TradeVolume(ctx context.Context, address string) (float64, error) {
	var resp profitabilityResp
	if err := c.get(ctx, profitabilityPath, address, &resp); err != nil {
		return 0, err
	}
	if resp.TotalTradeVolume == nil {
		return 0, fmt.Errorf("%w: missing total_trade_volume", ErrMalformedResponse)
	}

	v, err := strconv.ParseFloat(string(*resp.TotalTradeVolume), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%w: total_trade_volume %q", ErrMalformedResponse, *resp.TotalTradeVolume)
	}
	return v, nil
}

func (c *Client) get(ctx context.Context, path, address string, v any) error {
	resp, err := c.svc.Do(ctx, http.MethodGet, c.baseURL+path, walletReq{
		Address: address,
		Chain:   c.chain,
	})
	if err != nil {
		return fmt.Errorf("analytics: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("analytics: GET %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("analytics: read %s: %w", path, err)
	}
	if err := jsonx.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
