package analytics

import (
	"bytes"
	"fmt"
)

// decimal accepts a JSON number or a JSON string holding a number, since the
// API returns totals as strings on some endpoints and numbers on others.
type decimal string

func (d *decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("analytics: null value")
	}
	if len(b) > 1 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	*d = decimal(b)
	return nil
}

type total struct {
	Total *decimal `json:"total"`
}

// statsResp is the body of GET /wallets/:address/stats.
type statsResp struct {
	Transactions *total `json:"transactions"`
}

// profitabilityResp is the body of GET /wallets/:address/profitability/summary.
type profitabilityResp struct {
	TotalTradeVolume *decimal `json:"total_trade_volume"`
}

type walletReq struct {
	Address string `path:"address"`
	Chain   string `form:"chain"`
}
