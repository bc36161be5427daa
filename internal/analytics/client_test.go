package analytics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"onebase/internal/config"
)

const testWallet = "0x4bEf0221d6F7Dd0C969fe46a4e9b339a84F52FDF"

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewClient(config.MoralisConf{
		ApiUrl:  srv.URL + "/api/v2.2/",
		ApiKey:  "test-key",
		Chain:   "base",
		Timeout: 5 * time.Second,
	})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestTransactionCount(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2.2/wallets/"+testWallet+"/stats" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("chain"); got != "base" {
			t.Errorf("chain = %q", got)
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("X-API-Key = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		writeJSON(w, http.StatusOK, `{"nfts":"3","transactions":{"total":"4521"},"token_transfers":{"total":"17"}}`)
	})

	n, err := c.TransactionCount(context.Background(), testWallet)
	if err != nil {
		t.Fatalf("TransactionCount: %v", err)
	}
	if n != 4521 {
		t.Errorf("n = %d, want 4521", n)
	}
}

func TestTradeVolume(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v2.2/wallets/"+testWallet+"/profitability/summary" {
			t.Errorf("path = %s", r.URL.Path)
		}
		writeJSON(w, http.StatusOK, `{"total_count_of_trades":12,"total_trade_volume":"1534.25","total_realized_profit_usd":"8.1"}`)
	})

	v, err := c.TradeVolume(context.Background(), testWallet)
	if err != nil {
		t.Fatalf("TradeVolume: %v", err)
	}
	if v != 1534.25 {
		t.Errorf("v = %v, want 1534.25", v)
	}
}

func TestTradeVolume_NumericField(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"total_trade_volume":42.5}`)
	})

	v, err := c.TradeVolume(context.Background(), testWallet)
	if err != nil {
		t.Fatalf("TradeVolume: %v", err)
	}
	if v != 42.5 {
		t.Errorf("v = %v, want 42.5", v)
	}
}

func TestTransactionCount_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing transactions", `{"nfts":"0"}`},
		{"missing total", `{"transactions":{}}`},
		{"null total", `{"transactions":{"total":null}}`},
		{"not a number", `{"transactions":{"total":"many"}}`},
		{"not json", `<html>oops</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})
			_, err := c.TransactionCount(context.Background(), testWallet)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("err = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestTradeVolume_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing", `{"total_count_of_trades":3}`},
		{"nan", `{"total_trade_volume":"NaN"}`},
		{"infinity", `{"total_trade_volume":"Infinity"}`},
		{"negative infinity", `{"total_trade_volume":"-Inf"}`},
		{"negative", `{"total_trade_volume":"-12.5"}`},
		{"not a number", `{"total_trade_volume":"lots"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, tt.body)
			})
			_, err := c.TradeVolume(context.Background(), testWallet)
			if !errors.Is(err, ErrMalformedResponse) {
				t.Errorf("err = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestGet_NonOKStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid key"}`)
	})

	if _, err := c.TransactionCount(context.Background(), testWallet); err == nil {
		t.Error("TransactionCount: expected error on 401")
	}
	if _, err := c.TradeVolume(context.Background(), testWallet); err == nil {
		t.Error("TradeVolume: expected error on 401")
	}
}
