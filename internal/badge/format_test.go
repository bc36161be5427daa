package badge

import (
	"net/url"
	"strings"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1_500_000_000, "1.50B"},
		{2_500, "2.50k"},
		{999, "999"},
		{0, "0"},
		{12.5, "12.5"},
		{1_000, "1.00k"},
		{3_456_789, "3.46M"},
		{1_000_000_000, "1.00B"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestShortenAddress(t *testing.T) {
	addr := "0x4bEf0221d6F7Dd0C969fe46a4e9b339a84F52FDF"
	if got := ShortenAddress(addr); got != "0x4bEf...2FDF" {
		t.Errorf("ShortenAddress = %q", got)
	}
	if got := ShortenAddress("0x1234"); got != "0x1234" {
		t.Errorf("short input changed: %q", got)
	}
}

func TestShareURL(t *testing.T) {
	raw := ShareURL("2.50k", "1.20M")
	if !strings.HasPrefix(raw, "https://x.com/intent/tweet?") {
		t.Fatalf("unexpected intent url %q", raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse share url: %v", err)
	}
	want := "Check out my 1B(ase) contribution! 2.50k transactions out of 1 Billion. Total volume: $1.20M"
	if got := u.Query().Get("text"); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestNew_FallsBackToShortInput(t *testing.T) {
	b := New("0x4bEf0221d6F7Dd0C969fe46a4e9b339a84F52FDF", Stats{Transactions: 2_500, Volume: 1_500_000_000})
	if b.Name != "0x4bEf...2FDF" {
		t.Errorf("Name = %q", b.Name)
	}
	if b.Transactions != "2.50k" || b.Volume != "1.50B" {
		t.Errorf("formatted = %q / %q", b.Transactions, b.Volume)
	}

	named := New("jesse.base.eth", Stats{Transactions: 1, DisplayName: "jesse.base.eth"})
	if named.Name != "jesse.base.eth" {
		t.Errorf("Name = %q, want display name", named.Name)
	}
}
