package badge

import (
	"strings"
	"testing"
)

func TestSVG(t *testing.T) {
	b := New("0x4bEf0221d6F7Dd0C969fe46a4e9b339a84F52FDF", Stats{
		Transactions: 500_000_000,
		Volume:       2_500,
		DisplayName:  "<jesse>.base.eth",
	})

	out, err := SVG(b)
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	svg := string(out)

	for _, want := range []string{
		"<svg",
		"1B(ase)",
		"500.00M out of 1 Billion",
		"Total Volume: $2.50k",
		"&lt;jesse&gt;.base.eth",
		`stroke-dashoffset="141.3717"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Contains(svg, "<jesse>") {
		t.Error("display name not escaped")
	}
}

func TestSVG_PPMUnit(t *testing.T) {
	out, err := SVG(New("0xabc", Stats{Transactions: 42}))
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if !strings.Contains(string(out), ">ppm</tspan>") {
		t.Error("ppm unit not rendered")
	}
}
