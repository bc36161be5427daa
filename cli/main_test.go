package main

import (
	"strings"
	"testing"

	"onebase/internal/badge"

	"github.com/charmbracelet/lipgloss"
)

func TestFillFraction(t *testing.T) {
	tests := []struct {
		tx   uint64
		want float64
	}{
		{0, 0},
		{500_000_000, 0.5},
		{1_000_000_000, 1},
	}
	for _, tt := range tests {
		got := fillFraction(badge.Progress(tt.tx))
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("fillFraction(%d) = %v, want %v", tt.tx, got, tt.want)
		}
	}
}

func TestProgressBar_Width(t *testing.T) {
	c := lipgloss.Color("#0052FF")
	for _, pct := range []float64{-1, 0, 0.0001, 0.5, 1, 3} {
		bar := progressBar(pct, 20, c)
		cells := strings.Count(bar, "█") + strings.Count(bar, "░")
		if cells != 20 {
			t.Errorf("progressBar(%v) has %d cells, want 20", pct, cells)
		}
	}
	if strings.Count(progressBar(0.0001, 20, c), "█") != 1 {
		t.Error("tiny progress should show one cell")
	}
}
