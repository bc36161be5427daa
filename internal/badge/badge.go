// Package badge turns wallet statistics into the contribution badge: the
// milestone progress, the formatted figures, the share link and the SVG card.
package badge

// Stats is one consistent snapshot of a wallet's activity.
type Stats struct {
	Transactions uint64
	Volume       float64
	// DisplayName is the wallet's basename, empty when it has none.
	DisplayName string
}

// Badge holds everything needed to render or share a contribution badge.
type Badge struct {
	Name         string
	Stats        Stats
	Progress     ProgressReading
	Transactions string
	Volume       string
	ShareURL     string
}

// New builds the badge for stats. input is what the user typed; it is
// shortened and used as the name when the wallet has no display name.
func New(input string, stats Stats) Badge {
	name := stats.DisplayName
	if name == "" {
		name = ShortenAddress(input)
	}
	tx := FormatCount(stats.Transactions)
	vol := FormatNumber(stats.Volume)

	return Badge{
		Name:         name,
		Stats:        stats,
		Progress:     Progress(stats.Transactions),
		Transactions: tx,
		Volume:       vol,
		ShareURL:     ShareURL(tx, vol),
	}
}
