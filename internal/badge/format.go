package badge

import (
	"fmt"
	"net/url"
	"strconv"

	"onebase/internal/constant"
)

// FormatNumber formats n with a B/M/k suffix and two decimals.
// e.g., 1500000000 -> "1.50B", 2500 -> "2.50k", 999 -> "999"
func FormatNumber(n float64) string {
	switch {
	case n >= 1e9:
		return strconv.FormatFloat(n/1e9, 'f', 2, 64) + "B"
	case n >= 1e6:
		return strconv.FormatFloat(n/1e6, 'f', 2, 64) + "M"
	case n >= 1e3:
		return strconv.FormatFloat(n/1e3, 'f', 2, 64) + "k"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}

// FormatCount is FormatNumber for transaction counts.
func FormatCount(n uint64) string {
	return FormatNumber(float64(n))
}

// ShortenAddress keeps the first 6 and last 4 characters of s.
func ShortenAddress(s string) string {
	r := []rune(s)
	if len(r) <= 10 {
		return s
	}
	return string(r[:6]) + "..." + string(r[len(r)-4:])
}

// ShareText is the pre-filled post text for a badge.
func ShareText(transactions, volume string) string {
	return fmt.Sprintf("Check out my %s contribution! %s transactions out of 1 Billion. Total volume: $%s",
		constant.BadgeTitle, transactions, volume)
}

// ShareURL builds the tweet intent link for a badge.
func ShareURL(transactions, volume string) string {
	q := url.Values{}
	q.Set("text", ShareText(transactions, volume))
	return constant.ShareIntent + "?" + q.Encode()
}
