package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"onebase/internal/badge"
	"onebase/internal/constant"
	"onebase/internal/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

var (
	flagServer   string
	flagJSON     bool
	flagDownload string
	flagTimeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "onebase-cli <address|basename>",
	Short: "Contribution to 1B(ase) badge",
	Long:  "Look up a Base wallet or basename and show how far it is toward one billion transactions.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBadge,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagServer, "server", "s", "http://localhost:8888", "onebase server address")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the raw badge JSON")
	rootCmd.Flags().StringVarP(&flagDownload, "download", "o", "", "Also save the badge PNG to this path")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", 60*time.Second, "Request timeout")
}

func runBadge(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	server := strings.TrimRight(flagServer, "/")
	resp, err := httpc.Do(ctx, http.MethodPost, server+"/api/badge", types.BadgeReq{Input: args[0]})
	if err != nil {
		return fmt.Errorf("request badge: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read badge: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("no badge for %s: %s", args[0], strings.TrimSpace(string(body)))
	}

	if flagJSON {
		fmt.Fprintln(cmd.OutOrStdout(), string(body))
	} else {
		var b types.BadgeResp
		if err := jsonx.Unmarshal(body, &b); err != nil {
			return fmt.Errorf("decode badge: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderCard(&b, 32))
	}

	if flagDownload != "" {
		return download(ctx, server, args[0], flagDownload)
	}
	return nil
}

func download(ctx context.Context, server, input, path string) error {
	resp, err := httpc.Do(ctx, http.MethodGet, server+"/api/badge/image", types.BadgeQuery{Input: input})
	if err != nil {
		return fmt.Errorf("request image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request image: status %d", resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	fmt.Fprintf(os.Stderr, "  Saved %s\n", path)
	return nil
}

// renderCard draws the badge for the terminal; width is the bar width.
func renderCard(b *types.BadgeResp, width int) string {
	brand := lipgloss.Color("#0052FF")
	title := lipgloss.NewStyle().Foreground(brand).Bold(true)
	text := lipgloss.NewStyle().Foreground(brand)
	dim := lipgloss.NewStyle().Faint(true)

	lines := []string{
		title.Render(constant.BadgeTitle),
		"",
		progressBar(fillFraction(b.Progress), width, brand) + " " + title.Render(b.Progress.String()),
		text.Render(b.Transactions + " out of 1 Billion"),
		"",
		title.Render(b.Name),
		text.Render("Total Transactions: " + b.Transactions),
		text.Render("Total Volume: $" + b.Volume),
		"",
		dim.Render(b.ShareUrl),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(brand).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

// fillFraction recovers the indicator fill from the stroke offset.
func fillFraction(p badge.ProgressReading) float64 {
	return 1 - p.StrokeOffset/badge.Circumference
}

func progressBar(pct float64, width int, color lipgloss.Color) string {
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	// 小于一格时仍显示一格
	if filled == 0 && pct > 0 {
		filled = 1
	}

	filledStyle := lipgloss.NewStyle().Foreground(color)
	emptyStyle := lipgloss.NewStyle().Faint(true)
	return filledStyle.Render(strings.Repeat("█", filled)) + emptyStyle.Render(strings.Repeat("░", width-filled))
}
