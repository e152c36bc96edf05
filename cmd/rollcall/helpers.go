package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"rollcall/internal/scrape"
)

// pageMarkup resolves the markup a command operates on: the contents of
// --file when given, otherwise a live fetch of ref.
func (c *commandContext) pageMarkup(ctx context.Context, ref, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read markup file: %w", err)
		}
		return string(data), nil
	}
	if ref == "" {
		return "", fmt.Errorf("a page reference or --file is required")
	}
	client, err := c.fetcher()
	if err != nil {
		return "", err
	}
	return client.SeriesPage(ctx, ref)
}

func formatNumber(ep scrape.Episode) string {
	if !ep.HasNumber {
		return "-"
	}
	return strconv.Itoa(ep.Number)
}

func formatSeason(ep scrape.Episode) string {
	if !ep.HasSeason {
		return "-"
	}
	return strconv.Itoa(ep.Season)
}

func formatDuration(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// truncate shortens s to at most max runes, appending an ellipsis. Cutting at
// a rune boundary keeps accented titles and notes valid UTF-8.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
