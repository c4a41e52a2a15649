package summary

import (
	"context"
	"fmt"
	"strings"

	"realestate-analyzer/internal/models"
)

// Generator produces a short natural-language description of an analysis.
// Implementations may fail; callers must fall back to Template on error.
type Generator interface {
	Generate(ctx context.Context, intent models.Intent, stats []models.AreaStats) (string, error)
}

// Describe runs the generator with the templated fallback. It never returns
// an empty summary for non-empty stats: when gen is nil or errors out, the
// deterministic local template is used instead.
func Describe(ctx context.Context, gen Generator, intent models.Intent, stats []models.AreaStats) string {
	base := Template(intent, stats)
	if gen == nil {
		return base
	}
	text, err := gen.Generate(ctx, intent, stats)
	if err != nil || strings.TrimSpace(text) == "" {
		return base
	}
	return strings.TrimSpace(text)
}

// Template builds the deterministic local summary from per-area statistics.
func Template(intent models.Intent, stats []models.AreaStats) string {
	if len(stats) == 0 {
		return "No data available for the requested areas."
	}

	parts := make([]string, 0, len(stats))
	for _, st := range stats {
		var b strings.Builder
		fmt.Fprintf(&b, "Analysis for %s (%d):", st.Area, st.LatestYear)
		fmt.Fprintf(&b, " avg flat price %.2f", st.AvgPrice)
		if st.PriceChangePct != nil {
			fmt.Fprintf(&b, " (%s %.1f%% vs %d)", direction(*st.PriceChangePct), abs(*st.PriceChangePct), st.PrevYear)
		}
		fmt.Fprintf(&b, ", avg units sold %.0f", st.AvgDemand)
		if st.DemandChangePct != nil {
			fmt.Fprintf(&b, " (%s %.1f%% vs %d)", direction(*st.DemandChangePct), abs(*st.DemandChangePct), st.PrevYear)
		}
		fmt.Fprintf(&b, "; prices ranged %.2f-%.2f and the overall trend is %s.", st.MinPrice, st.MaxPrice, st.Trend)
		parts = append(parts, b.String())
	}

	if intent == models.IntentRank && len(stats) > 1 {
		top := stats[0]
		for _, st := range stats[1:] {
			if st.AvgPrice > top.AvgPrice {
				top = st
			}
		}
		parts = append(parts, fmt.Sprintf("%s has the highest average price among the matched areas.", top.Area))
	}

	return strings.Join(parts, " ")
}

func direction(pct float64) string {
	if pct > 0 {
		return "up"
	}
	return "down"
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
