package analyzer

import (
	"errors"
	"sort"

	"realestate-analyzer/internal/dataset"
	"realestate-analyzer/internal/models"
)

// ErrEmptyResult means every matched area had zero records.
var ErrEmptyResult = errors.New("no data found for the matched areas")

// Aggregate filters the store by the matched areas and shapes the chart
// series and the flat table. For each area the series holds one point per
// year, averaged when several records share a year, sorted year ascending.
// The table holds one row per raw record in area-then-year order.
//
// Identical inputs always produce identical output ordering. Areas with no
// records are omitted from the chart; when all areas are empty it fails.
func Aggregate(areas []string, store *dataset.Store) (map[string][]models.SeriesPoint, []map[string]interface{}, error) {
	chart := make(map[string][]models.SeriesPoint)
	var table []map[string]interface{}

	for _, area := range areas {
		records := store.ForArea(area)
		if len(records) == 0 {
			continue
		}

		chart[area] = buildSeries(records)

		sorted := make([]models.Record, len(records))
		copy(sorted, records)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Year < sorted[j].Year
		})
		for _, r := range sorted {
			table = append(table, map[string]interface{}{
				"area":   r.Area,
				"year":   r.Year,
				"price":  r.Price,
				"demand": r.Demand,
			})
		}
	}

	if len(chart) == 0 {
		return nil, nil, ErrEmptyResult
	}
	return chart, table, nil
}

func buildSeries(records []models.Record) []models.SeriesPoint {
	type acc struct {
		price, demand float64
		n             int
	}
	byYear := make(map[int]*acc)
	var years []int
	for _, r := range records {
		a, ok := byYear[r.Year]
		if !ok {
			a = &acc{}
			byYear[r.Year] = a
			years = append(years, r.Year)
		}
		a.price += r.Price
		a.demand += r.Demand
		a.n++
	}
	sort.Ints(years)

	series := make([]models.SeriesPoint, 0, len(years))
	for _, y := range years {
		a := byYear[y]
		series = append(series, models.SeriesPoint{
			Year:   y,
			Price:  a.price / float64(a.n),
			Demand: a.demand / float64(a.n),
		})
	}
	return series
}

// Stats derives the per-area numbers the summary is written from.
// Areas are reported in the order of the input map's series, one entry per
// charted area, ordered to match the matched-area order given.
func Stats(areas []string, chart map[string][]models.SeriesPoint) []models.AreaStats {
	var stats []models.AreaStats
	for _, area := range areas {
		series, ok := chart[area]
		if !ok || len(series) == 0 {
			continue
		}

		latest := series[len(series)-1]
		st := models.AreaStats{
			Area:       area,
			LatestYear: latest.Year,
			AvgPrice:   latest.Price,
			AvgDemand:  latest.Demand,
			MinPrice:   series[0].Price,
			MaxPrice:   series[0].Price,
		}
		for _, p := range series {
			if p.Price < st.MinPrice {
				st.MinPrice = p.Price
			}
			if p.Price > st.MaxPrice {
				st.MaxPrice = p.Price
			}
		}

		if len(series) > 1 {
			prev := series[len(series)-2]
			st.PrevYear = prev.Year
			st.PriceChangePct = pctChange(latest.Price, prev.Price)
			st.DemandChangePct = pctChange(latest.Demand, prev.Demand)
		}

		st.Trend = trendDirection(series)
		stats = append(stats, st)
	}
	return stats
}

// pctChange returns nil when the base is zero.
func pctChange(newVal, oldVal float64) *float64 {
	if oldVal == 0 {
		return nil
	}
	pct := (newVal - oldVal) / oldVal * 100.0
	return &pct
}

func trendDirection(series []models.SeriesPoint) string {
	if len(series) < 2 {
		return "flat"
	}
	first, last := series[0].Price, series[len(series)-1].Price
	switch {
	case last > first:
		return "rising"
	case last < first:
		return "falling"
	default:
		return "flat"
	}
}
