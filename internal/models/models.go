package models

// Record is one historical data point for an area
type Record struct {
	Area   string  `json:"area"`
	Year   int     `json:"year"`
	Price  float64 `json:"price"`
	Demand float64 `json:"demand"`
}

// SeriesPoint is one chart point for an area, averaged per year
type SeriesPoint struct {
	Year   int     `json:"year"`
	Price  float64 `json:"price"`
	Demand float64 `json:"demand"`
}

// Intent is the interpreted purpose of a query
type Intent string

const (
	IntentCompare Intent = "compare"
	IntentTrend   Intent = "trend"
	IntentRank    Intent = "rank"
)

// AreaStats holds the per-area statistics the summary is built from
type AreaStats struct {
	Area            string   `json:"area"`
	LatestYear      int      `json:"latest_year"`
	PrevYear        int      `json:"prev_year"` // 0 when only one year of data exists
	AvgPrice        float64  `json:"avg_price"`
	AvgDemand       float64  `json:"avg_demand"`
	PriceChangePct  *float64 `json:"price_change_pct,omitempty"`
	DemandChangePct *float64 `json:"demand_change_pct,omitempty"`
	MinPrice        float64  `json:"min_price"`
	MaxPrice        float64  `json:"max_price"`
	Trend           string   `json:"trend"` // rising, falling, flat
}

// QueryResult is the /api/analyze response payload
type QueryResult struct {
	Summary   string                   `json:"summary"`
	ChartData map[string][]SeriesPoint `json:"chart_data"`
	TableData []map[string]interface{} `json:"table_data"`
}
