package models

// EndpointStats are the derived statistics of one endpoint. CountPercent and
// TimePercent are relative to the grand totals over all endpoints of the run.
type EndpointStats struct {
	Endpoint     string
	TimeSum      float64
	TimeMax      float64
	TimeAvg      float64
	TimeMedian   float64
	Count        int64
	CountPercent float64
	TimePercent  float64
}

// ReportEntry is the display copy of EndpointStats, rounded to 3 decimals.
// JSON keys match the ones the report template's table script reads.
//
// Example JSON:
//
//	{
//	  "url": "/api/v2/banner/25019354",
//	  "count": 2767,
//	  "count_perc": 0.106,
//	  "time_sum": 1142.939,
//	  "time_perc": 0.863,
//	  "time_avg": 0.413,
//	  "time_max": 9.843,
//	  "time_med": 0.072
//	}
type ReportEntry struct {
	URL          string  `json:"url"`
	Count        int64   `json:"count"`
	CountPercent float64 `json:"count_perc"`
	TimeSum      float64 `json:"time_sum"`
	TimePercent  float64 `json:"time_perc"`
	TimeAvg      float64 `json:"time_avg"`
	TimeMax      float64 `json:"time_max"`
	TimeMedian   float64 `json:"time_med"`
}
