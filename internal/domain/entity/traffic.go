package entity

import "time"

// TotalLabel is the label used for the final totals row of a report.
const TotalLabel = "总计"

// Datapoint is one joined CloudWatch sample: the per-period averages of
// NetworkIn and NetworkOut for the same timestamp.
type Datapoint struct {
	Timestamp  time.Time `json:"timestamp"`
	InAverage  float64   `json:"in_average"`
	OutAverage float64   `json:"out_average"`
}

// DailyTraffic accumulates the samples that fall on one calendar date.
type DailyTraffic struct {
	Date   string  `json:"date"` // "2006-01-02", UTC
	InSum  float64 `json:"in_sum"`
	OutSum float64 `json:"out_sum"`
	Count  int     `json:"count"`
}

// ReportRow is one rendered line of the traffic table. The last row of a
// report always carries TotalLabel as its Date.
type ReportRow struct {
	Date string `json:"date"`
	In   string `json:"in"`
	Out  string `json:"out"`
}

// TrafficReport is the aggregated month-to-date traffic for one instance.
type TrafficReport struct {
	InstanceID  string      `json:"instance_id"`
	AccountID   string      `json:"account_id,omitempty"`
	Rows        []ReportRow `json:"rows"`
	PeriodStart time.Time   `json:"period_start"`
	PeriodEnd   time.Time   `json:"period_end"`
}
