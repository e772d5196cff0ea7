package main

import "github.com/prometheus/client_golang/prometheus"

var (
	layoutComputations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_timeline_layouts_total",
			Help: "Total number of timeline layouts computed",
		},
		[]string{"view"},
	)
	detailHeightReports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_detail_height_reports_total",
			Help: "Detail panel height reports, by whether they raised the stored height",
		},
		[]string{"outcome"},
	)
	staleSessionRows = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_stale_detail_heights_deleted_total",
			Help: "Detail height rows removed by session cleanup",
		},
	)
)

func init() {
	prometheus.MustRegister(layoutComputations, detailHeightReports, staleSessionRows)
}
