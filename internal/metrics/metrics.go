package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CampaignsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "campaigns_created_total",
			Help: "Total campaigns created",
		},
	)
	DonationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "donations_total",
			Help: "Total successful donations",
		},
	)
	DonationsAmount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "donations_amount_total",
			Help: "Sum of donated amounts",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(CampaignsCreated)
	prometheus.MustRegister(DonationsTotal)
	prometheus.MustRegister(DonationsAmount)
}
