package metrics

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	NotificationsSentCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of reminder notifications sent",
		},
	)

	UsersRegisteredCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of completed registrations",
		},
	)

	NotesCreatedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notes_created_total",
			Help: "Total number of notes created",
		},
	)

	ResponseTimeHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "handler_response_time_seconds",
			Help:    "Update handler response time in seconds",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)
)

func Init() {
	prometheus.MustRegister(NotificationsSentCounter)
	prometheus.MustRegister(UsersRegisteredCounter)
	prometheus.MustRegister(NotesCreatedCounter)
	prometheus.MustRegister(ResponseTimeHistogram)
}

func StartMetricsServer(port string) {
	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("metrics server running on %s", port)
		if err := http.ListenAndServe(port, nil); err != nil {
			log.Fatalf("failed to start metrics server: %v", err)
		}
	}()
}
