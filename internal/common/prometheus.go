package common

import "github.com/prometheus/client_golang/prometheus"

const (
	HTTPRequestTotal           = "http_requests_total"
	HTTPRequestDurationSeconds = "http_request_duration_seconds"
	ActivityCreatedTotal       = "activity_created_total"
	ActivityPublishFailedTotal = "activity_publish_failed_total"
)

var (
	PromCounters = map[string]*prometheus.CounterVec{
		HTTPRequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: HTTPRequestTotal,
			Help: "Count of all HTTP requests",
		}, []string{"method", "path", "status_code"}),
		ActivityCreatedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ActivityCreatedTotal,
			Help: "Count of all activities generated by thread lifecycle transitions",
		}, []string{"type"}),
		ActivityPublishFailedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ActivityPublishFailedTotal,
			Help: "Count of activity events which could not be published",
		}, []string{"topic"}),
	}

	PromHistograms = map[string]*prometheus.HistogramVec{
		HTTPRequestDurationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: HTTPRequestDurationSeconds,
			Help: "Duration of all HTTP requests",
		}, []string{"method", "path", "status_code"}),
	}
)
