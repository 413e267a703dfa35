package rest

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/txpoolviz/internal/custompromauto"
)

var httpResponses = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "txpoolviz_http_responses_total",
	Help: "Number of api responses per route pattern and status code",
}, []string{"pattern", "code"})
