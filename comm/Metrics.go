package comm

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signApiRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qsign",
		Name:      "api_requests_total",
		Help:      "签名api请求次数, 按接口与返回code统计",
	}, []string{"api", "code"})

	signApiLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "qsign",
		Name:      "api_request_seconds",
		Help:      "签名api请求耗时",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
	}, []string{"api"})
)

func init() {
	prometheus.MustRegister(signApiRequests, signApiLatency)
}

// ObserveSignApi 记录一次签名api调用
func ObserveSignApi(api string, code int, cost time.Duration) {
	signApiRequests.WithLabelValues(api, strconv.Itoa(code)).Inc()
	signApiLatency.WithLabelValues(api).Observe(cost.Seconds())
}
