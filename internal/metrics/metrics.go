package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EngineOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "opscore", Name: "engine_ops_total", Help: "Engine operations started",
	}, []string{"op"})
	EngineOpErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "opscore", Name: "engine_op_errors_total", Help: "Engine operations that returned a fault",
	}, []string{"op", "kind"})
	EngineOpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "opscore", Name: "engine_op_duration_seconds", Help: "Engine operation duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	SettingsFallback = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "opscore", Name: "settings_fallback_total",
		Help: "Clock-ins computed on default shop settings because none were stored",
	})
	PenaltyDegraded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "opscore", Name: "penalty_degraded_total",
		Help: "Penalty calculations that fell back to late/0 (timezone or start_time unusable)",
	})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "opscore", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(EngineOps, EngineOpErrors, EngineOpDuration,
		SettingsFallback, PenaltyDegraded, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }
