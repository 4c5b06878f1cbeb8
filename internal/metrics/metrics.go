// Package metrics exposes Prometheus counters for ledger and rotation
// activity, plus an RPC latency interceptor.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "ekub"

// Metrics holds the collectors registered on a private registry. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	contributions prometheus.Counter
	payouts       prometheus.Counter
	payoutAmount  prometheus.Counter
	passResets    prometheus.Counter
	deposits      *prometheus.CounterVec
	failures      *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		contributions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contributions_total",
			Help:      "Contributions moved from member wallets into group pools.",
		}),
		payouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payouts_total",
			Help:      "Successful pool payouts.",
		}),
		payoutAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payout_amount_total",
			Help:      "Sum of all paid out pools.",
		}),
		passResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rotation_pass_resets_total",
			Help:      "Rotation passes restarted after every member had won.",
		}),
		deposits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deposits_total",
			Help:      "Gateway deposits by method and status.",
		}, []string{"method", "status"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Rejected engine operations by operation and error code.",
		}, []string{"op", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.contributions,
		m.payouts,
		m.payoutAmount,
		m.passResets,
		m.deposits,
		m.failures,
		m.rpcDuration,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Contribution records one contribution.
func (m *Metrics) Contribution() {
	if m == nil {
		return
	}
	m.contributions.Inc()
}

// Payout records a payout of amount. passReset is true when the payout
// began a new rotation pass.
func (m *Metrics) Payout(amount decimal.Decimal, passReset bool) {
	if m == nil {
		return
	}
	m.payouts.Inc()
	m.payoutAmount.Add(amount.InexactFloat64())
	if passReset {
		m.passResets.Inc()
	}
}

// Deposit records a gateway deposit transition.
func (m *Metrics) Deposit(method, status string) {
	if m == nil {
		return
	}
	m.deposits.WithLabelValues(method, status).Inc()
}

// Failure records a rejected operation.
func (m *Metrics) Failure(op, code string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(op, code).Inc()
}

// Interceptor observes the duration of every unary RPC.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					code = connectErr.Code().String()
				} else {
					code = connect.CodeUnknown.String()
				}
			}
			if m != nil {
				m.rpcDuration.WithLabelValues(req.Spec().Procedure, code).Observe(time.Since(start).Seconds())
			}
			return resp, err
		}
	}
}
