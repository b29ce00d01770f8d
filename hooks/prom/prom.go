// Package promhook exports cache hook events as Prometheus counters.
//
// Key and field names are deliberately absent from labels: they are
// unbounded, and high-cardinality labels melt Prometheus. Ops, error kinds
// and refresh reasons are small fixed sets.
package promhook

import (
	"github.com/prometheus/client_golang/prometheus"

	kompresscache "github.com/utvyakta-public/kompress-cache"
)

type Hooks struct {
	failovers     *prometheus.CounterVec
	refreshes     *prometheus.CounterVec
	backendErrors *prometheus.CounterVec
}

var _ kompresscache.Hooks = (*Hooks)(nil)

// New builds the hook set and registers its collectors on reg (or the
// default registerer if nil). When a collector is already registered there,
// the existing one is adopted, so multiple caches can share one registry.
func New(reg prometheus.Registerer) (*Hooks, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	failovers, err := registerVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kompresscache_failovers_total",
		Help: "Replica read failures retried on the primary.",
	}, []string{"op"}))
	if err != nil {
		return nil, err
	}
	refreshes, err := registerVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kompresscache_refreshes_total",
		Help: "Loader runs, by what triggered them (miss or invalid).",
	}, []string{"reason"}))
	if err != nil {
		return nil, err
	}
	backendErrors, err := registerVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kompresscache_backend_errors_total",
		Help: "Errors surfaced to callers, by op and classification.",
	}, []string{"op", "kind"}))
	if err != nil {
		return nil, err
	}

	return &Hooks{
		failovers:     failovers,
		refreshes:     refreshes,
		backendErrors: backendErrors,
	}, nil
}

func registerVec(reg prometheus.Registerer, v *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(v); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return v, nil
}

// MustNew is New, panicking on registration errors. Handy in main().
func MustNew(reg prometheus.Registerer) *Hooks {
	h, err := New(reg)
	if err != nil {
		panic(err)
	}
	return h
}

func (h *Hooks) Failover(op, _ string, _ error) {
	h.failovers.WithLabelValues(op).Inc()
}

func (h *Hooks) Refresh(_, _, reason string) {
	h.refreshes.WithLabelValues(reason).Inc()
}

func (h *Hooks) BackendError(op string, kind kompresscache.Kind) {
	h.backendErrors.WithLabelValues(op, kind.String()).Inc()
}
