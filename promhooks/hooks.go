// Package promhooks provides indexedmap.Hooks that export mutation metrics to Prometheus.
package promhooks

import (
	indexedmap "github.com/karupanerura/indexed-map"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	opAdd      = "add"
	opChange   = "change"
	opDelete   = "delete"
	opRollback = "rollback"
)

type options struct {
	initialEntries int
}

// Option is an option for New.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) {
	f(o)
}

// WithInitialEntries sets the starting value of the entries gauge.
// Pass the number of entries the map was seeded with, since seeding does not
// go through the hooks.
func WithInitialEntries(n int) Option {
	return optionFunc(func(o *options) {
		o.initialEntries = n
	})
}

// Hooks counts mutations and tracks the number of entries of one map,
// then delegates to the inner hooks.
type Hooks[V indexedmap.ValueConstraint] struct {
	inner      indexedmap.Hooks[V]
	operations *prometheus.CounterVec
	entries    prometheus.Gauge
}

var _ indexedmap.RollbackHooks[struct{}] = (*Hooks[struct{}])(nil)

// New creates Hooks for the map named name and registers its metrics.
// Several maps may share a registerer as long as their names differ.
// A nil inner is treated as indexedmap.NopHooks.
func New[V indexedmap.ValueConstraint](reg prometheus.Registerer, name string, inner indexedmap.Hooks[V], opts ...Option) (*Hooks[V], error) {
	if inner == nil {
		inner = indexedmap.NopHooks[V]{}
	}
	o := &options{}
	for _, opt := range opts {
		opt.apply(o)
	}

	h := &Hooks[V]{
		inner: inner,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "indexedmap",
			Name:        "operations_total",
			Help:        "Number of entries added, changed and deleted, and of rolled back mutations",
			ConstLabels: prometheus.Labels{"map": name},
		}, []string{
			"op",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "indexedmap",
			Name:        "entries",
			Help:        "Number of entries in the map",
			ConstLabels: prometheus.Labels{"map": name},
		}),
	}
	h.entries.Set(float64(o.initialEntries))
	if err := reg.Register(h.operations); err != nil {
		return nil, err
	}
	if err := reg.Register(h.entries); err != nil {
		reg.Unregister(h.operations)
		return nil, err
	}
	return h, nil
}

// OnAdd counts an added entry.
func (h *Hooks[V]) OnAdd(value V) V {
	value = h.inner.OnAdd(value)
	h.operations.WithLabelValues(opAdd).Inc()
	h.entries.Inc()
	return value
}

// OnChange counts a changed entry.
func (h *Hooks[V]) OnChange(current, replacement V) V {
	replacement = h.inner.OnChange(current, replacement)
	h.operations.WithLabelValues(opChange).Inc()
	return replacement
}

// OnDelete counts a deleted entry.
func (h *Hooks[V]) OnDelete(value V) {
	h.inner.OnDelete(value)
	h.operations.WithLabelValues(opDelete).Inc()
	h.entries.Dec()
}

// OnRollback uncounts the entry of a rolled back add.
func (h *Hooks[V]) OnRollback(value V, existed bool) {
	if rb, ok := h.inner.(indexedmap.RollbackHooks[V]); ok {
		rb.OnRollback(value, existed)
	}
	h.operations.WithLabelValues(opRollback).Inc()
	if !existed {
		h.entries.Dec()
	}
}
