// SPDX-FileCopyrightText: 2022 Tchadel Icard
// SPDX-License-Identifier: AGPL-3.0-only

// Package reporter bundles the logging and metrics surface every component
// in this module is threaded with, instead of relying on package-level
// globals. A Reporter wraps a zerolog.Logger and a Prometheus registry and
// namespaces everything a caller registers under the caller's own
// subsystem name.
package reporter

import (
	"fmt"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Reporter is the logging+metrics handle threaded into components that
// need to log or export counters/gauges.
type Reporter struct {
	logger   zerolog.Logger
	registry *prometheus.Registry

	mu         sync.Mutex
	registered map[string]bool
}

// New builds a Reporter logging to w (os.Stderr if nil). Every metric it
// registers is prefixed with the fixed "sflow" namespace.
func New(w *os.File) *Reporter {
	if w == nil {
		w = os.Stderr
	}
	writer := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	if !isTerminal(w) {
		// Structured JSON when not attached to an interactive terminal,
		// matching how the teacher's CLI tells humans from log collectors
		// apart.
		return &Reporter{
			logger:     zerolog.New(w).With().Timestamp().Logger(),
			registry:   prometheus.NewRegistry(),
			registered: map[string]bool{},
		}
	}
	return &Reporter{
		logger:     zerolog.New(writer).With().Timestamp().Logger(),
		registry:   prometheus.NewRegistry(),
		registered: map[string]bool{},
	}
}

// Logger returns the wrapped zerolog.Logger.
func (r *Reporter) Logger() zerolog.Logger { return r.logger }

// Registry returns the Prometheus registry metrics are registered against,
// for wiring into an HTTP exposition handler.
func (r *Reporter) Registry() *prometheus.Registry { return r.registry }

// CounterOpts names a counter or counter vector; Name is joined to the
// "sflow" namespace and Subsystem the way the teacher's reporter does.
type CounterOpts struct {
	Subsystem string
	Name      string
	Help      string
}

// CounterVec is a labeled Prometheus counter.
type CounterVec struct {
	vec *prometheus.CounterVec
}

// CounterVec registers (once) and returns a labeled counter.
func (r *Reporter) CounterVec(opts CounterOpts, labels []string) *CounterVec {
	r.mu.Lock()
	defer r.mu.Unlock()
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sflow",
		Subsystem: opts.Subsystem,
		Name:      opts.Name,
		Help:      opts.Help,
	}, labels)
	key := fmt.Sprintf("%s_%s_%s", "sflow", opts.Subsystem, opts.Name)
	if !r.registered[key] {
		r.registry.MustRegister(vec)
		r.registered[key] = true
	}
	return &CounterVec{vec: vec}
}

// WithLabelValues returns the counter for the given label values; callers
// increment it themselves.
func (c *CounterVec) WithLabelValues(lvs ...string) prometheus.Counter {
	return c.vec.WithLabelValues(lvs...)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
