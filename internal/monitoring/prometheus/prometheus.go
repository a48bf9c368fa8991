// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/rental-service/internal/logging"
	"github.com/canonical/rental-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	domainEvents *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencies.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncrementDomainEvent(tags map[string]string) error {
	if m.domainEvents == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.domainEvents.With(tags).Inc()

	return nil
}

func (m *Monitor) register(c prometheus.Collector) prometheus.Collector {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector
		}
		m.logger.Errorf("failed to register collector: %s", err)
	}

	return c
}

func (m *Monitor) registerHistograms() {
	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.responseTime = m.register(histogram).(*prometheus.HistogramVec)
}

func (m *Monitor) registerGauges() {
	gauge := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.dependencies = m.register(gauge).(*prometheus.GaugeVec)
}

func (m *Monitor) registerCounters() {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "rental_domain_events_total",
			Help:        "marketplace events by type",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"event"},
	)

	m.domainEvents = m.register(counter).(*prometheus.CounterVec)
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
