// Package metrics holds the Prometheus collectors of the holiday service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "holidays"
	subsystem = "api"
)

var (
	// CalendarBuilds counts holiday sets built for the calendar cache,
	// partitioned by calendar ("CA-ON+US").
	CalendarBuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "calendar_builds_total",
			Help:      "Number of holiday calendars built, partitioned by calendar",
		},
		[]string{
			"calendar",
		},
	)

	// CachedCalendars is the number of calendars held by the API cache.
	CachedCalendars = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cached_calendars",
			Help:      "Number of holiday calendars in the cache",
		},
	)

	// HolidayChecks counts date checks, partitioned by result
	// (holiday, workday).
	HolidayChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "checks_total",
			Help:      "Number of holiday checks, partitioned by result",
		},
		[]string{
			"result",
		},
	)

	// CustomHolidayWrites counts custom holiday mutations, partitioned by
	// operation (save, delete).
	CustomHolidayWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "custom_holiday_writes_total",
			Help:      "Number of custom holiday writes, partitioned by operation",
		},
		[]string{
			"op",
		},
	)
)
