// SPDX-License-Identifier: MIT
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ManuGH/spielplan/internal/fixtures"
)

var (
	// Parse metrics
	parseRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spielplan_parse_runs_total",
		Help: "Total number of fixture list parses",
	})

	rowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spielplan_rows_total",
		Help: "Fixture rows seen by outcome",
	}, []string{"outcome"}) // outcome=recorded|malformed|spielfrei|invalid_date|invalid_time

	recordsLast = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spielplan_records_last",
		Help: "Number of match records produced by the last parse",
	})

	homeFixturesLast = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "spielplan_home_fixtures_last",
		Help: "Number of home fixtures in the last parse",
	})

	linesIgnoredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spielplan_lines_ignored_total",
		Help: "Lines not used as fixture or venue text by kind",
	}, []string{"kind"}) // kind=boilerplate|orphan

	fieldSuggestionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spielplan_field_suggestions_total",
		Help: "Field suggestions made for home fixtures",
	}, []string{"field"})

	// Operational metrics
	assignmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "spielplan_assignments_total",
		Help: "Manual field assignments by outcome",
	}, []string{"outcome"}) // outcome=success|failure

	configValidationErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spielplan_config_validation_errors_total",
		Help: "Total number of configuration validation errors",
	})
)

// RecordReport records the statistics of one parse.
func RecordReport(st fixtures.Stats) {
	parseRunsTotal.Inc()
	rowsTotal.WithLabelValues(string(fixtures.StatusRecorded)).Add(float64(st.Recorded))
	for reason, n := range st.Skipped {
		rowsTotal.WithLabelValues(string(reason)).Add(float64(n))
	}
	recordsLast.Set(float64(st.Recorded))
	homeFixturesLast.Set(float64(st.HomeFixtures))
	linesIgnoredTotal.WithLabelValues("boilerplate").Add(float64(st.Ignored))
	linesIgnoredTotal.WithLabelValues("orphan").Add(float64(st.Orphans))
	for field, n := range st.Suggested {
		fieldSuggestionsTotal.WithLabelValues(string(field)).Add(float64(n))
	}
}

// IncAssignment counts one manual field assignment.
func IncAssignment(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	assignmentsTotal.WithLabelValues(outcome).Inc()
}

func IncConfigValidationError() { configValidationErrors.Inc() }

// WriteTextfile writes all registered metrics in the node exporter
// textfile collector format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
