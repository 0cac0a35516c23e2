package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		Convey("When created on a fresh registry", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(WithRegistry(registry))

			Convey("Then it registers without panicking", func() {
				So(m, ShouldNotBeNil)
			})

			Convey("And the registry gathers the engine metrics", func() {
				m.resultsSubmitted.Inc()
				m.rankingDuration.Observe(1.5)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When created with custom options", func() {
			registry := prometheus.NewRegistry()
			m := NewManager(
				WithNamespace("testns"),
				WithSubsystem("testsub"),
				WithHistogramBuckets([]float64{0.1, 1, 10}),
				WithRegistry(registry),
			)

			Convey("Then the options are applied", func() {
				So(m.namespace, ShouldEqual, "testns")
				So(m.subsystem, ShouldEqual, "testsub")
				So(m.histogramBuckets, ShouldResemble, []float64{0.1, 1, 10})
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("Then the package-level helpers record without panicking", func() {
			So(func() {
				RecordResultSubmitted()
				RecordResultRemoved()
				RecordResultRejected("type_mismatch")
				RecordBatchItem("ok")
				RecordRankingRun(2.0)
				RecordAggregationRun(1.0)
				RecordLockWait(0.2)
				RecordLockTimeout()
				UpdateResultCount(10)
				UpdateCategoryCount(3)
				RecordHTTPRequest("results", "POST", "200")
				RecordHTTPRequestDuration("results", "POST", "200", 5)
			}, ShouldNotPanic)
		})

		Convey("And the scrape registry is exposed", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
