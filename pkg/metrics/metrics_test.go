package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/scorebook/pkg/metrics"
)

func TestManager(t *testing.T) {
	convey.Convey("Given a manager on a fresh registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(metrics.WithRegistry(reg))
		convey.So(m, convey.ShouldNotBeNil)

		convey.Convey("Then its collectors are gathered from that registry", func() {
			families, err := reg.Gather()
			convey.So(err, convey.ShouldBeNil)
			convey.So(len(families), convey.ShouldBeGreaterThan, 0)
		})

		convey.Convey("Then a second manager on another registry does not collide", func() {
			convey.So(func() {
				metrics.NewManager(metrics.WithRegistry(prometheus.NewRegistry()))
			}, convey.ShouldNotPanic)
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	convey.Convey("Given the global manager", t, func() {
		convey.Convey("Then the record helpers do not panic", func() {
			convey.So(func() {
				metrics.RecordSummaryComputed()
				metrics.RecordReportGenerated(1024)
				metrics.RecordRegistrationAccepted()
				metrics.RecordRegistrationRejected([]string{"email", "sport"})
				metrics.RecordMatchRecorded()
				metrics.UpdatePlayersTracked(12)
				metrics.UpdateAccountsTracked(3)
				metrics.RecordHTTPRequest("report", "GET", "200")
				metrics.RecordHTTPRequestDuration("report", "GET", "200", 4.2)
			}, convey.ShouldNotPanic)
		})

		convey.Convey("Then the custom registry is exposed", func() {
			convey.So(metrics.GetRegistry(), convey.ShouldNotBeNil)
		})
	})
}
