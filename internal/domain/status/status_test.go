package status_test

import (
	"testing"

	"github.com/hirelens/hirelens/internal/domain/status"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given the outcome taxonomy", t, func() {
		Convey("Then hired classifies as a hire", func() {
			So(status.Classify("hired"), ShouldEqual, status.OutcomeHired)
		})

		Convey("Then every backed-out variant classifies as backed out", func() {
			for _, s := range []string{
				"backed-out",
				"backed-out-not-attended-interview",
				"joined-and-left",
				"appointed-not-joined",
			} {
				So(status.Classify(s), ShouldEqual, status.BackedOut)
			}
		})

		Convey("Then the not-selected status classifies as not selected", func() {
			So(status.Classify("attended-interview-not-selected"), ShouldEqual, status.NotSelected)
		})

		Convey("Then matching is exact and case-sensitive", func() {
			So(status.Classify("Hired"), ShouldEqual, status.None)
			So(status.Classify("HIRED"), ShouldEqual, status.None)
			So(status.Classify("backed_out"), ShouldEqual, status.None)
			So(status.Classify(""), ShouldEqual, status.None)
			So(status.Classify("interview-scheduled"), ShouldEqual, status.None)
		})

		Convey("Then TerminalStatuses covers exactly the three sets", func() {
			all := status.TerminalStatuses()
			So(all, ShouldHaveLength, 6)
			for _, s := range all {
				So(status.Terminal(s), ShouldBeTrue)
			}
			So(status.Terminal("new"), ShouldBeFalse)
		})
	})
}
