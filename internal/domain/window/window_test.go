package window_test

import (
	"sort"
	"testing"
	"time"

	"github.com/hirelens/hirelens/internal/domain/window"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResolve(t *testing.T) {
	Convey("Given a frozen clock", t, func() {
		now := time.Date(2024, 3, 14, 15, 30, 45, 0, time.UTC) // a Thursday

		Convey("When resolving the day window", func() {
			w := window.Resolve(now, "day", "", "")

			Convey("Then it spans today's UTC date, half-open", func() {
				So(w.Start, ShouldEqual, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC))
				So(w.End, ShouldEqual, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
				So(w.Contains(now), ShouldBeTrue)
				So(w.Contains(w.End), ShouldBeFalse)
				So(w.Contains(w.Start), ShouldBeTrue)
			})

			Convey("And an instant is inside iff its UTC date is today", func() {
				So(w.Contains(time.Date(2024, 3, 14, 23, 59, 59, 999000000, time.UTC)), ShouldBeTrue)
				So(w.Contains(time.Date(2024, 3, 13, 23, 59, 59, 0, time.UTC)), ShouldBeFalse)
				So(w.Contains(time.Date(2024, 3, 15, 0, 0, 0, 1, time.UTC)), ShouldBeFalse)
			})
		})

		Convey("When resolving the week window from every weekday", func() {
			// 2024-03-11 is a Monday; walk the whole week.
			for i := 0; i < 7; i++ {
				day := time.Date(2024, 3, 11+i, 10, 0, 0, 0, time.UTC)
				w := window.Resolve(day, "week", "", "")

				Convey("Then it starts on Monday for "+day.Weekday().String(), func() {
					So(w.Start.Weekday(), ShouldEqual, time.Monday)
					So(w.Start, ShouldEqual, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))
					So(w.End, ShouldEqual, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC))
				})
			}
		})

		Convey("When resolving the month window", func() {
			w := window.Resolve(now, "month", "", "")

			Convey("Then it spans first-of-month to first-of-next-month", func() {
				So(w.Start, ShouldEqual, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
				So(w.End, ShouldEqual, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
			})
		})

		Convey("When resolving the year window", func() {
			w := window.Resolve(now, "year", "", "")

			Convey("Then it spans Jan 1 to next Jan 1", func() {
				So(w.Start, ShouldEqual, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
				So(w.End, ShouldEqual, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
			})
		})

		Convey("When an explicit from/to range is supplied", func() {
			w := window.Resolve(now, "year", "2024-01-30", "2024-02-02")

			Convey("Then the explicit range wins over the period", func() {
				So(w.Start, ShouldEqual, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC))
				So(w.End, ShouldEqual, time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC))
				So(w.Contains(time.Date(2024, 2, 2, 23, 59, 59, 0, time.UTC)), ShouldBeTrue)
				So(w.Contains(time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)), ShouldBeFalse)
			})
		})

		Convey("When from is supplied without to", func() {
			w := window.Resolve(now, "", "2024-06-15", "")

			Convey("Then the window is that single day", func() {
				So(w.Start, ShouldEqual, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
				So(w.End, ShouldEqual, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC))
			})
		})

		Convey("When to precedes from", func() {
			w := window.Resolve(now, "", "2024-06-15", "2024-06-10")

			Convey("Then the window degrades to the single from day", func() {
				So(w.End, ShouldEqual, w.Start.Add(24*time.Hour))
			})
		})

		Convey("When the period is unrecognized", func() {
			w := window.Resolve(now, "fortnight", "", "")

			Convey("Then it falls back to the day window", func() {
				So(w, ShouldResemble, window.Resolve(now, "day", "", ""))
				So(window.ValidPeriod("fortnight"), ShouldBeFalse)
			})
		})

		Convey("When from is malformed", func() {
			w := window.Resolve(now, "week", "junk", "")

			Convey("Then the period still applies", func() {
				So(w.Start.Weekday(), ShouldEqual, time.Monday)
			})
		})
	})
}

func TestDefaultGranularity(t *testing.T) {
	Convey("Given the period defaults", t, func() {
		So(window.DefaultGranularity("year"), ShouldEqual, window.Quarter)
		So(window.DefaultGranularity("month"), ShouldEqual, window.Week)
		So(window.DefaultGranularity("week"), ShouldEqual, window.Day)
		So(window.DefaultGranularity("day"), ShouldEqual, window.Day)
		So(window.DefaultGranularity("today"), ShouldEqual, window.Day)

		Convey("And an explicit bucket override wins", func() {
			So(window.ParseGranularity("quarter", window.Day), ShouldEqual, window.Quarter)
			So(window.ParseGranularity("", window.Week), ShouldEqual, window.Week)
			So(window.ParseGranularity("decade", window.Week), ShouldEqual, window.Week)
		})
	})
}

func TestBucketLabel(t *testing.T) {
	Convey("Given timestamps across granularities", t, func() {
		ts := time.Date(2024, 8, 7, 13, 45, 0, 0, time.UTC) // a Wednesday

		Convey("Then labels follow the expected formats", func() {
			So(window.BucketLabel(ts, window.Day), ShouldEqual, "2024-08-07")
			So(window.BucketLabel(ts, window.Week), ShouldEqual, "2024-08-05") // that week's Monday
			So(window.BucketLabel(ts, window.Month), ShouldEqual, "2024-08")
			So(window.BucketLabel(ts, window.Quarter), ShouldEqual, "2024-Q3")
		})

		Convey("And a Sunday folds into the preceding Monday's week", func() {
			sunday := time.Date(2024, 8, 11, 1, 0, 0, 0, time.UTC)
			So(window.BucketLabel(sunday, window.Week), ShouldEqual, "2024-08-05")
		})

		Convey("And quarter boundaries land correctly", func() {
			So(window.BucketLabel(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), window.Quarter), ShouldEqual, "2024-Q1")
			So(window.BucketLabel(time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC), window.Quarter), ShouldEqual, "2024-Q1")
			So(window.BucketLabel(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), window.Quarter), ShouldEqual, "2024-Q2")
			So(window.BucketLabel(time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC), window.Quarter), ShouldEqual, "2024-Q4")
		})

		Convey("And daily labels across a month boundary sort chronologically", func() {
			days := []time.Time{
				time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			}
			labels := make([]string, len(days))
			for i, d := range days {
				labels[i] = window.BucketLabel(d, window.Day)
			}
			sort.Strings(labels)
			So(labels, ShouldResemble, []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"})
		})
	})
}
