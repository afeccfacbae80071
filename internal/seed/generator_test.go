package seed

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerator(t *testing.T) {
	now := time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)

	Convey("Given a fixed seed and clock", t, func() {
		cfg := Config{Recruiters: 3, Candidates: 40, Days: 14, ScheduleRate: 0.5, Seed: 7}

		Convey("When generating twice with the same config", func() {
			a := NewGenerator(cfg, now)
			b := NewGenerator(cfg, now)

			ca := a.Candidates([]string{"r1", "r2"})
			cb := b.Candidates([]string{"r1", "r2"})

			Convey("Then statuses, assignments and timestamps repeat", func() {
				So(len(ca), ShouldEqual, cfg.Candidates)
				So(len(cb), ShouldEqual, cfg.Candidates)
				for i := range ca {
					So(ca[i].Status, ShouldEqual, cb[i].Status)
					So(ca[i].RecruiterID, ShouldEqual, cb[i].RecruiterID)
					So(ca[i].CreatedAt, ShouldEqual, cb[i].CreatedAt)
				}
			})
		})

		Convey("When generating the roster", func() {
			g := NewGenerator(cfg, now)
			rs := g.Recruiters()

			Convey("Then names and emails are sequential", func() {
				So(len(rs), ShouldEqual, 3)
				So(rs[0].Name, ShouldEqual, "recruiter-01")
				So(rs[2].Email, ShouldEqual, "recruiter-03@example.com")
			})
		})

		Convey("When generating candidates", func() {
			g := NewGenerator(cfg, now)
			cs := g.Candidates([]string{"r1"})

			Convey("Then timestamps stay within the trailing window", func() {
				floor := now.AddDate(0, 0, -cfg.Days)
				for _, c := range cs {
					ts, err := time.Parse(time.RFC3339, c.CreatedAt)
					So(err, ShouldBeNil)
					So(ts.After(floor) || ts.Equal(floor), ShouldBeTrue)
					So(ts.After(now), ShouldBeFalse)
				}
			})

			Convey("Then some candidates stay unassigned", func() {
				unassigned := 0
				for _, c := range cs {
					if c.RecruiterID == "" {
						unassigned++
					}
				}
				So(unassigned, ShouldBeGreaterThan, 0)
				So(unassigned, ShouldBeLessThan, len(cs))
			})
		})

		Convey("When generating schedules at a full rate", func() {
			full := cfg
			full.ScheduleRate = 1.0
			g := NewGenerator(full, now)
			ids := []string{"c1", "c2", "c3"}
			ss := g.Schedules(ids)

			Convey("Then every candidate gets a schedule", func() {
				So(len(ss), ShouldEqual, len(ids))
				So(ss[0].CandidateID, ShouldEqual, "c1")
			})
		})

		Convey("When the config omits shape defaults", func() {
			g := NewGenerator(Config{Candidates: 5}, now)

			Convey("Then generation still succeeds", func() {
				So(len(g.Candidates(nil)), ShouldEqual, 5)
			})
		})
	})
}
