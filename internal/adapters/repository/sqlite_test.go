package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hirelens/hirelens/internal/adapters/repository"
	"github.com/hirelens/hirelens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func ts(day, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 0, 0, 0, time.UTC)
}

func TestSQLiteStore(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		ctx := context.Background()
		store, err := repository.Open(":memory:")
		So(err, ShouldBeNil)
		defer store.Close()

		So(store.HasSchedules(), ShouldBeTrue)

		Convey("When inserting and listing recruiters", func() {
			r1, err := store.InsertRecruiter(ctx, model.Recruiter{Name: "Asha", Email: "asha@example.com"})
			So(err, ShouldBeNil)
			So(r1.ID, ShouldNotBeEmpty)
			_, err = store.InsertRecruiter(ctx, model.Recruiter{ID: "r2", Name: "Bo", Email: "bo@example.com"})
			So(err, ShouldBeNil)

			recs, err := store.ListRecruiters(ctx)
			So(err, ShouldBeNil)

			Convey("Then recruiters come back ordered by name", func() {
				So(recs, ShouldHaveLength, 2)
				So(recs[0].Name, ShouldEqual, "Asha")
				So(recs[1].Name, ShouldEqual, "Bo")
			})
		})

		Convey("When querying candidates with filters", func() {
			_, err := store.InsertRecruiter(ctx, model.Recruiter{ID: "r1", Name: "Asha", Email: "a@example.com"})
			So(err, ShouldBeNil)

			mustInsert := func(c model.CandidateEvent) model.CandidateEvent {
				out, err := store.InsertCandidate(ctx, c)
				So(err, ShouldBeNil)
				return out
			}
			c1 := mustInsert(model.CandidateEvent{Name: "one", Status: "hired", CreatedAt: ts(11, 9), UpdatedAt: ts(13, 9), RecruiterID: "r1"})
			mustInsert(model.CandidateEvent{Name: "two", Status: "new", CreatedAt: ts(12, 9)})
			mustInsert(model.CandidateEvent{Name: "three", Status: "backed-out", CreatedAt: ts(20, 9), UpdatedAt: ts(21, 9), RecruiterID: "r1"})

			Convey("Then creation-time ranges are half-open", func() {
				within := repository.TimeRange{From: ts(11, 0), To: ts(13, 0)}
				got, err := store.FindCandidates(ctx, repository.CandidateFilter{CreatedWithin: &within})
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 2)

				n, err := store.CountCandidates(ctx, repository.CandidateFilter{CreatedWithin: &within})
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)

				// Boundary: an instant equal to To is excluded.
				edge := repository.TimeRange{From: ts(11, 9), To: ts(11, 9)}
				n, err = store.CountCandidates(ctx, repository.CandidateFilter{CreatedWithin: &edge})
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 0)
			})

			Convey("Then update-time, status and recruiter predicates AND together", func() {
				within := repository.TimeRange{From: ts(13, 0), To: ts(22, 0)}
				got, err := store.FindCandidates(ctx, repository.CandidateFilter{
					UpdatedWithin: &within,
					StatusIn:      []string{"hired", "backed-out"},
					Recruiter:     "r1",
				})
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 2)

				got, err = store.FindCandidates(ctx, repository.CandidateFilter{
					UpdatedWithin: &within,
					StatusIn:      []string{"hired"},
					Recruiter:     "r1",
				})
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldEqual, c1.ID)
				So(got[0].UpdatedAt, ShouldEqual, ts(13, 9))
			})

			Convey("Then the unassigned sentinel matches null recruiters only", func() {
				got, err := store.FindCandidates(ctx, repository.CandidateFilter{Recruiter: repository.Unassigned})
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].Name, ShouldEqual, "two")
				So(got[0].RecruiterID, ShouldBeEmpty)
			})

			Convey("Then id-set lookups resolve candidates", func() {
				got, err := store.FindCandidates(ctx, repository.CandidateFilter{IDIn: []string{c1.ID, "nope"}})
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldEqual, c1.ID)
			})

			Convey("And a status update bumps updated_at", func() {
				at := ts(15, 10)
				So(store.UpdateCandidateStatus(ctx, c1.ID, "joined-and-left", at), ShouldBeNil)

				got, err := store.FindCandidates(ctx, repository.CandidateFilter{IDIn: []string{c1.ID}})
				So(err, ShouldBeNil)
				So(got[0].Status, ShouldEqual, "joined-and-left")
				So(got[0].UpdatedAt, ShouldEqual, at)

				Convey("But updating an unknown candidate reports not found", func() {
					err := store.UpdateCandidateStatus(ctx, "ghost", "hired", at)
					So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				})
			})
		})

		Convey("When querying schedules", func() {
			c, err := store.InsertCandidate(ctx, model.CandidateEvent{Name: "one", Status: "new", CreatedAt: ts(11, 9)})
			So(err, ShouldBeNil)
			_, err = store.InsertSchedule(ctx, model.ScheduleEvent{CandidateID: c.ID, CreatedAt: ts(12, 9)})
			So(err, ShouldBeNil)
			_, err = store.InsertSchedule(ctx, model.ScheduleEvent{CandidateID: c.ID, CreatedAt: ts(19, 9)})
			So(err, ShouldBeNil)

			Convey("Then time-range and candidate-set predicates apply", func() {
				within := repository.TimeRange{From: ts(11, 0), To: ts(15, 0)}
				got, err := store.FindSchedules(ctx, repository.ScheduleFilter{CreatedWithin: &within})
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].CandidateID, ShouldEqual, c.ID)

				n, err := store.CountSchedules(ctx, repository.ScheduleFilter{CandidateIn: []string{c.ID}})
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)

				n, err = store.CountSchedules(ctx, repository.ScheduleFilter{CandidateIn: []string{"ghost"}})
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 0)
			})
		})
	})
}

func TestNoopScheduleSource(t *testing.T) {
	Convey("Given the null schedule source", t, func() {
		ctx := context.Background()
		src := repository.NoopScheduleSource{}

		Convey("Then every read degrades to zero", func() {
			n, err := src.CountSchedules(ctx, repository.ScheduleFilter{})
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 0)

			got, err := src.FindSchedules(ctx, repository.ScheduleFilter{})
			So(err, ShouldBeNil)
			So(got, ShouldBeEmpty)
		})
	})
}
