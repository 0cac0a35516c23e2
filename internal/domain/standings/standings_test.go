package standings_test

import (
	"testing"

	"github.com/matchfit/scorebox/internal/domain/model"
	standings "github.com/matchfit/scorebox/internal/domain/standings"
	. "github.com/smartystreets/goconvey/convey"
)

func ranked(participantID, workoutID string, position int) *model.ResultRecord {
	return &model.ResultRecord{
		CategoryID:    "cat-1",
		WorkoutID:     workoutID,
		ParticipantID: participantID,
		Position:      position,
	}
}

func TestTotals(t *testing.T) {
	Convey("Given a category with two workouts ranked", t, func() {
		records := []*model.ResultRecord{
			ranked("a", "wod-1", 1),
			ranked("b", "wod-1", 2),
			ranked("a", "wod-2", 3),
			ranked("b", "wod-2", 1),
		}

		Convey("When recomputing totals", func() {
			totals := standings.Totals(records)

			Convey("Then each total is the sum of that participant's positions", func() {
				So(totals["a"], ShouldEqual, 4)
				So(totals["b"], ShouldEqual, 3)
			})

			Convey("And recomputing again yields the same totals", func() {
				So(standings.Totals(records), ShouldResemble, totals)
			})
		})
	})

	Convey("Given a record that was never ranked", t, func() {
		records := []*model.ResultRecord{
			ranked("a", "wod-1", 2),
			ranked("a", "wod-2", 0),
		}

		Convey("Then the unranked record contributes zero", func() {
			So(standings.Totals(records)["a"], ShouldEqual, 2)
		})
	})

	Convey("Given a participant whose only record is unranked", t, func() {
		totals := standings.Totals([]*model.ResultRecord{ranked("a", "wod-1", 0)})

		Convey("Then the participant still appears with a zero total", func() {
			score, ok := totals["a"]
			So(ok, ShouldBeTrue)
			So(score, ShouldEqual, 0)
		})
	})

	Convey("Given no records", t, func() {
		So(standings.Totals(nil), ShouldBeEmpty)
	})
}

func TestCompleted(t *testing.T) {
	Convey("Given a mix of finalized and open records", t, func() {
		records := []*model.ResultRecord{
			{ParticipantID: "a", WorkoutID: "wod-1", Finalized: true},
			{ParticipantID: "a", WorkoutID: "wod-2", Finalized: false},
			{ParticipantID: "b", WorkoutID: "wod-1", Finalized: true},
			{ParticipantID: "b", WorkoutID: "wod-2", Finalized: true},
		}

		Convey("Then only finalized records count as completed", func() {
			done := standings.Completed(records)
			So(done["a"], ShouldEqual, 1)
			So(done["b"], ShouldEqual, 2)
		})
	})
}
