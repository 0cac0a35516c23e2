package resultvalue_test

import (
	"errors"
	"testing"

	resultvalue "github.com/matchfit/scorebox/internal/domain/resultvalue"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseReps(t *testing.T) {
	Convey("Given a REPS workout", t, func() {
		Convey("When parsing a positive integer", func() {
			v, err := resultvalue.Parse(resultvalue.TypeReps, "42")
			So(err, ShouldBeNil)
			So(v.Type(), ShouldEqual, resultvalue.TypeReps)
			So(v.Reps(), ShouldEqual, 42)
		})

		Convey("When parsing with surrounding whitespace", func() {
			v, err := resultvalue.Parse(resultvalue.TypeReps, "  17 ")
			So(err, ShouldBeNil)
			So(v.Reps(), ShouldEqual, 17)
		})

		Convey("When parsing a non-numeric token", func() {
			_, err := resultvalue.Parse(resultvalue.TypeReps, "abc")
			So(errors.Is(err, resultvalue.ErrTypeMismatch), ShouldBeTrue)
		})

		Convey("When parsing zero or a negative count", func() {
			_, err := resultvalue.Parse(resultvalue.TypeReps, "0")
			So(errors.Is(err, resultvalue.ErrTypeMismatch), ShouldBeTrue)
			_, err = resultvalue.Parse(resultvalue.TypeReps, "-3")
			So(errors.Is(err, resultvalue.ErrTypeMismatch), ShouldBeTrue)
		})

		Convey("When parsing a duration string", func() {
			_, err := resultvalue.Parse(resultvalue.TypeReps, "12:30")
			So(errors.Is(err, resultvalue.ErrTypeMismatch), ShouldBeTrue)
		})
	})
}

func TestParseWeight(t *testing.T) {
	Convey("Given a WEIGHT workout", t, func() {
		Convey("When parsing a positive float", func() {
			v, err := resultvalue.Parse(resultvalue.TypeWeight, "102.5")
			So(err, ShouldBeNil)
			So(v.Type(), ShouldEqual, resultvalue.TypeWeight)
			So(v.Weight(), ShouldEqual, 102.5)
		})

		Convey("When parsing an integer literal", func() {
			v, err := resultvalue.Parse(resultvalue.TypeWeight, "80")
			So(err, ShouldBeNil)
			So(v.Weight(), ShouldEqual, 80.0)
		})

		Convey("When parsing garbage", func() {
			_, err := resultvalue.Parse(resultvalue.TypeWeight, "heavy")
			So(errors.Is(err, resultvalue.ErrTypeMismatch), ShouldBeTrue)
		})

		Convey("When parsing a non-positive weight", func() {
			_, err := resultvalue.Parse(resultvalue.TypeWeight, "0")
			So(errors.Is(err, resultvalue.ErrTypeMismatch), ShouldBeTrue)
		})

		Convey("When parsing a duration string", func() {
			_, err := resultvalue.Parse(resultvalue.TypeWeight, "1:30")
			So(errors.Is(err, resultvalue.ErrTypeMismatch), ShouldBeTrue)
		})
	})
}

func TestParseDuration(t *testing.T) {
	Convey("Given a TIME workout", t, func() {
		Convey("When parsing mm:ss", func() {
			v, err := resultvalue.Parse(resultvalue.TypeTime, "1:05")
			So(err, ShouldBeNil)
			So(v.Type(), ShouldEqual, resultvalue.TypeTime)
			So(v.Seconds(), ShouldEqual, 65)
		})

		Convey("When parsing hh:mm:ss", func() {
			v, err := resultvalue.Parse(resultvalue.TypeTime, "1:02:03")
			So(err, ShouldBeNil)
			So(v.Seconds(), ShouldEqual, 3723)
		})

		Convey("When parsing a value with too many tokens", func() {
			_, err := resultvalue.Parse(resultvalue.TypeTime, "1:2:3:4")
			So(errors.Is(err, resultvalue.ErrInvalidTimeFormat), ShouldBeTrue)
		})

		Convey("When parsing a bare number", func() {
			_, err := resultvalue.Parse(resultvalue.TypeTime, "95")
			So(errors.Is(err, resultvalue.ErrInvalidTimeFormat), ShouldBeTrue)
		})

		Convey("When a component is not numeric", func() {
			_, err := resultvalue.Parse(resultvalue.TypeTime, "1:ab")
			So(errors.Is(err, resultvalue.ErrInvalidTimeFormat), ShouldBeTrue)
		})

		Convey("When a component is negative", func() {
			_, err := resultvalue.Parse(resultvalue.TypeTime, "1:-5")
			So(errors.Is(err, resultvalue.ErrInvalidTimeFormat), ShouldBeTrue)
		})
	})
}

func TestFormatRoundTrip(t *testing.T) {
	Convey("Given valid duration strings", t, func() {
		cases := map[string]int{
			"1:05":    65,
			"0:00":    0,
			"59:59":   3599,
			"1:00:00": 3600,
			"1:02:03": 3723,
			"2:15:00": 8100,
		}
		Convey("Then parse and format round-trip", func() {
			for in, want := range cases {
				v, err := resultvalue.Parse(resultvalue.TypeTime, in)
				So(err, ShouldBeNil)
				So(v.Seconds(), ShouldEqual, want)
				So(resultvalue.Format(v), ShouldEqual, in)
			}
		})
	})

	Convey("Given non-canonical but valid durations", t, func() {
		Convey("Then formatting canonicalizes and stays stable", func() {
			v, err := resultvalue.Parse(resultvalue.TypeTime, "05:30")
			So(err, ShouldBeNil)
			out := resultvalue.Format(v)
			So(out, ShouldEqual, "5:30")
			again, err := resultvalue.Parse(resultvalue.TypeTime, out)
			So(err, ShouldBeNil)
			So(again.Seconds(), ShouldEqual, v.Seconds())
		})
	})

	Convey("Given reps and weight values", t, func() {
		Convey("Then formatting is the plain number", func() {
			So(resultvalue.Format(resultvalue.Reps(42)), ShouldEqual, "42")
			So(resultvalue.Format(resultvalue.Weight(102.5)), ShouldEqual, "102.5")
			So(resultvalue.Format(resultvalue.Weight(80)), ShouldEqual, "80")
		})
	})

	Convey("Given a zero value", t, func() {
		So(resultvalue.Format(resultvalue.Value{}), ShouldEqual, "-")
	})
}

func TestBetter(t *testing.T) {
	Convey("Given the ranking directions", t, func() {
		Convey("REPS ranks higher counts first", func() {
			So(resultvalue.Better(resultvalue.TypeReps, resultvalue.Reps(100), resultvalue.Reps(90)), ShouldBeTrue)
			So(resultvalue.Better(resultvalue.TypeReps, resultvalue.Reps(90), resultvalue.Reps(100)), ShouldBeFalse)
		})

		Convey("WEIGHT ranks heavier lifts first", func() {
			So(resultvalue.Better(resultvalue.TypeWeight, resultvalue.Weight(120.5), resultvalue.Weight(120)), ShouldBeTrue)
		})

		Convey("TIME ranks faster finishes first", func() {
			So(resultvalue.Better(resultvalue.TypeTime, resultvalue.Seconds(95), resultvalue.Seconds(130)), ShouldBeTrue)
			So(resultvalue.Better(resultvalue.TypeTime, resultvalue.Seconds(130), resultvalue.Seconds(95)), ShouldBeFalse)
		})

		Convey("Equal values never outperform each other", func() {
			So(resultvalue.Better(resultvalue.TypeReps, resultvalue.Reps(100), resultvalue.Reps(100)), ShouldBeFalse)
		})

		Convey("A zero value always sorts last", func() {
			So(resultvalue.Better(resultvalue.TypeTime, resultvalue.Value{}, resultvalue.Seconds(10)), ShouldBeFalse)
			So(resultvalue.Better(resultvalue.TypeTime, resultvalue.Seconds(10), resultvalue.Value{}), ShouldBeTrue)
		})
	})
}
