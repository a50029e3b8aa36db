package ingest_test

import (
	"strings"
	"testing"

	ingest "github.com/okian/halfcourt/internal/adapters/ingest"
	. "github.com/smartystreets/goconvey/convey"
)

const fixture = `game_id,season,home_name,conference_game,type,shot_made,event_coord_x,event_coord_y
g1,2023-24,Gonzaga,true,twopointmade,true,1065,300
g1,2023-24,Gonzaga,true,threepointmiss,false,300,100
g1,2023-24,Gonzaga,true,twopointmiss,false,,300
g2,2023-24,Duke,false,freethrow,true,bogus,250
`

func TestRead(t *testing.T) {
	Convey("Given a well-formed feed", t, func() {
		events, err := ingest.Read(strings.NewReader(fixture))

		Convey("Then every row is returned", func() {
			So(err, ShouldBeNil)
			So(len(events), ShouldEqual, 4)
		})

		Convey("Then typed fields parse", func() {
			So(events[0].Season, ShouldEqual, "2023-24")
			So(events[0].HomeTeam, ShouldEqual, "Gonzaga")
			So(events[0].ConferenceGame, ShouldBeTrue)
			So(events[0].Made, ShouldBeTrue)
			So(*events[0].X, ShouldEqual, 1065)
			So(*events[0].Y, ShouldEqual, 300)
			So(events[3].ConferenceGame, ShouldBeFalse)
		})

		Convey("Then blank and malformed coordinates surface as nil", func() {
			So(events[2].X, ShouldBeNil)
			So(events[2].Y, ShouldNotBeNil)
			So(events[3].X, ShouldBeNil)
		})

		Convey("Then each row gets a unique minted ID", func() {
			So(events[0].ID, ShouldNotBeEmpty)
			So(events[0].ID, ShouldNotEqual, events[1].ID)
		})
	})

	Convey("Given a feed carrying its own event IDs", t, func() {
		withIDs := "event_id,game_id,season,home_name,conference_game,type,shot_made,event_coord_x,event_coord_y\n" +
			"e-7,g1,2023-24,Gonzaga,true,fieldgoal,true,500,250\n"
		events, err := ingest.Read(strings.NewReader(withIDs))

		Convey("Then the feed ID is kept", func() {
			So(err, ShouldBeNil)
			So(events[0].ID, ShouldEqual, "e-7")
		})
	})

	Convey("Given a feed missing a required column", t, func() {
		_, err := ingest.Read(strings.NewReader("season,type,shot_made\n2023-24,fieldgoal,true\n"))

		Convey("Then reading fails with ErrMissingColumn", func() {
			So(err, ShouldWrap, ingest.ErrMissingColumn)
		})
	})

	Convey("Given an empty feed", t, func() {
		_, err := ingest.Read(strings.NewReader(""))

		Convey("Then reading fails with ErrEmptyFeed", func() {
			So(err, ShouldWrap, ingest.ErrEmptyFeed)
		})
	})

	Convey("Given a feed with a short row", t, func() {
		short := "game_id,season,home_name,conference_game,type,shot_made,event_coord_x,event_coord_y\n" +
			"g1,2023-24,Gonzaga\n" +
			"g1,2023-24,Gonzaga,true,fieldgoal,true,500,250\n"
		events, err := ingest.Read(strings.NewReader(short))

		Convey("Then the short row is skipped, not fatal", func() {
			So(err, ShouldBeNil)
			So(len(events), ShouldEqual, 1)
		})
	})
}
