package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	service "github.com/okian/halfcourt/internal/app"
	"github.com/okian/halfcourt/internal/domain/court"
	"github.com/okian/halfcourt/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

const feed = `event_id,game_id,season,home_name,conference_game,type,shot_made,event_coord_x,event_coord_y
e1,g1,2023-24,Gonzaga,true,twopointmade,true,1065,300
e2,g1,2023-24,Gonzaga,true,threepointmiss,false,300,100
e3,g1,2023-24,Gonzaga,true,twopointmiss,false,900,250
e3,g1,2023-24,Gonzaga,true,twopointmiss,false,900,250
e4,g2,2023-24,Duke,false,rebound,false,500,250
e5,g2,2023-24,Duke,false,freethrow,true,,250
e6,g2,2022-23,Duke,false,threepointmade,true,200,120
`

func TestRun(t *testing.T) {
	_ = logger.Init()

	Convey("Given a pipeline over a small feed", t, func() {
		dir := t.TempDir()
		input := filepath.Join(dir, "pbp.csv")
		So(os.WriteFile(input, []byte(feed), 0o600), ShouldBeNil)
		out := filepath.Join(dir, "out")

		svc := service.New(
			service.WithInput(input),
			service.WithOutputDir(out),
			service.WithBinCount(20),
			service.WithMetricsTextfile(filepath.Join(dir, "halfcourt.prom")),
		)

		Convey("When running the batch", func() {
			sum, err := svc.Run(context.Background())
			So(err, ShouldBeNil)

			Convey("Then the summary accounts for every row", func() {
				So(sum.RowsRead, ShouldEqual, 7)
				So(sum.Duplicates, ShouldEqual, 1)
				So(sum.Report.Input, ShouldEqual, 6)
				So(sum.Report.UnknownType, ShouldEqual, 1)
				So(sum.Report.MissingCoordinate, ShouldEqual, 1)
				So(sum.Report.Transformed, ShouldEqual, 4)
			})

			Convey("Then group aggregates cover both seasons", func() {
				seasons := map[string]bool{}
				attempts := 0
				for _, g := range sum.Groups {
					seasons[g.Season] = true
					attempts += g.Attempts
				}
				So(seasons["2023-24"], ShouldBeTrue)
				So(seasons["2022-23"], ShouldBeTrue)
				So(attempts, ShouldEqual, sum.Report.Transformed)
			})

			Convey("Then charts and the summary table land in the output dir", func() {
				for _, name := range []string{"shot_chart.svg", "shot_count_heatmap.svg", "shot_pct_heatmap.svg"} {
					data, err := os.ReadFile(filepath.Join(out, name))
					So(err, ShouldBeNil)
					So(string(data), ShouldContainSubstring, "<svg")
				}
				data, err := os.ReadFile(filepath.Join(out, "summary.json"))
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, `"groups"`)
			})

			Convey("Then the metrics textfile is dumped", func() {
				data, err := os.ReadFile(filepath.Join(dir, "halfcourt.prom"))
				So(err, ShouldBeNil)
				So(strings.Contains(string(data), "halfcourt_pipeline_rows_read_total"), ShouldBeTrue)
			})
		})
	})

	Convey("Given a service without an input feed", t, func() {
		_, err := service.New().Run(context.Background())

		Convey("Then the run refuses to start", func() {
			So(err, ShouldWrap, service.ErrNoInput)
		})
	})

	Convey("Given an NBA-configured pipeline", t, func() {
		dir := t.TempDir()
		input := filepath.Join(dir, "pbp.csv")
		So(os.WriteFile(input, []byte(feed), 0o600), ShouldBeNil)

		svc := service.New(
			service.WithInput(input),
			service.WithOutputDir(filepath.Join(dir, "out")),
			service.WithCourtDimensions(court.NBA()),
		)

		Convey("Then the run still completes", func() {
			sum, err := svc.Run(context.Background())
			So(err, ShouldBeNil)
			So(sum.Report.Transformed, ShouldEqual, 4)
		})
	})
}
