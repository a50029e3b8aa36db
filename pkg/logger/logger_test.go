package logger_test

import (
	"context"
	"testing"

	"github.com/okian/halfcourt/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)
			So(func() {
				l.Info(context.Background(), "hello",
					logger.String("k", "v"),
					logger.Int("n", 3),
					logger.Float64("f", 1.5),
					logger.Bool("b", true))
			}, ShouldNotPanic)
		})

		Convey("Then named loggers derive from the global one", func() {
			So(logger.Named("pipeline"), ShouldNotBeNil)
		})

		Convey("Then level strings parse", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("WARN"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}
