package config_test

import (
	"testing"

	"github.com/okian/halfcourt/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a default config", t, func() {
		cfg := config.New()

		Convey("Then defaults are sane", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.CourtPreset, ShouldEqual, config.PresetNCAA)
			So(cfg.HexBins, ShouldEqual, 30)
			So(cfg.ArcStep, ShouldBeGreaterThan, 0)
			So(cfg.DistancePrecision, ShouldEqual, 3)
			So(cfg.PixelsPerFoot, ShouldEqual, 10)
		})

		Convey("Then the preset resolves to NCAA dimensions", func() {
			d, err := cfg.Dimensions()
			So(err, ShouldBeNil)
			So(d.ThreePointRadius, ShouldEqual, 20.75)
		})
	})
}

func TestDimensions(t *testing.T) {
	Convey("Given a config with the NBA preset", t, func() {
		cfg := config.New()
		cfg.CourtPreset = "nba"

		Convey("Then NBA dimensions resolve", func() {
			d, err := cfg.Dimensions()
			So(err, ShouldBeNil)
			So(d.ThreePointRadius, ShouldEqual, 23.75)
		})
	})

	Convey("Given an unknown preset", t, func() {
		cfg := config.New()
		cfg.CourtPreset = "fiba"

		Convey("Then resolution fails with ErrInvalidConfig", func() {
			_, err := cfg.Dimensions()
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}
