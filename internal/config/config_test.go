package config_test

import (
	"testing"

	"github.com/okian/elorun/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigDefaults(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()

		convey.Convey("Then series weights default to no scaling", func() {
			convey.So(cfg.Bo1Score, convey.ShouldEqual, 1.0)
			convey.So(cfg.Bo3Score, convey.ShouldEqual, 1.0)
			convey.So(cfg.Bo5Score, convey.ShouldEqual, 1.0)
		})

		convey.Convey("And the default rating is the conventional 1000", func() {
			convey.So(cfg.DefaultRating, convey.ShouldEqual, 1000)
		})

		convey.Convey("And no brackets are assumed", func() {
			convey.So(cfg.KBrackets, convey.ShouldBeEmpty)
		})

		convey.Convey("And logging defaults to info", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
		})
	})
}
