package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	config "github.com/matchfit/scorebox/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no config file and no env overrides", t, func() {
		t.Setenv("SCOREBOX_CONFIG", "")

		cfg, err := config.Load(context.Background())

		Convey("Then defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.LockTimeoutMS, ShouldEqual, 2000)
			So(cfg.MaxRankingLimit, ShouldEqual, 500)
			So(cfg.SeedFile, ShouldBeEmpty)
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given env overrides", t, func() {
		t.Setenv("SCOREBOX_ADDR", ":7070")
		t.Setenv("SCOREBOX_LOG_LEVEL", "debug")
		t.Setenv("SCOREBOX_LOCK_TIMEOUT_MS", "500")

		cfg, err := config.Load(context.Background())

		Convey("Then env wins over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.LockTimeoutMS, ShouldEqual, 500)
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "scorebox.yaml")
		err := os.WriteFile(path, []byte("addr: \":6060\"\nmax_ranking_limit: 42\n"), 0o600)
		So(err, ShouldBeNil)
		t.Setenv("SCOREBOX_CONFIG", path)

		cfg, err := config.Load(context.Background())

		Convey("Then file values override defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
			So(cfg.MaxRankingLimit, ShouldEqual, 42)
		})

		Convey("And env still wins over the file", func() {
			t.Setenv("SCOREBOX_ADDR", ":5050")
			cfg, err := config.Load(context.Background())
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":5050")
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given invalid settings", t, func() {
		Convey("A non-positive lock timeout is rejected", func() {
			t.Setenv("SCOREBOX_LOCK_TIMEOUT_MS", "0")
			_, err := config.Load(context.Background())
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("A missing config file is reported as a load failure", func() {
			t.Setenv("SCOREBOX_CONFIG", "/nonexistent/scorebox.yaml")
			_, err := config.Load(context.Background())
			So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
		})
	})
}
