package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hirelens/hirelens/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"HIRELENS_CONFIG",
		"HIRELENS_ADDR",
		"HIRELENS_LOG_LEVEL",
		"HIRELENS_STORE_PATH",
		"HIRELENS_HIRED_LIST_LIMIT",
		"HIRELENS_TOP_RECRUITER_LIMIT",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.StorePath, convey.ShouldEqual, "hirelens.db")
				convey.So(cfg.HiredListLimit, convey.ShouldEqual, 50)
				convey.So(cfg.TopRecruiterLimit, convey.ShouldEqual, 20)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("HIRELENS_ADDR", ":8080")
			_ = os.Setenv("HIRELENS_LOG_LEVEL", "debug")
			_ = os.Setenv("HIRELENS_STORE_PATH", ":memory:")
			_ = os.Setenv("HIRELENS_HIRED_LIST_LIMIT", "25")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.StorePath, convey.ShouldEqual, ":memory:")
				convey.So(cfg.HiredListLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			yaml := "addr: \":7070\"\nstore_path: \"/tmp/test.db\"\ntop_recruiter_limit: 10\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("HIRELENS_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.StorePath, convey.ShouldEqual, "/tmp/test.db")
				convey.So(cfg.TopRecruiterLimit, convey.ShouldEqual, 10)
			})

			convey.Convey("And env vars override the file", func() {
				_ = os.Setenv("HIRELENS_ADDR", ":6060")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the listen address is blanked out", func() {
			clearConfigEnvVars()
			_ = os.Setenv("HIRELENS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then loading fails with an invalid-config kind", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
			})
		})
	})
}
