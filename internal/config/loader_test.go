package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/scorebook/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"SCOREBOOK_CONFIG",
		"SCOREBOOK_ADDR",
		"SCOREBOOK_LOG_LEVEL",
		"SCOREBOOK_DB_PATH",
		"SCOREBOOK_BCRYPT_COST",
		"SCOREBOOK_SEED_DEMO",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then defaults come back unchanged", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DBPath, convey.ShouldBeEmpty)
				convey.So(cfg.BcryptCost, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When environment variables are set", func() {
			_ = os.Setenv("SCOREBOOK_ADDR", ":9090")
			_ = os.Setenv("SCOREBOOK_DB_PATH", "/tmp/scorebook.db")
			_ = os.Setenv("SCOREBOOK_LOG_LEVEL", "debug")
			_ = os.Setenv("SCOREBOOK_SEED_DEMO", "true")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env vars override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DBPath, convey.ShouldEqual, "/tmp/scorebook.db")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.SeedDemo, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a YAML file is named by SCOREBOOK_CONFIG", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			yamlContent := "addr: \":7070\"\nbcrypt_cost: 12\n"
			convey.So(os.WriteFile(path, []byte(yamlContent), 0o600), convey.ShouldBeNil)

			_ = os.Setenv("SCOREBOOK_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.BcryptCost, convey.ShouldEqual, 12)
			})

			convey.Convey("And env vars still override the file", func() {
				_ = os.Setenv("SCOREBOOK_ADDR", ":6060")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the file does not exist", func() {
			_ = os.Setenv("SCOREBOOK_CONFIG", "/does/not/exist.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then the error matches ErrLoadConfig", func() {
				convey.So(err, convey.ShouldWrap, config.ErrLoadConfig)
			})
		})

		convey.Convey("When validation fails", func() {
			_ = os.Setenv("SCOREBOOK_BCRYPT_COST", "99")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then the error matches ErrInvalidConfig", func() {
				convey.So(err, convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})
	})
}
