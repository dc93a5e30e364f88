package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"reflect"

	"github.com/ReactPush/react-push-client/internal/helper"
	"github.com/ReactPush/react-push-client/pkg/constants"
	"github.com/ReactPush/react-push-client/pkg/locator"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotenvPath = ".env"

var Env LocatorConfig

type LocatorConfig struct {
	AppID          string   `env:"BL_APP_ID" envDefault:"com.reactpush.app"`
	DataDir        string   `env:"BL_DATA_DIR"`
	BundleDirName  string   `env:"BL_BUNDLE_DIR_NAME" envDefault:"ReactPushBundles"`
	MarkerFileName string   `env:"BL_MARKER_FILE_NAME" envDefault:"ReactPushBundlePath.txt"`
	ResourceDirs   []string `env:"BL_RESOURCE_DIRS" envSeparator:":"`
	BundleName     string   `env:"BL_BUNDLE_NAME" envDefault:"main"`
	BundleExt      string   `env:"BL_BUNDLE_EXT" envDefault:"jsbundle"`
}

func Load() {
	loadEnv()
}

func loadEnv() {
	if err := godotenv.Load(dotenvPath); err != nil {
		slog.Debug("No .env file found, skipping...")
	} else {
		slog.Debug("Loaded .env file", "path", dotenvPath)
	}

	Env = helper.Must(env.ParseAs[LocatorConfig]())

	t := reflect.TypeOf(Env)
	v := reflect.ValueOf(Env)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)

		env_var_name := field.Tag.Get("env")
		env_var_value := fmt.Sprintf("%v", value)

		if value.IsZero() {
			env_var_value = constants.Empty
		}

		slog.Debug("Env var set", "name", env_var_name, "value", env_var_value)
	}

	if Env.DataDir == "" {
		Env.DataDir = helper.Must(locator.DefaultDataDir(Env.AppID))
	}

	absDataDir := helper.Must(filepath.Abs(Env.DataDir))

	slog.Debug(
		"Data dir resolved",
		"from", Env.DataDir,
		"to", helper.TildePath(absDataDir),
	)

	Env.DataDir = absDataDir
}

// Resources returns the default-bundle lookup: the configured resource dirs,
// or the locations next to the executable when none are set.
func (c LocatorConfig) Resources() (locator.ResourceLookup, error) {
	if len(c.ResourceDirs) > 0 {
		return locator.DirResources{Roots: c.ResourceDirs}, nil
	}

	return locator.ExecutableResources()
}

func (c LocatorConfig) NewLocator(log *slog.Logger) (*locator.Locator, error) {
	resources, err := c.Resources()
	if err != nil {
		return nil, err
	}

	return locator.New(
		c.DataDir,
		resources,
		locator.WithBundleDirName(c.BundleDirName),
		locator.WithMarkerFileName(c.MarkerFileName),
		locator.WithLogger(log),
	), nil
}
