package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tauraamui/gifreel/pkg/configdef"
	"github.com/tauraamui/gifreel/pkg/log"
	"github.com/tauraamui/xerror"
)

const (
	vendorName     = "tacusci"
	appName        = "gifreel"
	configFileName = "config.json"
	configEnvVar   = "GIFREEL_CONFIG"
)

var fs afero.Fs = afero.NewOsFs()

// load reads the config at path, or at the resolved default location when
// path is empty. Only a missing default file falls back to the built in
// values, an explicit path has to exist.
func load(path string) (configdef.Values, error) {
	values := defaultValues()

	explicit := len(path) > 0
	if !explicit {
		resolved, err := resolveConfigPath()
		if err != nil {
			return configdef.Values{}, err
		}
		path = resolved
	}

	log.Debug("Resolved config file location: %s", path)
	file, err := readConfigFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			log.Debug("No config file found, using defaults")
			return values, nil
		}
		return configdef.Values{}, xerror.Errorf("unable to read config file %s: %w", path, err)
	}

	if err := unmarshal(file, &values); err != nil {
		return configdef.Values{}, err
	}

	if err := values.RunValidate(); err != nil {
		return configdef.Values{}, err
	}

	return values, nil
}

var readConfigFile = func(path string) ([]byte, error) {
	return afero.ReadFile(fs, path)
}

func unmarshal(content []byte, values *configdef.Values) error {
	err := json.Unmarshal(content, values)
	if err != nil {
		return pkgerrors.Errorf("parsing configuration error: %v", err)
	}
	return nil
}

func resolveConfigPath() (string, error) {
	configPath := os.Getenv(configEnvVar)
	if len(configPath) > 0 {
		return configPath, nil
	}

	configParentDir, err := userConfigDir()
	if err != nil {
		return "", xerror.Errorf("unable to resolve %s location: %w", configFileName, err)
	}

	return filepath.Join(
		configParentDir,
		vendorName,
		appName,
		configFileName), nil
}

var userConfigDir = func() (string, error) {
	return os.UserConfigDir()
}
