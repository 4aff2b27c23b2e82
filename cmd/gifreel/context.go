package main

import (
	"os"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tauraamui/gifreel/internal/config"
	"github.com/tauraamui/gifreel/pkg/configdef"
	"github.com/tauraamui/gifreel/pkg/log"
	"github.com/tauraamui/gifreel/pkg/source"
)

const logLevelEnvVar = "GIFREEL_LOGGING_LEVEL"

// swapped out by tests
var (
	openSource          = source.Open
	outputFS   afero.Fs = afero.NewOsFs()
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     configdef.Values
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (configdef.Values, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		c.config, c.configErr = config.FileResolver(path).Resolve()
	})
	return c.config, c.configErr
}

// applyLogLevel sets the log level, the environment wins over the config.
func (c *commandContext) applyLogLevel(fromConfig string) {
	level := fromConfig
	if env := os.Getenv(logLevelEnvVar); len(env) > 0 {
		level = env
	}
	log.SetLevel(level)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
