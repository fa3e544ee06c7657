package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/moyn-dev/moyn-cli/internal/api"
	"github.com/moyn-dev/moyn-cli/internal/config"
	"github.com/moyn-dev/moyn-cli/internal/logging"
	"github.com/moyn-dev/moyn-cli/internal/services"
)

type commandContext struct {
	configFlag  *string
	verboseFlag *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) verbose() bool {
	return c.verboseFlag != nil && *c.verboseFlag
}

// loggerValue builds the CLI logger once. Logging setup failures fall back to
// a no-op logger so they never block a command.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil || cfg == nil {
			c.logger = logging.NewNop()
			return
		}
		logCfg := *cfg
		if c.verbose() {
			logCfg.Logging.Level = "debug"
		}
		logger, err := logging.NewFromConfig(&logCfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logging.WithInvocationID(logger, uuid.NewString())
	})
	return c.logger
}

// apiClient returns a client for the stored session.
func (c *commandContext) apiClient() (*api.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	session, err := cfg.RequireSession()
	if err != nil {
		return nil, err
	}
	return api.New(session, c.clientOptions(cfg)...)
}

func (c *commandContext) clientOptions(cfg *config.Config) []api.Option {
	opts := api.ConfigOptions(cfg)
	return append(opts, api.WithLogger(c.loggerValue()))
}

// requestContext tags the command context with the running command path.
func requestContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return services.WithCommand(ctx, cmd.CommandPath())
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// commandError replaces a wrapped error's message with a user-facing one
// while keeping the underlying marker for errors.Is.
type commandError struct {
	message string
	err     error
}

func (e *commandError) Error() string { return e.message }

func (e *commandError) Unwrap() error { return e.err }

func newCommandError(err error, format string, args ...any) error {
	return &commandError{message: fmt.Sprintf(format, args...), err: err}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
