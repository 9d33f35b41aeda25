package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/wireframe/internal/config"
	"github.com/alexisbeaulieu97/wireframe/internal/fakedata"
	"github.com/alexisbeaulieu97/wireframe/internal/logger"
	wferrors "github.com/alexisbeaulieu97/wireframe/pkg/errors"
)

// extraFakerOptions is appended to every faker the CLI builds.
var extraFakerOptions []fakedata.Option

// appContext bundles the services created once per invocation.
type appContext struct {
	cfg   *config.Config
	log   *logger.Logger
	faker *fakedata.Faker
}

func (a *appContext) load(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		hint := wferrors.Hint(err)
		if hint == "" {
			hint = "Check the --config path and try again."
		}
		return newCommandError("load configuration", flags.configPath, err, hint)
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.LogFormat == config.LogFormatConsole,
		Writer:        cmd.ErrOrStderr(),
		Component:     "cli",
	})
	if err != nil {
		return newCommandError("create logger", level, err, "Use one of trace, debug, info, warn, error.")
	}

	opts := []fakedata.Option{
		fakedata.WithAvatarURL(cfg.Services.AvatarURL),
		fakedata.WithImageURL(cfg.Services.ImageURL),
	}
	opts = append(opts, extraFakerOptions...)

	a.cfg = cfg
	a.log = log.WithCorrelationID("").WithFields(map[string]any{"command": cmd.Name()})
	a.faker = fakedata.New(opts...)
	a.log.Debug("command starting")
	return nil
}
