package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/glgen/internal/config"
	"github.com/standardbeagle/glgen/internal/debug"
	"github.com/standardbeagle/glgen/internal/display"
	"github.com/standardbeagle/glgen/internal/gen"
)

// loadConfigWithOverrides loads configuration and applies CLI flag overrides.
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if registries := c.StringSlice("registry"); len(registries) > 0 {
		cfg.Registry = registries
	}
	if inputs := c.Args().Slice(); len(inputs) > 0 {
		cfg.Inputs = inputs
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Exclude = append(cfg.Exclude, excludes...)
	}
	if output := c.String("output"); output != "" {
		cfg.Output = output
	}
	if c.IsSet("prefix") {
		cfg.Prefix = c.String("prefix")
	}
	if ignores := c.StringSlice("ignore"); len(ignores) > 0 {
		cfg.Ignore = append(cfg.Ignore, ignores...)
	}
	if c.Bool("no-boilerplate") {
		cfg.Boilerplate = false
	}
	if c.Bool("silent") {
		cfg.Silent = true
	}
	if c.Bool("force") {
		cfg.Force = true
	}
	if jobs := c.Int("jobs"); jobs > 0 {
		cfg.Performance.MaxGoroutines = jobs
	}

	return cfg, nil
}

// runGenerate is the default action: one generation pass, or the watch loop
// when --watch is set.
func runGenerate(c *cli.Context) error {
	if c.Bool("debug") {
		debug.SetOutput(os.Stderr)
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		_ = cli.ShowAppHelp(c)
		return err
	}

	printer := display.NewPrinter(c.App.Writer, c.App.ErrWriter, cfg.Silent, true)
	generator := gen.New(cfg, printer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.Bool("watch") {
		return runWatch(ctx, c.String("config"), cfg, generator, printer)
	}

	_, err = generator.Run(ctx)
	return err
}
