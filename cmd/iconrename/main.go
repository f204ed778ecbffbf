// Package main provides the CLI entry point for iconrename.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"iconrename/internal/config"
	"iconrename/internal/orchestrator"
	"iconrename/internal/output"
	"iconrename/internal/prompt"
)

type CLI struct {
	Directory string `arg:"" optional:"" help:"Directory containing the SVG icons. Defaults to the configured directory, then one line read from stdin, then the current directory."`
	Config    string `short:"c" help:"Configuration file (.json, .toml, .yaml or .yml)." placeholder:"FILE"`
	Watch     bool   `short:"w" help:"Keep watching the directory and rename new icons as they appear."`
	Verbose   bool   `short:"v" help:"Show skipped entries and a summary of the run."`
	NoColor   bool   `help:"Disable colored output."`
	NoPrompt  bool   `help:"Never read the directory from stdin."`
}

// environment carries the process streams so Run can be exercised in tests.
type environment struct {
	ctx         context.Context
	stdin       io.Reader
	interactive bool
	output      output.Config
}

func defaultEnvironment() *environment {
	return &environment{
		ctx:         context.Background(),
		stdin:       os.Stdin,
		interactive: prompt.IsInteractive(),
		output:      output.DefaultConfig(),
	}
}

func (c *CLI) Run(env *environment) error {
	cfg := config.DefaultConfiguration()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.Verbose {
		cfg.Verbose = true
	}
	if c.Watch {
		cfg.Watch.Enabled = true
	}

	outConfig := env.output
	outConfig.Verbose = cfg.Verbose
	if c.NoColor {
		outConfig.Color = false
	}
	out := output.New(outConfig)

	for _, warning := range cfg.Warnings() {
		out.Warn("%s", warning)
	}

	dir, err := c.resolveDirectory(cfg, env, outConfig.Writer)
	if err != nil {
		return err
	}
	if err := config.ValidateDirectory(dir); err != nil {
		out.Error("%v", err)
		return nil
	}

	orch := orchestrator.New(cfg, out)

	out.Info("Processing directory: %s", dir)
	out.Rule()
	start := time.Now()
	result, err := orch.Run(dir)
	if err != nil {
		out.Error("%v", err)
	} else {
		out.Verbose("%s", orchestrator.GenerateSummary(result, time.Since(start)))
	}
	out.Rule()
	out.Info("Done")

	if !cfg.Watch.Enabled || err != nil {
		return nil
	}

	ctx, stop := signal.NotifyContext(env.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out.Info("Watching %s for new icons (press Ctrl-C to stop)", dir)
	summary, err := orch.Watch(ctx, dir)
	if err != nil {
		return err
	}
	out.Info("Watched for %s: %d renamed, %d preserved, %d skipped",
		summary.Duration.Round(time.Second), summary.FilesRenamed, summary.FilesPreserved, summary.FilesSkipped)
	return nil
}

// resolveDirectory picks the directory from the argument, the config file,
// one line of stdin, or the current working directory, in that order.
func (c *CLI) resolveDirectory(cfg *config.Configuration, env *environment, promptOut io.Writer) (string, error) {
	input := c.Directory
	if input == "" {
		input = cfg.Directory
	}
	if input == "" && !c.NoPrompt {
		// Piped input is read the same way; only the question is left out.
		prompter := prompt.NewDirectoryPrompter(env.stdin, promptOut)
		read := prompter.ReadDirectory
		if env.interactive {
			read = prompter.PromptForDirectory
		}
		answer, err := read()
		if err != nil {
			return "", err
		}
		input = answer
	}
	return config.ResolveDirectory(input)
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("iconrename"),
		kong.Description("Rename SVG icons to the -light naming convention."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI

	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = ctx.Run(defaultEnvironment())
	ctx.FatalIfErrorf(err)
}
