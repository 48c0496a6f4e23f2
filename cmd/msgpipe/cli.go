package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/msgpipe/internal/config"
	"github.com/hpungsan/msgpipe/internal/errors"
	"github.com/hpungsan/msgpipe/internal/logger"
	"github.com/hpungsan/msgpipe/internal/menu"
	"github.com/hpungsan/msgpipe/internal/ops"
)

// newCLIApp creates the CLI application. With no command it starts the menu.
func newCLIApp(cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "msgpipe",
		Usage:   "Queue, stage and keep short text messages from the console",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "max-chars", Aliases: []string{"m"}, Usage: "Maximum message length in characters (default from config, 250)"},
			&cli.StringFlag{Name: "log-level", Usage: "Log level: debug|info|warn|error"},
			&cli.StringFlag{Name: "log-format", Usage: "Log format: text|json"},
		},
		Action: menuAction(cfg),
		Commands: []*cli.Command{
			menuCmd(cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// menuCmd creates the menu command.
func menuCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:   "menu",
		Usage:  "Start the interactive message menu (default)",
		Action: menuAction(cfg),
	}
}

// menuAction runs one interactive session. A session always ends with a nil error;
// only bad flags or logger settings fail the command.
func menuAction(cfg *config.Config) cli.ActionFunc {
	return func(c *cli.Context) error {
		effective, err := applyFlags(cfg, c)
		if err != nil {
			return outputError(err)
		}

		log, err := logger.New(effective.LogLevel, effective.LogFormat, c.App.ErrWriter)
		if err != nil {
			return outputError(errors.NewInvalidArgument(err.Error()))
		}

		out := c.App.Writer
		if c.App.Reader == os.Stdin && isTerminal() {
			printBanner(out)
		}

		sess := ops.NewSession(effective, out, log)
		log.Info("session started", "max_chars", sess.MaxChars())

		if err := menu.New(sess, c.App.Reader, out, log).Run(); err != nil {
			log.Warn("reading input failed", "error", err)
		}
		log.Info("session ended", "records", sess.Processing.Len())
		return nil
	}
}

// applyFlags returns a copy of cfg with command-line overrides applied.
func applyFlags(cfg *config.Config, c *cli.Context) (*config.Config, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	effective := *cfg

	if c.IsSet("max-chars") {
		maxChars := c.Int("max-chars")
		if maxChars <= 0 {
			return nil, errors.NewInvalidArgument(fmt.Sprintf("max-chars must be positive, got %d", maxChars))
		}
		effective.MessageMaxChars = maxChars
	}
	if level := c.String("log-level"); level != "" {
		effective.LogLevel = level
	}
	if format := c.String("log-format"); format != "" {
		effective.LogFormat = format
	}
	return &effective, nil
}

// printBanner displays a friendly banner when run interactively.
func printBanner(w io.Writer) {
	fmt.Fprintln(w, `
                                _
   _ __ ___  ___  __ _ _ __ (_)_ __   ___
  | '_ ' _ \/ __|/ _' | '_ \| | '_ \ / _ \
  | | | | | \__ \ (_| | |_) | | |_) |  __/
  |_| |_| |_|___/\__, | .__/|_| .__/ \___|
                 |___/|_|     |_|

  Queue, stage and keep short text messages`)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if pipeErr, ok := err.(*errors.PipeError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", pipeErr.Code, pipeErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
