// Package cli implements the invocli commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/invocli/invocli/internal/app"
	ierr "github.com/invocli/invocli/internal/errors"
	"github.com/spf13/cobra"
)

// Loader builds the dependency container for a config file path
type Loader func(configFile string) (*app.Container, error)

type CLI struct {
	configFile string
	container  *app.Container

	load     Loader
	prompter Prompter
	out      io.Writer
	errOut   io.Writer
	now      func() time.Time
}

type Option func(*CLI)

func WithLoader(load Loader) Option {
	return func(c *CLI) { c.load = load }
}

func WithPrompter(p Prompter) Option {
	return func(c *CLI) { c.prompter = p }
}

func WithOutput(out, errOut io.Writer) Option {
	return func(c *CLI) {
		c.out = out
		c.errOut = errOut
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *CLI) { c.now = now }
}

func New(opts ...Option) *CLI {
	c := &CLI{
		load:     app.New,
		prompter: NewSurveyPrompter(),
		out:      os.Stdout,
		errOut:   os.Stderr,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// deps loads the container once per process
func (c *CLI) deps() (*app.Container, error) {
	if c.container != nil {
		return c.container, nil
	}
	container, err := c.load(c.configFile)
	if err != nil {
		return nil, err
	}
	c.container = container
	return container, nil
}

// Command builds the command tree
func (c *CLI) Command(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "invocli",
		Short:         "Create PDF invoices from the command line",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default: config.yaml in the data dir, . or ./config)")

	root.AddCommand(
		c.generateCommand(),
		c.generateFromFileCommand(),
		c.calcCommand(),
		c.initCommand(),
		c.companyCommand(),
		c.customerCommand(),
		c.currenciesCommand(),
	)
	return root
}

// Run executes args and returns the process exit code
func (c *CLI) Run(version string, args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := c.Command(version)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	c.printError(err)
	return ierr.ExitCodeFromErr(err)
}

func (c *CLI) printError(err error) {
	var se *silentError
	if errors.As(err, &se) {
		return
	}
	var ae *actionError
	if errors.As(err, &ae) {
		fmt.Fprintf(c.errOut, "Error %s: %s\n", ae.action, ierr.DisplayMessage(ae.err))
		return
	}
	fmt.Fprintf(c.errOut, "Error: %s\n", ierr.DisplayMessage(err))
}

// actionError remembers what the command was doing, as in "Error adding company: ..."
type actionError struct {
	action string
	err    error
}

func (e *actionError) Error() string {
	return e.action + ": " + e.err.Error()
}

func (e *actionError) Unwrap() error {
	return e.err
}

func failed(action string, err error) error {
	if err == nil {
		return nil
	}
	return &actionError{action: action, err: err}
}

// silentError carries an exit code for errors that were already reported
type silentError struct {
	err error
}

func (e *silentError) Error() string {
	return e.err.Error()
}

func (e *silentError) Unwrap() error {
	return e.err
}

func silent(err error) error {
	return &silentError{err: err}
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *CLI) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}
