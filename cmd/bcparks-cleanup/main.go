// Command bcparks-cleanup converts legacy BC Parks scrape exports into the
// cleaned JSON documents loaded by the CMS.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bcparks/scrape-cleanup/internal/logging"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1
	exitPartial = 2
)

// exitError carries a specific process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type rootOptions struct {
	logLevel  string
	indent    string
	onMissing string
	logger    logging.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bcparks-cleanup",
		Short: "Clean up legacy BC Parks scrape exports",
		Long: `Converts raw scrape snapshots ({"Items": [...]}) into normalized
documents, adding the canonical bcparks.ca page URL for every park that has one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.New(logging.Config{Level: opts.logLevel})
			if err != nil {
				return err
			}
			opts.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.indent, "indent", "", "indent output documents with this string")
	cmd.PersistentFlags().StringVar(&opts.onMissing, "on-missing", "", "missing required field policy (fail|skip)")

	cmd.AddCommand(
		newConvertCmd(opts),
		newRunCmd(opts),
		newListCmd(),
		newSlugsCmd(),
	)
	return cmd
}

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		os.Exit(exitOK)
	}
	var ee *exitError
	if errors.As(err, &ee) {
		os.Exit(ee.code)
	}
	os.Exit(exitFailed)
}

func failed(format string, args ...any) error {
	return &exitError{code: exitFailed, err: fmt.Errorf(format, args...)}
}
