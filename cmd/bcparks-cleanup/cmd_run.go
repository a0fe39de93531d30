package main

import (
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bcparks/scrape-cleanup/config"
	"github.com/bcparks/scrape-cleanup/converter"
	"github.com/bcparks/scrape-cleanup/internal/logging"
	"github.com/bcparks/scrape-cleanup/slugs"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var (
		configPath string
		only       []string
		parallel   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every converter listed in the run file",
		Long: `Runs the converters from the run file. A failing converter is reported
and the others still run.

Exit codes: 0 all converters succeeded, 1 all failed, 2 some failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return failed("%w", err)
			}
			applyFlagOverrides(cmd, root, cfg, parallel)

			log := root.logger
			if !cmd.Flags().Changed("log-level") {
				if l, err := logging.New(logging.Config{Level: cfg.Logging.Level}); err == nil {
					log = l
					defer func() { _ = l.Sync() }()
				}
			}

			convs, err := converter.BuildAll(cfg, slugs.Default(), log, only...)
			if err != nil {
				return failed("%w", err)
			}

			runner := converter.NewRunner(converter.WithParallelism(cfg.Parallelism), converter.WithLogger(log))
			report := runner.RunAll(cmd.Context(), convs)
			printResults(cmd.OutOrStdout(), report.Results)

			switch {
			case report.AllFailed():
				return &exitError{code: exitFailed, err: report.Err()}
			case len(report.Failed()) > 0:
				return &exitError{code: exitPartial, err: report.Err()}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "run file (default: cleanup.yml, config/cleanup.yml)")
	cmd.Flags().StringSliceVar(&only, "only", nil, "run only these converters")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "converters to run at once (default from run file)")
	return cmd
}

// applyFlagOverrides lets explicit CLI flags win over the run file.
func applyFlagOverrides(cmd *cobra.Command, root *rootOptions, cfg *config.AppConfig, parallel int) {
	if parallel > 0 {
		cfg.Parallelism = parallel
	}
	if cmd.Flags().Changed("indent") {
		cfg.Indent = root.indent
	}
	if cmd.Flags().Changed("on-missing") {
		for i := range cfg.Converters {
			cfg.Converters[i].OnMissingField = root.onMissing
		}
	}
}

func printResults(w io.Writer, results []converter.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Converter", "Status", "Read", "Written", "Skipped", "Duration"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetRowSeparator("")
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, res := range results {
		status := "ok"
		if !res.OK() {
			status = "failed: " + res.Err.Error()
		}
		table.Append([]string{
			res.Name,
			status,
			strconv.Itoa(res.Read),
			strconv.Itoa(res.Written),
			strconv.Itoa(res.Skipped),
			res.Duration.Round(time.Millisecond).String(),
		})
	}
	table.Render()
}
