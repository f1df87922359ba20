package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"proctools/internal/depot"
	"proctools/internal/pipeline"
	"proctools/internal/product"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "status [directory...]",
		Short: "Load products and report the depot inventory",
		Long: "Load all recognizable products from the given directories (or the " +
			"configured product_dirs) and print per-type counts and usage.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			dirs, err := ctx.productDirs(args)
			if err != nil {
				return err
			}
			if len(dirs) == 0 {
				return errors.New("no product directories given; pass directories or set paths.product_dirs")
			}
			if err := pipeline.CheckDirs(dirs); err != nil {
				return err
			}

			run, err := pipeline.Start(cfg, logger)
			if err != nil {
				return err
			}
			runErr := func() error {
				d := depot.New(product.Builtin(), run.Logger)

				var loadOpts []depot.LoadOption
				if flat || !cfg.Depot.Recursive {
					loadOpts = append(loadOpts, depot.NonRecursive())
				}
				if !cfg.Depot.RejectDuplicates {
					loadOpts = append(loadOpts, depot.AllowDuplicates())
				}
				loaded, err := d.Load(dirs, loadOpts...)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				types := d.Types()
				rows := make([][]string, 0, len(types))
				total := 0
				for _, typeName := range types {
					count, err := d.Count(typeName)
					if err != nil {
						return err
					}
					summary, err := d.UsageSummary(typeName)
					if err != nil {
						return err
					}
					total += count
					rows = append(rows, []string{
						typeHeading(typeName),
						typeName,
						strconv.Itoa(count),
						strconv.Itoa(len(summary[depot.StatusLoaded])),
						strconv.Itoa(len(summary[depot.StatusRetrieved])),
						strconv.Itoa(len(summary[depot.StatusProcessed])),
					})
				}

				if len(rows) > 0 {
					fmt.Fprintln(out, renderTable(
						[]string{"Product", "Type", "Total", "Loaded", "Retrieved", "Processed"},
						rows, 3, 4, 5, 6))
				}
				kind := statusOK
				if total == 0 {
					kind = statusWarn
				}
				fmt.Fprintln(out, renderStatusLine("Depot", kind,
					fmt.Sprintf("%d products across %d types (loaded %d this run)", total, len(types), loaded),
					stdoutIsTerminal()))
				return nil
			}()
			run.Finish(runErr)
			return runErr
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "Do not search directories recursively")
	return cmd
}
