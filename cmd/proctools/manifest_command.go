package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"proctools/internal/manifest"
	"proctools/internal/pipeline"
)

func newManifestCommand(ctx *commandContext) *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "manifest [directory...]",
		Short: "Compute a checksum manifest for product files",
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
				var cache *manifest.Cache
				if cfg.Manifest.CacheEnabled && !noCache {
					cache, err = manifest.OpenCache(cfg.Manifest.CachePath)
					if err != nil {
						return fmt.Errorf("open manifest cache: %w", err)
					}
					defer cache.Close()
				}

				builder := manifest.NewBuilder(cache, run.Logger)
				records, err := builder.Build(cmd.Context(), dirs)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				rows := make([][]string, 0, len(records))
				cached := 0
				for _, record := range records {
					if record.Cached {
						cached++
					}
					rows = append(rows, []string{
						record.Path,
						strconv.FormatInt(record.Size, 10),
						record.Digest,
					})
				}
				if len(rows) > 0 {
					fmt.Fprintln(out, renderTable([]string{"File", "Size", "MD5"}, rows, 2))
				}
				fmt.Fprintln(out, renderStatusLine("Manifest", statusOK,
					fmt.Sprintf("%d files (%d digests from cache)", len(records), cached),
					stdoutIsTerminal()))
				return nil
			}()
			run.Finish(runErr)
			return runErr
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Hash every file even when a cached digest exists")
	return cmd
}
