package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"velo-altitude/internal/enrichment"
	"velo-altitude/internal/location"
	"velo-altitude/internal/profile"
)

type batchFlags struct {
	input  string
	output string
	side   int
	seed   uint64
	force  bool
}

func (c *cli) newBatchCmd() *cobra.Command {
	var f batchFlags

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Enrich every climb in a JSON file",
		Long: `Enrich every side of every climb in the input file and write a JSON
report with the enriched records. Sides already present in the store are
returned as stored unless --force is given.`,
		Example: "  velo-enrich batch --input climbs.json --output enriched.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.input, "input", "", "JSON file with a climb or an array of climbs")
	cmd.Flags().StringVar(&f.output, "output", "", "Report file (default: stdout)")
	cmd.Flags().IntVar(&f.side, "side", -1, "Only enrich this side index (default: all sides)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Generator seed (default: app.defaultSeed)")
	cmd.Flags().BoolVar(&f.force, "force", false, "Regenerate records that already exist")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (c *cli) runBatch(cmd *cobra.Command, f batchFlags) error {
	ctx := cmd.Context()

	climbs, err := readClimbs(f.input)
	if err != nil {
		return err
	}

	weatherSvc, err := c.deps.newWeather(c.logger)
	if err != nil {
		return err
	}
	records, closeStore, err := c.deps.newStore(ctx, c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			c.logger.Warn("failed to close store", "error", err)
		}
	}()

	var summitLookup location.Service
	if c.cfg.App.ResolveLocation {
		summitLookup = c.deps.newLocator(c.logger)
	}

	svc := enrichment.NewService(
		profile.NewSynthesizer(profile.WithPointsPerKm(c.cfg.App.PointsPerKm)),
		weatherSvc,
		summitLookup,
		records,
		enrichment.Options{DefaultSeed: c.cfg.App.DefaultSeed, WriteInterval: c.cfg.App.WriteInterval},
		c.logger,
	)

	opts := enrichment.BatchOptions{Force: f.force}
	if f.side >= 0 {
		opts.Side = &f.side
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = &f.seed
	}

	report, runErr := svc.EnrichBatch(ctx, climbs, opts)
	if report != nil {
		if err := writeReport(cmd, f.output, report); err != nil {
			return err
		}
		c.logger.Info(report.String())
	}
	if runErr != nil {
		return runErr
	}
	if report.Failed > 0 {
		return fmt.Errorf("%d climb side(s) failed to enrich", report.Failed)
	}
	return nil
}

func writeReport(cmd *cobra.Command, path string, report *enrichment.BatchReport) error {
	out, closeOut, err := openOutput(cmd, path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		_ = closeOut()
		return fmt.Errorf("failed to write report: %w", err)
	}
	return closeOut()
}
