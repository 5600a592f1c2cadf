package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"velo-altitude/internal/profile"
)

type gpxFlags struct {
	input  string
	output string
	side   int
	seed   uint64
}

func (c *cli) newGPXCmd() *cobra.Command {
	var f gpxFlags

	cmd := &cobra.Command{
		Use:     "gpx",
		Short:   "Export the synthesized profile of one climb side as GPX",
		Example: "  velo-enrich gpx --input galibier.json --side 0 --output galibier-north.gpx",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGPX(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.input, "input", "", "JSON file with one climb")
	cmd.Flags().StringVar(&f.output, "output", "", "GPX file (default: stdout)")
	cmd.Flags().IntVar(&f.side, "side", 0, "Side index")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Generator seed (default: app.defaultSeed)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (c *cli) runGPX(cmd *cobra.Command, f gpxFlags) error {
	climbs, err := readClimbs(f.input)
	if err != nil {
		return err
	}
	if len(climbs) != 1 {
		return fmt.Errorf("expected exactly one climb in %s, found %d", f.input, len(climbs))
	}
	summary := climbs[0]

	seed := c.cfg.App.DefaultSeed
	if cmd.Flags().Changed("seed") {
		seed = f.seed
	}

	synth := profile.NewSynthesizer(profile.WithPointsPerKm(c.cfg.App.PointsPerKm))
	p, err := synth.Generate(summary, f.side, seed)
	if err != nil {
		return err
	}

	doc, err := profile.ToGPX(p, fmt.Sprintf("%s (%s)", summary.Name, p.Metadata.Side))
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(cmd, f.output)
	if err != nil {
		return err
	}
	if _, err := out.Write(doc); err != nil {
		_ = closeOut()
		return fmt.Errorf("failed to write gpx: %w", err)
	}
	if err := closeOut(); err != nil {
		return err
	}

	c.logger.Info("exported gpx", "climb", summary.Name, "side", p.Metadata.Side, "points", len(p.Points), "seed", seed)
	return nil
}
