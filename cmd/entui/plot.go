package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/entui/internal/config"
	"github.com/san-kum/entui/internal/entropy"
	"github.com/san-kum/entui/internal/nav"
)

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ds, err := analyzeFile(cmd.Context(), cmd.ErrOrStderr(), args[0], cfg)
	if err != nil || ds == nil {
		return err
	}
	return printPlot(cmd.OutOrStdout(), args[0], ds, cfg)
}

func printPlot(w io.Writer, path string, ds *entropy.Dataset, cfg *config.Config) error {
	v := nav.New(ds.TotalSize, ds.BlockSize)
	if cfg.HexOffsets {
		v = v.Apply(nav.ToggleHex)
	}

	sum, err := entropy.Summarize(ds.Samples)
	if err != nil {
		fmt.Fprintf(w, "%s: empty file, nothing to plot\n", path)
		return nil
	}

	data := ds.Entropies()
	if len(data) == 1 {
		data = append(data, data[0])
	}
	l := v.Labels()
	graph := asciigraph.Plot(data,
		asciigraph.Height(cfg.Plot.Height),
		asciigraph.Width(cfg.Plot.Width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(entropy.MaxEntropy),
		asciigraph.Caption(fmt.Sprintf("%s  %s .. %s .. %s", path, l[0], l[1], l[2])),
	)
	fmt.Fprintln(w, graph)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "blocks %d x %d bytes\n", sum.Count, ds.BlockSize)
	fmt.Fprintf(w, "mean %.3f  median %.3f  stddev %.3f  min %.3f  max %.3f  p90 %.3f\n",
		sum.Mean, sum.Median, sum.StdDev, sum.Min, sum.Max, sum.P90)

	regions := entropy.HighEntropyRegions(ds, cfg.HighEntropyThreshold)
	if len(regions) == 0 {
		fmt.Fprintf(w, "no regions at or above %.2f bits/byte\n", cfg.HighEntropyThreshold)
		return nil
	}

	fmt.Fprintf(w, "\nregions at or above %.2f bits/byte:\n", cfg.HighEntropyThreshold)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "START\tEND\tBYTES\tBLOCKS\tMEAN")
	for _, r := range regions {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.3f\n",
			v.FormatOffset(uint64(r.Start)),
			v.FormatOffset(uint64(r.End)),
			r.Len(),
			r.Blocks,
			r.MeanEnt,
		)
	}
	return tw.Flush()
}
