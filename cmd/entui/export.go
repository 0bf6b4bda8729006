package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/entui/internal/export"
	"github.com/san-kum/entui/internal/logger"
)

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var format export.Format
	switch {
	case exportFormat != "":
		format, err = export.ParseFormat(exportFormat)
	case exportOut != "":
		format, err = export.FormatFromPath(exportOut)
	default:
		format = export.CSV
	}
	if err != nil {
		return err
	}
	if exportOut == "" && (format == export.PNG || format == export.SVG) {
		return fmt.Errorf("--out is required for %s output", format)
	}

	ds, err := analyzeFile(cmd.Context(), cmd.ErrOrStderr(), args[0], cfg)
	if err != nil || ds == nil {
		return err
	}

	opts := export.Options{
		Source:    args[0],
		Threshold: cfg.HighEntropyThreshold,
	}
	if exportOut == "" {
		return export.Write(cmd.OutOrStdout(), format, ds, opts)
	}
	if err := export.ToFile(exportOut, format, ds, opts); err != nil {
		return fmt.Errorf("export %s: %w", exportOut, err)
	}
	log.Info("exported", logger.F("format", string(format)), logger.F("path", exportOut))
	return nil
}
