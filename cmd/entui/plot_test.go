package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/entui/internal/config"
	"github.com/san-kum/entui/internal/entropy"
)

func TestPrintPlot(t *testing.T) {
	ds := entropy.NewDataset([]entropy.Sample{
		{Offset: 0, Entropy: 1},
		{Offset: 256, Entropy: 7.9},
		{Offset: 512, Entropy: 7.8},
		{Offset: 768, Entropy: 0},
	}, 256)
	cfg := config.DefaultConfig()
	cfg.HexOffsets = true

	var buf bytes.Buffer
	if err := printPlot(&buf, "blob.bin", ds, cfg); err != nil {
		t.Fatalf("printPlot failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"blob.bin",
		"blocks 4 x 256",
		"START",
		"0x00000100",
		"0x00000300",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
}

func TestPrintPlot_Empty(t *testing.T) {
	var buf bytes.Buffer
	ds := entropy.NewDataset(nil, 256)
	if err := printPlot(&buf, "empty.bin", ds, config.DefaultConfig()); err != nil {
		t.Fatalf("printPlot failed: %v", err)
	}
	if !strings.Contains(buf.String(), "nothing to plot") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPrintPlot_SingleBlock(t *testing.T) {
	var buf bytes.Buffer
	ds := entropy.NewDataset([]entropy.Sample{{Offset: 0, Entropy: 2}}, 256)
	if err := printPlot(&buf, "tiny.bin", ds, config.DefaultConfig()); err != nil {
		t.Fatalf("printPlot failed: %v", err)
	}
	if !strings.Contains(buf.String(), "no regions") {
		t.Errorf("expected no regions, got %q", buf.String())
	}
}
