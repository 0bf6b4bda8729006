package export

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/san-kum/entui/internal/entropy"
)

// Report is the JSON document written by WriteJSON.
type Report struct {
	Source    string           `json:"source,omitempty"`
	BlockSize int              `json:"block_size"`
	TotalSize int64            `json:"total_size"`
	Threshold float64          `json:"threshold"`
	Summary   *entropy.Summary `json:"summary,omitempty"`
	Regions   []entropy.Region `json:"regions"`
	Samples   []entropy.Sample `json:"samples"`
}

// NewReport collects the samples, summary and high-entropy regions of ds.
func NewReport(ds *entropy.Dataset, opts Options) (*Report, error) {
	opts = opts.withDefaults()
	r := &Report{
		Source:    opts.Source,
		BlockSize: ds.BlockSize,
		TotalSize: int64(ds.TotalSize),
		Threshold: opts.Threshold,
		Regions:   entropy.HighEntropyRegions(ds, opts.Threshold),
		Samples:   ds.Samples,
	}
	sum, err := entropy.Summarize(ds.Samples)
	switch {
	case err == nil:
		r.Summary = &sum
	case !errors.Is(err, entropy.ErrNoSamples):
		return nil, err
	}
	if r.Regions == nil {
		r.Regions = []entropy.Region{}
	}
	if r.Samples == nil {
		r.Samples = []entropy.Sample{}
	}
	return r, nil
}

// WriteJSON writes an indented Report.
func WriteJSON(w io.Writer, ds *entropy.Dataset, opts Options) error {
	r, err := NewReport(ds, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
