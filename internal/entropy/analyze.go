package entropy

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
)

// DefaultBlockSize is the block size used when none is configured.
const DefaultBlockSize = 256

// Sample is the entropy of one block, keyed by the offset of its first byte.
type Sample struct {
	Offset  int64   `json:"offset"`
	Entropy float64 `json:"entropy"`
}

// Dataset is the complete, immutable entropy profile of a file.
type Dataset struct {
	Samples   []Sample
	BlockSize int
	// TotalSize is the offset of the last sample plus one block. It can
	// exceed the real file length when the last block is short.
	TotalSize float64
}

// NewDataset derives TotalSize from the samples and block size.
func NewDataset(samples []Sample, blockSize int) *Dataset {
	var last int64
	if len(samples) > 0 {
		last = samples[len(samples)-1].Offset
	}
	return &Dataset{
		Samples:   samples,
		BlockSize: blockSize,
		TotalSize: float64(last) + float64(blockSize),
	}
}

// Offsets returns the sample offsets as floats, in order.
func (d *Dataset) Offsets() []float64 {
	xs := make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		xs[i] = float64(s.Offset)
	}
	return xs
}

// Entropies returns the sample entropies, in order.
func (d *Dataset) Entropies() []float64 {
	ys := make([]float64, len(d.Samples))
	for i, s := range d.Samples {
		ys[i] = s.Entropy
	}
	return ys
}

// Analyze reads the file at path block by block and returns its profile.
// The file is opened read-only and closed before Analyze returns.
func Analyze(ctx context.Context, path string, blockSize int) (*Dataset, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &AnalysisError{Path: path, Wrapped: errors.Join(ErrFileNotFound, err)}
		}
		return nil, &AnalysisError{Path: path, Wrapped: err}
	}
	defer f.Close()

	ds, err := AnalyzeReader(ctx, f, blockSize)
	if err != nil {
		var ae *AnalysisError
		if errors.As(err, &ae) {
			ae.Path = path
		}
		return nil, err
	}
	return ds, nil
}

// AnalyzeReader computes the profile of everything readable from r. Reads are
// sequential; each read fills a whole block unless the stream ends first, in
// which case the remainder still contributes one sample.
func AnalyzeReader(ctx context.Context, r io.Reader, blockSize int) (*Dataset, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}
	br := bufio.NewReaderSize(r, blockSize)
	buf := make([]byte, blockSize)
	samples := make([]Sample, 0, 64)
	var h Histogram
	var offset int64

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := io.ReadFull(br, buf)
		if n > 0 {
			h.Reset()
			h.Write(buf[:n])
			samples = append(samples, Sample{Offset: offset, Entropy: h.Entropy()})
			offset += int64(n)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, &AnalysisError{Offset: offset, Wrapped: err}
		}
	}

	return NewDataset(samples, blockSize), nil
}
