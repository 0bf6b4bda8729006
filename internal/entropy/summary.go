package entropy

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// DefaultHighThreshold marks blocks that are most likely compressed or
// encrypted.
const DefaultHighThreshold = 7.2

// Summary holds aggregate statistics over a run of samples.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P90    float64 `json:"p90"`
}

// Summarize computes the Summary of samples. It returns ErrNoSamples for an
// empty slice.
func Summarize(samples []Sample) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}
	data := make(stats.Float64Data, len(samples))
	for i, s := range samples {
		data[i] = s.Entropy
	}

	var (
		sum Summary
		err error
	)
	sum.Count = len(data)
	if sum.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, err
	}
	if sum.Median, err = stats.Median(data); err != nil {
		return Summary{}, err
	}
	if sum.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, err
	}
	if sum.Min, err = stats.Min(data); err != nil {
		return Summary{}, err
	}
	if sum.Max, err = stats.Max(data); err != nil {
		return Summary{}, err
	}
	if sum.P90, err = stats.PercentileNearestRank(data, 90); err != nil {
		return Summary{}, err
	}
	return sum, nil
}

// Region is a half-open byte range [Start, End) of consecutive samples whose
// entropy is at or above a threshold.
type Region struct {
	Start   int64   `json:"start"`
	End     int64   `json:"end"`
	Blocks  int     `json:"blocks"`
	MeanEnt float64 `json:"mean_entropy"`
}

// Len returns the size of the region in bytes.
func (r Region) Len() int64 { return r.End - r.Start }

// HighEntropyRegions groups consecutive samples with entropy >= threshold.
// End is the offset of the sample following the run, or the dataset's
// TotalSize when the run reaches the last block.
func HighEntropyRegions(ds *Dataset, threshold float64) []Region {
	var (
		regions []Region
		cur     *Region
		acc     float64
	)
	closeRun := func(end int64) {
		cur.End = end
		cur.MeanEnt = acc / float64(cur.Blocks)
		regions = append(regions, *cur)
		cur, acc = nil, 0
	}

	for _, s := range ds.Samples {
		if s.Entropy >= threshold {
			if cur == nil {
				cur = &Region{Start: s.Offset}
			}
			cur.Blocks++
			acc += s.Entropy
			continue
		}
		if cur != nil {
			closeRun(s.Offset)
		}
	}
	if cur != nil {
		closeRun(int64(ds.TotalSize))
	}
	return regions
}

// Window returns the samples whose offsets fall inside [lo, hi].
func (d *Dataset) Window(lo, hi float64) []Sample {
	if hi < lo {
		return nil
	}
	i := sort.Search(len(d.Samples), func(k int) bool { return float64(d.Samples[k].Offset) >= lo })
	j := sort.Search(len(d.Samples), func(k int) bool { return float64(d.Samples[k].Offset) > hi })
	return d.Samples[i:j]
}

// RunningMean answers mean-entropy queries over offset windows from prefix
// sums, so each query costs two binary searches.
type RunningMean struct {
	offsets []int64
	sums    []float64
}

// NewRunningMean indexes samples, which must be sorted by offset.
func NewRunningMean(samples []Sample) *RunningMean {
	r := &RunningMean{
		offsets: make([]int64, len(samples)),
		sums:    make([]float64, len(samples)+1),
	}
	for i, s := range samples {
		r.offsets[i] = s.Offset
		r.sums[i+1] = r.sums[i] + s.Entropy
	}
	return r
}

// Window returns the number of samples with offsets in [lo, hi] and their
// mean entropy. The mean is 0 when the window is empty.
func (r *RunningMean) Window(lo, hi float64) (int, float64) {
	if hi < lo {
		return 0, 0
	}
	i := sort.Search(len(r.offsets), func(k int) bool { return float64(r.offsets[k]) >= lo })
	j := sort.Search(len(r.offsets), func(k int) bool { return float64(r.offsets[k]) > hi })
	n := j - i
	if n <= 0 {
		return 0, 0
	}
	return n, (r.sums[j] - r.sums[i]) / float64(n)
}
