// Package entropy computes byte-level Shannon entropy profiles of files.
//
// A file is read sequentially in fixed-size blocks and every block yields
// one [Sample]: its starting offset and its entropy in bits per byte, a value
// in [0, 8]. The samples, the block size and the rendered upper bound of the
// offset range make up a [Dataset].
//
//   - [Shannon]: entropy of a single byte slice
//   - [Histogram]: io.Writer that accumulates byte counts
//   - [Analyze]: block-wise profile of a file
//   - [Summarize], [HighEntropyRegions]: aggregate views over samples
//
// # Example
//
//	ds, err := entropy.Analyze(ctx, "firmware.bin", 256)
//	if err != nil {
//		return err
//	}
//	sum, _ := entropy.Summarize(ds.Samples)
package entropy
