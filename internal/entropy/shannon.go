package entropy

import "math"

// MaxEntropy is the entropy of a uniform distribution over all 256 byte values.
const MaxEntropy = 8.0

// Histogram counts byte occurrences. It satisfies io.Writer so a block can be
// fed to it directly; use Reset before reusing it for another block.
type Histogram struct {
	counts [256]uint64
	total  uint64
}

// Write adds every byte of p to the histogram. It never fails.
func (h *Histogram) Write(p []byte) (int, error) {
	for _, b := range p {
		h.counts[b]++
	}
	h.total += uint64(len(p))
	return len(p), nil
}

// Reset clears all counts.
func (h *Histogram) Reset() {
	h.counts = [256]uint64{}
	h.total = 0
}

// Len returns the number of bytes written since the last reset.
func (h *Histogram) Len() uint64 { return h.total }

// Count returns the number of occurrences of b.
func (h *Histogram) Count(b byte) uint64 { return h.counts[b] }

// Entropy returns the Shannon entropy of the counted bytes in bits per byte.
// An empty histogram has entropy 0.
func (h *Histogram) Entropy() float64 {
	if h.total == 0 {
		return 0
	}
	n := float64(h.total)
	var e float64
	for _, c := range h.counts {
		if c == 0 {
			continue
		}
		p := float64(c) / n
		e -= p * math.Log2(p)
	}
	// a single symbol gives -1*log2(1) = -0; normalize the sign
	if e <= 0 {
		return 0
	}
	return e
}

// Shannon returns the entropy of data in bits per byte, in [0, 8].
func Shannon(data []byte) float64 {
	var h Histogram
	h.Write(data)
	return h.Entropy()
}
