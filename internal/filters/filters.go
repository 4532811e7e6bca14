// Package filters implements the auxiliary, non-automaton read filters:
// minimum length, mean base quality, and DUST low-complexity scoring
// (§4.4). Each is a cheap, closed-form scan over a read's bytes, applied
// by the classifier ahead of the (more expensive) automaton scan.
package filters

// TooShort reports whether seq is shorter than minLength. minLength <= 0
// disables the check.
func TooShort(seq string, minLength int) bool {
	return minLength > 0 && len(seq) < minLength
}

// MeanQuality returns the arithmetic mean of the raw quality byte values
// in qual. The Phred offset is intentionally not subtracted: thresholds
// must be specified in raw-byte terms (§4.4, §9 Open Question).
func MeanQuality(qual string) float64 {
	if len(qual) == 0 {
		return 0
	}
	var sum int
	for i := 0; i < len(qual); i++ {
		sum += int(qual[i])
	}
	return float64(sum) / float64(len(qual))
}

// LowQuality reports whether qual's mean raw byte value is below
// threshold. threshold <= 0 disables the check.
func LowQuality(qual string, threshold float64) bool {
	return threshold > 0 && MeanQuality(qual) < threshold
}

// baseHash maps a base (case-insensitively) to the digit used in the
// rolling DUST hash: N->1, A->2, C->3, G->4, T->5. Any other byte maps to
// 0, matching the legacy behavior of leaving unmapped characters out of
// the unordered_map lookup (a zero-value digit).
func baseHash(c byte) int {
	switch c {
	case 'a', 'A':
		return 2
	case 'c', 'C':
		return 3
	case 'g', 'G':
		return 4
	case 't', 'T':
		return 5
	case 'n', 'N':
		return 1
	default:
		return 0
	}
}

// DustScore computes the simplified DUST complexity score of §4.4.
//
// The legacy tool accumulates counts per k-mer hash bucket in a
// std::unordered_map, then makes a second pass over the buckets (in that
// map's iteration order) computing a *cumulative* running score and
// adding that running value to the total on every bucket — not just each
// bucket's own triangular-number contribution, but the sum-so-far,
// re-added each time. The C++ standard leaves unordered_map iteration
// order unspecified; reproducing the formula faithfully in Go requires
// picking a concrete, deterministic order, so this implementation uses
// first-seen (scan) order — the natural analogue of "whatever order the
// buckets were populated in". For a pure homopolymer (a single bucket)
// this choice is immaterial: the boundary property of §8.7 holds exactly
// regardless of order.
func DustScore(seq string, k int) float64 {
	if k < 1 || len(seq) < k {
		return 0
	}

	counts := make(map[int]int)
	var order []int
	maxPow := 1
	for i := 0; i < k-1; i++ {
		maxPow *= 10
	}

	hash := 0
	for i := 0; i < len(seq); i++ {
		hash = hash*10 + baseHash(seq[i])
		if i >= k-1 {
			if counts[hash] == 0 {
				order = append(order, hash)
			}
			counts[hash]++
			hash -= (hash / maxPow) * maxPow
		}
	}

	var score, total float64
	for _, h := range order {
		c := counts[h]
		score += float64(c*(c-1)) / 2
		total += score
	}

	windows := len(seq) - k + 1
	if windows <= 0 {
		return 0
	}
	return total / float64(windows)
}

// LowComplexity reports whether seq's DUST score (parameter k) exceeds
// cutoff. cutoff <= 0 disables the check.
func LowComplexity(seq string, k int, cutoff float64) bool {
	return cutoff > 0 && DustScore(seq, k) > cutoff
}
