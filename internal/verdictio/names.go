package verdictio

import "strconv"

func polyName(prefix string, g int) string {
	return prefix + strconv.Itoa(g)
}

func intParam(prefix string, n int) string {
	return prefix + strconv.Itoa(n)
}

func floatParam(prefix string, v float64) string {
	return prefix + strconv.FormatFloat(v, 'g', -1, 64)
}

func dustParam(k int, cutoff float64) string {
	return "dust" + strconv.Itoa(k) + "_" + strconv.FormatFloat(cutoff, 'g', -1, 64)
}
