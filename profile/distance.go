package profile

import "math"

// Distance pads the shorter of u and v with trailing zeros and returns the
// Euclidean distance between the equal-length results. Neither argument is
// modified and the result is symmetric in u and v.
func Distance(u, v Vector) float64 {
	long, short := u, v
	if len(short) > len(long) {
		long, short = short, long
	}
	var sum float64
	for i, x := range long {
		var y float64
		if i < len(short) {
			y = short[i]
		}
		d := x - y
		sum += d * d
	}

	return math.Sqrt(sum)
}

// DistanceMatrix returns d[i][j] = Distance(a[i], b[j]).
func DistanceMatrix(a, b Profiles) [][]float64 {
	d := make([][]float64, len(a))
	for i := range a {
		d[i] = make([]float64, len(b))
		for j := range b {
			d[i][j] = Distance(a[i], b[j])
		}
	}

	return d
}
