package shape

// CountExtrema returns the number of local maxima and minima in ys.
//
// ys[0] is a maximum if it exceeds ys[1] and a minimum if it is below it;
// the last sample is treated symmetrically against ys[len-2]. An interior
// sample that rises from its predecessor is a maximum only if it also
// exceeds its successor; one that falls is a minimum only if it is also
// below its successor. Any equality with the predecessor counts as neither.
//
// Sequences shorter than two samples have no extrema.
func CountExtrema(ys []float64) (maxima, minima int) {
	n := len(ys)
	if n < 2 {
		return 0, 0
	}

	switch {
	case ys[0] > ys[1]:
		maxima++
	case ys[0] < ys[1]:
		minima++
	}

	for i := 1; i < n-1; i++ {
		y := ys[i]
		switch {
		case y > ys[i-1]:
			if y > ys[i+1] {
				maxima++
			}
		case y < ys[i-1]:
			if y < ys[i+1] {
				minima++
			}
		}
	}

	switch last := ys[n-1]; {
	case last > ys[n-2]:
		maxima++
	case last < ys[n-2]:
		minima++
	}

	return maxima, minima
}
