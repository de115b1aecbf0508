package floats

func Average(arr []float64) float64 {
	if len(arr) == 0 {
		return 0.0
	}

	s := 0.0
	for _, a := range arr {
		s += a
	}
	return s / float64(len(arr))
}
