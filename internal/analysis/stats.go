package analysis

import "math"

type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func Summarize(data []float64) Summary {
	if len(data) == 0 {
		return Summary{}
	}
	s := Summary{Count: len(data), Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, v := range data {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(data))

	variance := 0.0
	for _, v := range data {
		d := v - s.Mean
		variance += d * d
	}
	s.StdDev = math.Sqrt(variance / float64(len(data)))
	return s
}
