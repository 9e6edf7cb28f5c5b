package projection

import "math"

// DefaultCurveDays is the projection window after the virus enters the
// school.
const DefaultCurveDays = 90

// EpiCurve spreads an outbreak's total case count over a smooth
// gamma-shaped daily curve: cases grow, peak, and fall as fewer
// susceptible students remain. This is display shaping of the
// final-size result, not a time-course transmission model.
func EpiCurve(totalCases float64, days int) []float64 {
	if days <= 0 {
		days = DefaultCurveDays
	}

	daily := make([]float64, days)
	var sum float64
	for d := 0; d < days; d++ {
		fd := float64(d)
		daily[d] = math.Pow(fd, 5) * math.Exp(-fd/2)
		sum += daily[d]
	}
	if sum == 0 {
		return daily
	}

	for d := range daily {
		daily[d] = daily[d] / sum * totalCases
	}
	return daily
}
