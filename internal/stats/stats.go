// Package stats computes the regression statistics shown alongside matchup
// scatter views: Pearson correlation, least-squares fit, RMSE, bias and the
// median absolute percent difference used in ocean colour validation.
package stats

import (
	"math"
	"sort"
)

// MinPairs is the smallest sample for which a summary is considered meaningful.
const MinPairs = 3

// Fit is a least-squares line y = Slope*x + Intercept.
type Fit struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Summary aggregates matchup statistics for one satellite product against the
// in-situ reference.
type Summary struct {
	N         int     `json:"n"`
	R         float64 `json:"r"`
	R2        float64 `json:"r2"`
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RMSE      float64 `json:"rmse"`
	Bias      float64 `json:"bias"`
	MdAPD     float64 `json:"mdapd"`
}

// LinearFit returns the least-squares line through (x, y). ok is false when
// fewer than two points are given or x has zero variance.
func LinearFit(x, y []float64) (Fit, bool) {
	if len(x) != len(y) || len(x) < 2 {
		return Fit{}, false
	}
	mx := mean(x)
	my := mean(y)

	var sxx, sxy float64
	for i := range x {
		dx := x[i] - mx
		sxx += dx * dx
		sxy += dx * (y[i] - my)
	}
	if sxx == 0 {
		return Fit{}, false
	}
	slope := sxy / sxx
	return Fit{Slope: slope, Intercept: my - slope*mx}, true
}

// Pearson returns the correlation coefficient of (x, y), or 0 when it is
// undefined (fewer than two points or zero variance on either axis).
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return 0
	}
	mx := mean(x)
	my := mean(y)

	var sxx, syy, sxy float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0
	}
	return sxy / math.Sqrt(sxx*syy)
}

// RMSE is the root mean square difference of est against ref.
func RMSE(ref, est []float64) float64 {
	if len(ref) != len(est) || len(ref) == 0 {
		return 0
	}
	var sum float64
	for i := range ref {
		d := est[i] - ref[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(ref)))
}

// Bias is the mean difference est − ref. Positive means the estimate
// overshoots the reference on average.
func Bias(ref, est []float64) float64 {
	if len(ref) != len(est) || len(ref) == 0 {
		return 0
	}
	var sum float64
	for i := range ref {
		sum += est[i] - ref[i]
	}
	return sum / float64(len(ref))
}

// MdAPD is the median absolute percent difference of est against ref.
// Pairs with a zero reference are skipped.
func MdAPD(ref, est []float64) float64 {
	if len(ref) != len(est) || len(ref) == 0 {
		return 0
	}
	apd := make([]float64, 0, len(ref))
	for i := range ref {
		if ref[i] == 0 {
			continue
		}
		apd = append(apd, math.Abs((est[i]-ref[i])/ref[i])*100)
	}
	if len(apd) == 0 {
		return 0
	}
	sort.Float64s(apd)
	mid := len(apd) / 2
	if len(apd)%2 == 1 {
		return apd[mid]
	}
	return (apd[mid-1] + apd[mid]) / 2
}

// RelativeError is the signed percent difference of est against ref, or NaN
// when ref is zero. Used for the geographic error map.
func RelativeError(ref, est float64) float64 {
	if ref == 0 {
		return math.NaN()
	}
	return (est - ref) / ref * 100
}

// Summarize drops pairs where either value is NaN and computes the full
// statistic set of est against the ref measurements. ok is false when fewer
// than MinPairs valid pairs remain; the zero Summary is returned in that case.
func Summarize(ref, est []float64) (Summary, bool) {
	if len(ref) != len(est) {
		return Summary{}, false
	}
	cref := make([]float64, 0, len(ref))
	cest := make([]float64, 0, len(est))
	for i := range ref {
		if math.IsNaN(ref[i]) || math.IsNaN(est[i]) {
			continue
		}
		cref = append(cref, ref[i])
		cest = append(cest, est[i])
	}
	if len(cref) < MinPairs {
		return Summary{}, false
	}

	r := Pearson(cref, cest)
	fit, _ := LinearFit(cref, cest)
	return Summary{
		N:         len(cref),
		R:         r,
		R2:        r * r,
		Slope:     fit.Slope,
		Intercept: fit.Intercept,
		RMSE:      RMSE(cref, cest),
		Bias:      Bias(cref, cest),
		MdAPD:     MdAPD(cref, cest),
	}, true
}

func mean(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
