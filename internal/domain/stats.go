package domain

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	m "github.com/mouse-blink/regdump/internal/model"
)

// Summarize computes the count summary printed for an integer sample. An
// empty sample yields a zero summary with N == 0.
func Summarize(xs []int) m.CountSummary {
	if len(xs) == 0 {
		return m.CountSummary{}
	}

	fs := toFloats(xs)
	sort.Float64s(fs)

	mean := stat.Mean(fs, nil)

	variance := 0.0
	if len(fs) > 1 {
		variance = stat.Variance(fs, nil)
	}

	dispersion := math.NaN()
	if mean > 0 {
		dispersion = variance / mean
	}

	return m.CountSummary{
		N:          len(fs),
		Min:        int(fs[0]),
		Max:        int(fs[len(fs)-1]),
		P10:        percentile(fs, 10),
		Median:     percentile(fs, 50),
		P90:        percentile(fs, 90),
		Mean:       mean,
		Var:        variance,
		Dispersion: dispersion,
	}
}

// percentile interpolates linearly between order statistics of a sorted
// sample; q is a percentage in [0, 100].
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}

	pos := q / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	if lo == hi {
		return sorted[lo]
	}

	frac := pos - float64(lo)

	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func toFloats(xs []int) []float64 {
	fs := make([]float64, len(xs))
	for i, x := range xs {
		fs[i] = float64(x)
	}

	return fs
}

// FitNegativeBinomial fits NB(r, p) to an integer sample by method of
// moments: r = mu^2/(var-mu), p = r/(r+mu). Samples that are empty, have a
// non-positive mean or are not over-dispersed cannot carry the fit and
// collapse to the Poisson-edge marker (r = +Inf, p = 1).
func FitNegativeBinomial(xs []int) m.NBFit {
	fs := toFloats(xs)

	mu := stat.Mean(fs, nil)

	variance := 0.0
	if len(fs) > 1 {
		variance = stat.Variance(fs, nil)
	}

	if !(mu > 0) || variance <= mu {
		return m.NBFit{Mu: mu, Var: variance, R: math.Inf(1), P: 1}
	}

	r := mu * mu / (variance - mu)

	return m.NBFit{Mu: mu, Var: variance, R: r, P: r / (r + mu)}
}

// NBLogPMF evaluates log P(X = k) for NB(r, p) via log-gamma, which stays
// finite far beyond where the direct binomial coefficient overflows.
func NBLogPMF(k int, r, p float64) float64 {
	kf := float64(k)

	lgKR, _ := math.Lgamma(kf + r)
	lgR, _ := math.Lgamma(r)
	lgK1, _ := math.Lgamma(kf + 1)

	return lgKR - lgR - lgK1 + r*math.Log(p) + kf*math.Log(1-p)
}

// NBPMF tabulates P(X = k) for k in [0, kmax], renormalized over the range
// to absorb numerical drift and the truncated tail. A degenerate fit has no
// pmf and yields nil.
func NBPMF(kmax int, fit m.NBFit) []float64 {
	if fit.Degenerate() || kmax < 0 {
		return nil
	}

	pmf := make([]float64, kmax+1)

	total := 0.0
	for k := range pmf {
		pmf[k] = math.Exp(NBLogPMF(k, fit.R, fit.P))
		total += pmf[k]
	}

	if total > 0 {
		for k := range pmf {
			pmf[k] /= total
		}
	}

	return pmf
}
