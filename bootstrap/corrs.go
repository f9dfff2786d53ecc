package bootstrap

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// CorrConfig holds configuration for correlator resampling.
type CorrConfig struct {
	Config
	// KeepDraws keeps the individual draws instead of reducing each
	// replica to its mean: the result carries Draws of shape
	// [nBoot][m][nObs] rather than Means of shape [nBoot][nObs].
	KeepDraws bool
	// WithList includes the raw bootstrap index table in the result.
	WithList bool
}

// Result holds the output of Correlators.
type Result struct {
	// Means is the rescaled replica-mean array, [nBoot][nObs].
	// Nil when KeepDraws is set.
	Means [][]float64
	// Draws is the rescaled per-draw array, [nBoot][m][nObs].
	// Nil unless KeepDraws is set.
	Draws [][][]float64
	// List is the index table used for the gather, [nBoot][m].
	// Nil unless WithList is set.
	List [][]int
}

// Correlators resamples a correlator array along its first axis.
//
// corr is [Ncfg][nObs]: the first axis is the original sample axis, the
// second carries the (flattened) observable shape. For each of nBoot
// replicas, m rows of corr are gathered with replacement (m is cfg.Draws,
// or Ncfg when zero), the gathered values are reduced, and deviations from
// the grand mean are rescaled by sqrt(m/Ncfg). The rescaling corrects the
// bootstrap fluctuation variance, which scales as 1/m rather than 1/Ncfg
// when m differs from Ncfg; the mean is preserved. With m = Ncfg the
// factor is 1 and the output is the plain bootstrap means.
//
// A nil cfg uses defaults: replica means, no index table, unseeded draws.
func Correlators(corr [][]float64, nBoot int, cfg *CorrConfig) (*Result, error) {
	if cfg == nil {
		cfg = &CorrConfig{}
	}
	ncfg := len(corr)
	if ncfg == 0 {
		return nil, errors.New("correlator has no samples along its first axis")
	}
	if nBoot <= 0 {
		return nil, errors.New("replica count must be positive")
	}
	if cfg.Draws < 0 {
		return nil, errors.New("draw count must not be negative")
	}
	nObs := len(corr[0])
	for _, row := range corr {
		if len(row) != nObs {
			return nil, errors.New("correlator rows must have equal length")
		}
	}

	m := cfg.draws(ncfg)
	gen := rand.New(cfg.source())
	lst := drawList(gen, nBoot, m, ncfg)
	scale := math.Sqrt(float64(m) / float64(ncfg))

	res := &Result{}
	if cfg.KeepDraws {
		res.Draws = resampleDraws(corr, lst, scale, nObs)
	} else {
		res.Means = resampleMeans(corr, lst, scale, nObs)
	}
	if cfg.WithList {
		res.List = lst
	}
	return res, nil
}

// resampleMeans reduces each replica's gathered rows to their mean, then
// recenters: out[b] = grand + scale*(mean[b] - grand), with grand the mean
// over replicas.
func resampleMeans(corr [][]float64, lst [][]int, scale float64, nObs int) [][]float64 {
	nBoot := len(lst)
	m := len(lst[0])

	boot := make([][]float64, nBoot)
	for b, row := range lst {
		acc := make([]float64, nObs)
		for _, idx := range row {
			floats.Add(acc, corr[idx])
		}
		floats.Scale(1/float64(m), acc)
		boot[b] = acc
	}

	grand := make([]float64, nObs)
	for _, r := range boot {
		floats.Add(grand, r)
	}
	floats.Scale(1/float64(nBoot), grand)

	out := make([][]float64, nBoot)
	dev := make([]float64, nObs)
	for b, r := range boot {
		floats.SubTo(dev, r, grand)
		out[b] = floats.AddScaledTo(make([]float64, nObs), grand, scale, dev)
	}
	return out
}

// resampleDraws keeps every gathered row and recenters each cell against
// the grand mean taken jointly over the replica and draw axes.
func resampleDraws(corr [][]float64, lst [][]int, scale float64, nObs int) [][][]float64 {
	nBoot := len(lst)
	m := len(lst[0])

	grand := make([]float64, nObs)
	for _, row := range lst {
		for _, idx := range row {
			floats.Add(grand, corr[idx])
		}
	}
	floats.Scale(1/float64(nBoot*m), grand)

	out := make([][][]float64, nBoot)
	dev := make([]float64, nObs)
	for b, row := range lst {
		out[b] = make([][]float64, m)
		for d, idx := range row {
			floats.SubTo(dev, corr[idx], grand)
			out[b][d] = floats.AddScaledTo(make([]float64, nObs), grand, scale, dev)
		}
	}
	return out
}
