package bootstrap

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the bootstrap distribution of a scalar observable.
type Summary struct {
	Mean float64 // mean over replicas
	Err  float64 // standard deviation over replicas (bootstrap error)
	Low  float64 // lower percentile bound
	High float64 // upper percentile bound
}

// Summarize reduces a replica distribution to its central value, bootstrap
// error, and a symmetric percentile confidence interval. confidence is the
// interval coverage, e.g. 0.68 for the conventional one-sigma interval.
// Returns the zero Summary for an empty input.
func Summarize(replicas []float64, confidence float64) Summary {
	if len(replicas) == 0 {
		return Summary{}
	}
	if confidence <= 0 || confidence >= 1 {
		confidence = 0.68
	}

	sorted := make([]float64, len(replicas))
	copy(sorted, replicas)
	sort.Float64s(sorted)

	tail := (1 - confidence) / 2
	return Summary{
		Mean: stat.Mean(replicas, nil),
		Err:  stat.StdDev(replicas, nil),
		Low:  stat.Quantile(tail, stat.Empirical, sorted, nil),
		High: stat.Quantile(1-tail, stat.Empirical, sorted, nil),
	}
}

// SummarizeColumns summarizes each observable of a [nBoot][nObs] replica
// table, such as the Means of a Correlators result. Returns nil for an
// empty table.
func SummarizeColumns(boot [][]float64, confidence float64) []Summary {
	if len(boot) == 0 {
		return nil
	}
	nObs := len(boot[0])
	col := make([]float64, len(boot))
	out := make([]Summary, nObs)
	for j := 0; j < nObs; j++ {
		for b, row := range boot {
			col[b] = row[j]
		}
		out[j] = Summarize(col, confidence)
	}
	return out
}
