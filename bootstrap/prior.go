package bootstrap

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/stat/distuv"
)

// Prior generates a bootstrap distribution of prior central values: n
// i.i.d. draws from a Gaussian with the given mean and standard deviation.
// The generator is selected by cfg as in List; a nil cfg uses defaults.
//
// Only Gaussian priors are implemented. Calling Prior with normal set to
// false terminates the process with a diagnostic and exit status 1.
func Prior(n int, mean, sdev float64, normal bool, cfg *Config) []float64 {
	if cfg == nil {
		cfg = &Config{}
	}
	src := cfg.source()

	if !normal {
		fmt.Fprintln(os.Stderr, "bootstrap: non-Gaussian prior distributions are not supported")
		os.Exit(1)
	}

	if n <= 0 {
		return nil
	}
	dist := distuv.Normal{Mu: mean, Sigma: sdev, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}
