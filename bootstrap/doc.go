// Package bootstrap provides bootstrap resampling of sample arrays.
//
// Bootstrap resampling estimates the spread of a statistic by repeatedly
// drawing pseudo-samples with replacement from the observed data. This
// package generates the index tables that define those pseudo-samples,
// draws Gaussian prior replicas, and resamples correlator-shaped data with
// the fluctuation rescaling needed when the per-replica draw count differs
// from the original sample count.
//
// # Reproducibility
//
// Every function takes a Config whose Seed string, when non-empty,
// deterministically fixes all random draws (see the rng package). An empty
// seed falls back to Config.Source, or to a fresh entropy-seeded generator:
//
//	lst := bootstrap.List(500, 784, &bootstrap.Config{Seed: "a09m310"})
//
// # Correlator Resampling
//
// Correlators gathers a [Ncfg][nObs] array along its sample axis and
// reduces each replica to its mean (or keeps the raw draws with KeepDraws).
// When the draw count m differs from Ncfg, deviations from the grand mean
// are rescaled by sqrt(m/Ncfg) so the bootstrap fluctuations match what
// m = Ncfg would give, while the mean is preserved:
//
//	res, err := bootstrap.Correlators(corr, 500, &bootstrap.CorrConfig{
//	    Config:   bootstrap.Config{Seed: "a09m310", Draws: 64},
//	    WithList: true,
//	})
//	// res.Means is [500][nObs], res.List is the raw index table
//
// # Replica Summaries
//
// Summarize reduces a replica distribution to its central value, spread,
// and a percentile confidence interval:
//
//	s := bootstrap.Summarize(replicas, 0.68)
//	fmt.Printf("%g +/- %g\n", s.Mean, s.Err)
package bootstrap
