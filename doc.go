// Package gobootstrap provides deterministic bootstrap resampling for
// array-valued statistical data.
//
// GoBootstrap is a small Go package for reproducible bootstrap analysis of
// sample arrays such as lattice correlation functions. A string seed maps
// to a PCG64-family random stream, so the same seed always yields the same
// resampling, across runs and across machines.
//
// # Features
//
//   - String-seeded, reproducible random number generation
//   - Bootstrap index tables drawn with replacement
//   - Gaussian prior replica sampling
//   - Correlator resampling with sqrt(m/Ncfg) fluctuation rescaling
//   - Replica summary statistics (mean, spread, confidence intervals)
//
// # Quick Start
//
// Draw a reproducible bootstrap index table and resample a correlator:
//
//	lst := bootstrap.List(500, len(corr), &bootstrap.Config{Seed: "a09m310"})
//	res, _ := bootstrap.Correlators(corr, 500, &bootstrap.CorrConfig{
//	    Config: bootstrap.Config{Seed: "a09m310"},
//	})
//	summaries := bootstrap.SummarizeColumns(res.Means, 0.68)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - rng: seed derivation and generator construction
//   - bootstrap: index tables, prior sampling, correlator resampling,
//     and replica summaries
package gobootstrap
