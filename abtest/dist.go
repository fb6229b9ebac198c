// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abtest computes statistical power and minimum sample sizes
// for one-tailed two-proportion hypothesis tests, such as sizing an
// A/B experiment to detect a change in conversion rate.
//
// The test compares a treatment group against a control group, each
// with n observations, and rejects the null hypothesis when the
// observed difference in proportions (treatment minus control)
// exceeds a critical value. Both the power computation and the sample
// size solver model the sampling distribution of that difference as a
// normal distribution, which is accurate for the sample sizes these
// tests need in practice.
//
// Only the one-tailed, greater-than alternative is supported: the
// alternative proportion must exceed the null proportion.
package abtest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Default error rates for experiment sizing: a 5% false positive rate
// and 80% power.
const (
	DefaultAlpha = 0.05
	DefaultBeta  = 0.20
)

// An InvalidArgumentError reports a test parameter outside its
// mathematical domain.
type InvalidArgumentError struct {
	Name   string  // Parameter name, e.g. "pNull"
	Value  float64 // Rejected value
	Reason string  // Constraint that was violated
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s=%v: %s", e.Name, e.Value, e.Reason)
}

func checkProportions(pNull, pAlt float64) error {
	if !(0 < pNull && pNull < 1) {
		return &InvalidArgumentError{"pNull", pNull, "must be in (0, 1)"}
	}
	if !(0 < pAlt && pAlt < 1) {
		return &InvalidArgumentError{"pAlt", pAlt, "must be in (0, 1)"}
	}
	if pAlt <= pNull {
		return &InvalidArgumentError{"pAlt", pAlt, fmt.Sprintf("must exceed pNull=%v for a one-tailed test", pNull)}
	}
	return nil
}

func checkRate(name string, v float64) error {
	if !(0 < v && v < 1) {
		return &InvalidArgumentError{name, v, "must be in (0, 1)"}
	}
	return nil
}

// Curves describes one test setup: the sampling distributions of the
// difference in observed proportions under the null and alternative
// hypotheses, and the critical value above which the null is
// rejected.
//
// Plotting and reporting collaborators consume Curves; the power
// computation itself is Power, which reads nothing back from its
// consumers.
type Curves struct {
	Null distuv.Normal // Difference distribution when both groups convert at pNull
	Alt  distuv.Normal // Difference distribution when treatment converts at pAlt
	Crit float64       // Smallest observed difference that rejects the null
}

// DiffCurves returns the difference distributions and critical value
// for a test of pNull against pAlt with n observations per group at
// significance level alpha.
func DiffCurves(pNull, pAlt float64, n int, alpha float64) (Curves, error) {
	if err := checkProportions(pNull, pAlt); err != nil {
		return Curves{}, err
	}
	if n < 1 {
		return Curves{}, &InvalidArgumentError{"n", float64(n), "need at least one observation per group"}
	}
	if err := checkRate("alpha", alpha); err != nil {
		return Curves{}, err
	}

	varNull := pNull * (1 - pNull) / float64(n)
	varAlt := pAlt * (1 - pAlt) / float64(n)

	// Under the null, both groups convert at pNull, so the
	// difference is centered at zero with twice the null group's
	// variance. Under the alternative, the treatment group
	// contributes its own variance and shifts the center to the
	// true effect.
	null := distuv.Normal{Mu: 0, Sigma: math.Sqrt(2 * varNull)}
	alt := distuv.Normal{Mu: pAlt - pNull, Sigma: math.Sqrt(varNull + varAlt)}
	return Curves{
		Null: null,
		Alt:  alt,
		Crit: null.Quantile(1 - alpha),
	}, nil
}

// Power returns the probability that the observed difference clears
// the critical value when the alternative hypothesis is true.
func (c Curves) Power() float64 {
	return 1 - c.Alt.CDF(c.Crit)
}
