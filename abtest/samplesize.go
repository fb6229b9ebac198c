// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abtest

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// MinSampleSize returns the smallest number of observations per group
// for which the test of pNull against pAlt at significance level
// alpha has a Type-II error rate of at most beta (that is, power of
// at least 1-beta).
//
// The result solves the power equation in closed form. The gap
// between pNull and pAlt splits at the critical value: the null
// distribution must keep alpha of its mass above it and the
// alternative distribution must keep no more than beta of its mass
// below it. Both constraints scale with 1/sqrt(n), so equating them
// gives n directly, rounded up to the next whole observation because
// rounding down would leave the achieved power under target.
func MinSampleSize(pNull, pAlt, alpha, beta float64) (int, error) {
	if err := checkProportions(pNull, pAlt); err != nil {
		return 0, err
	}
	if err := checkRate("alpha", alpha); err != nil {
		return 0, err
	}
	if err := checkRate("beta", beta); err != nil {
		return 0, err
	}

	zAlpha := stats.StdNormal.InvCDF(1 - alpha)
	// Left-tail quantile, negative for beta < 0.5.
	zBeta := stats.StdNormal.InvCDF(beta)

	// Standard deviations of the difference distributions scaled
	// to one observation per group.
	sdNull := math.Sqrt(2 * pNull * (1 - pNull))
	sdAlt := math.Sqrt(pNull*(1-pNull) + pAlt*(1-pAlt))

	root := (zAlpha*sdNull - zBeta*sdAlt) / (pAlt - pNull)
	return int(math.Ceil(root * root)), nil
}
