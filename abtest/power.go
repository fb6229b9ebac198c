// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abtest

// Power returns the statistical power of a one-tailed two-proportion
// test: the probability of correctly rejecting the null hypothesis
// that both groups convert at pNull when the treatment group in fact
// converts at pAlt, given n observations per group and significance
// level alpha.
func Power(pNull, pAlt float64, n int, alpha float64) (float64, error) {
	c, err := DiffCurves(pNull, pAlt, n, alpha)
	if err != nil {
		return 0, err
	}
	return c.Power(), nil
}

// PowerCurve returns the power of the test at each candidate sample
// size in sizes. It is equivalent to calling Power for each size.
func PowerCurve(pNull, pAlt float64, sizes []int, alpha float64) ([]float64, error) {
	powers := make([]float64, len(sizes))
	for i, n := range sizes {
		p, err := Power(pNull, pAlt, n, alpha)
		if err != nil {
			return nil, err
		}
		powers[i] = p
	}
	return powers, nil
}
