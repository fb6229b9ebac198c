// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abtest

import (
	"math"
	"testing"

	"github.com/aclements/go-moremath/stats"
)

func TestPower(t *testing.T) {
	test := func(pNull, pAlt float64, n int, alpha, want, tol float64) {
		t.Helper()
		got, err := Power(pNull, pAlt, n, alpha)
		if err != nil {
			t.Fatalf("Power(%v, %v, %v, %v): %v", pNull, pAlt, n, alpha, err)
		}
		if math.Abs(got-want) > tol {
			t.Errorf("Power(%v, %v, %v, %v) = %v, want %v", pNull, pAlt, n, alpha, got, want)
		}
	}

	// Detecting a 10% -> 12% conversion lift.
	test(0.1, 0.12, 1000, 0.05, 0.4412, 1e-4)
	test(0.1, 0.12, 3000, 0.05, 0.8157, 1e-4)
	test(0.1, 0.12, 5000, 0.05, 0.9474, 1e-4)
	// The minimum size for 80% power lands just above target.
	test(0.1, 0.12, 2863, 0.05, 0.8000, 1e-3)
}

func TestPowerBoundsAndMonotonicity(t *testing.T) {
	for _, pNull := range []float64{0.01, 0.1, 0.5, 0.9} {
		for _, delta := range []float64{0.005, 0.02, 0.05} {
			pAlt := pNull + delta
			if pAlt >= 1 {
				continue
			}
			prev := 0.0
			for _, n := range []int{1, 10, 100, 1000, 10000, 100000} {
				p, err := Power(pNull, pAlt, n, 0.05)
				if err != nil {
					t.Fatalf("Power(%v, %v, %v, 0.05): %v", pNull, pAlt, n, err)
				}
				if p < 0 || p > 1 {
					t.Errorf("Power(%v, %v, %v, 0.05) = %v, want in [0, 1]", pNull, pAlt, n, p)
				}
				if p < prev {
					t.Errorf("Power(%v, %v, %v, 0.05) = %v, less than power %v at smaller n", pNull, pAlt, n, p, prev)
				}
				prev = p
			}
		}
	}
}

// TestPowerOracle recomputes power with an independent normal
// distribution implementation and checks that the two agree.
func TestPowerOracle(t *testing.T) {
	for _, pNull := range []float64{0.02, 0.1, 0.3} {
		for _, n := range []int{50, 500, 5000} {
			pAlt := pNull + 0.02
			c, err := DiffCurves(pNull, pAlt, n, 0.05)
			if err != nil {
				t.Fatalf("DiffCurves(%v, %v, %v, 0.05): %v", pNull, pAlt, n, err)
			}
			null := stats.NormalDist{Mu: c.Null.Mu, Sigma: c.Null.Sigma}
			alt := stats.NormalDist{Mu: c.Alt.Mu, Sigma: c.Alt.Sigma}
			want := 1 - alt.CDF(null.InvCDF(1-0.05))
			if got := c.Power(); math.Abs(got-want) > 1e-8 {
				t.Errorf("power(%v, %v, %v) = %v, oracle says %v", pNull, pAlt, n, got, want)
			}
		}
	}
}

func TestPowerCurve(t *testing.T) {
	sizes := []int{1000, 3000, 5000}
	powers, err := PowerCurve(0.1, 0.12, sizes, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	if len(powers) != len(sizes) {
		t.Fatalf("got %d powers for %d sizes", len(powers), len(sizes))
	}
	for i, n := range sizes {
		want, err := Power(0.1, 0.12, n, 0.05)
		if err != nil {
			t.Fatal(err)
		}
		if powers[i] != want {
			t.Errorf("PowerCurve[%d] = %v, Power(n=%d) = %v", i, powers[i], n, want)
		}
	}

	if _, err := PowerCurve(0.1, 0.12, []int{1000, 0}, 0.05); err == nil {
		t.Errorf("expected error for size 0 in curve")
	}
}
