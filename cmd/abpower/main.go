// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command abpower sizes one-tailed two-proportion tests, such as A/B
// experiments on conversion rates.
//
// With -n, it prints the power of a test with that many observations
// per group. With -sizes, it prints a power table over the candidate
// sizes. Otherwise it prints the minimum per-group sample size that
// keeps the Type-II error rate at or below -beta, along with the
// power achieved at that size.
//
// For example,
//
// 	abpower -null 0.1 -alt 0.12
//
// prints the sample size needed to detect a lift from a 10% to a 12%
// conversion rate with 80% power at a 5% significance level, and
//
// 	abpower -null 0.1 -alt 0.12 -sizes 1000,3000,5000
//
// prints the power achieved at each of those group sizes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"abpower/abtest"
)

func main() {
	log.SetPrefix("")
	log.SetFlags(0)

	pNull := flag.Float64("null", 0, "baseline (null) conversion `proportion`, in (0, 1)")
	pAlt := flag.Float64("alt", 0, "alternative conversion `proportion`; must exceed -null")
	alpha := flag.Float64("alpha", abtest.DefaultAlpha, "Type-I error `rate`")
	beta := flag.Float64("beta", abtest.DefaultBeta, "Type-II error `rate` when solving for sample size")
	n := flag.Int("n", 0, "observations per `group`; if omitted, solve for the minimum sample size")
	sizes := flag.String("sizes", "", "comma-separated candidate group `sizes`; print a power table")
	flag.Usage = func() {
		// Note: Keep this in sync with the package doc.
		fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s -null p -alt p [flags]

abpower sizes one-tailed two-proportion tests, such as A/B experiments
on conversion rates.

With -n, it prints the power of a test with that many observations per
group. With -sizes, it prints a power table over the candidate sizes.
Otherwise it prints the minimum per-group sample size that keeps the
Type-II error rate at or below -beta, along with the power achieved at
that size.
`, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	seen := flagsSeen(flag.CommandLine)
	if flag.NArg() > 0 || !seen["null"] || !seen["alt"] {
		flag.Usage()
		os.Exit(2)
	}
	if seen["sizes"] && seen["n"] {
		log.Fatal("cannot use both -sizes and -n")
	}

	switch {
	case seen["sizes"]:
		ns, err := parseSizes(*sizes)
		if err != nil {
			log.Fatal(err)
		}
		powers, err := abtest.PowerCurve(*pNull, *pAlt, ns, *alpha)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%10s %8s\n", "n", "power")
		for i, n := range ns {
			fmt.Printf("%10d %8.4f\n", n, powers[i])
		}
	case seen["n"]:
		power, err := abtest.Power(*pNull, *pAlt, *n, *alpha)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%.4f\n", power)
	default:
		size, err := abtest.MinSampleSize(*pNull, *pAlt, *alpha, *beta)
		if err != nil {
			log.Fatal(err)
		}
		power, err := abtest.Power(*pNull, *pAlt, size, *alpha)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d per group (power %.4f)\n", size, power)
	}
}

// flagsSeen returns the names of the flags explicitly set on the
// command line, whatever their values.
func flagsSeen(fs *flag.FlagSet) map[string]bool {
	seen := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	return seen
}

func parseSizes(list string) ([]int, error) {
	var ns []int
	for _, field := range strings.Split(list, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, fmt.Errorf("bad size %q in -sizes", field)
		}
		ns = append(ns, n)
	}
	return ns, nil
}
