// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/getamis/sirius/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getamis/tchisla/logger"
	"github.com/getamis/tchisla/progressive"
)

var verbose bool

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find the cheapest expression equal to --target using only copies of digit --n",
	RunE: func(cmd *cobra.Command, args []string) error {
		n := viper.GetInt64("n")
		if n < 1 || n > 9 {
			return fmt.Errorf("--n must be a single digit 1-9, got %d", n)
		}
		target := viper.GetInt64("target")
		maxDepth := int(viper.GetInt("max-depth"))

		limits := progressive.DefaultLimits()
		if configFile := viper.GetString("config"); configFile != "" {
			cfg, err := readConfigFile(configFile)
			if err != nil {
				log.Error("Cannot read limits config file", "path", configFile, "err", err)
				return err
			}
			limits = applyConfig(cfg)
		}

		if verbose {
			logger.SetLogger(log.New())
		}

		driver := progressive.NewDriver(n, limits, maxDepth)
		driver.SetVerbose(verbose)

		searchDepth := maxDigitOf(limits)
		if maxDepth > 0 && maxDepth < searchDepth {
			searchDepth = maxDepth
		}

		sol, ok := driver.Solve(target, searchDepth)
		if !ok {
			fmt.Printf("no expression found for %d using copies of %d within the configured limits\n", target, n)
			return nil
		}

		fmt.Printf("%d digits (%s domain)\n", sol.Digits, sol.Domain)
		printWitness(driver, target, sol.Domain)
		return nil
	},
}

func init() {
	solveCmd.Flags().Int64("n", 0, "the single digit (1-9) to build the expression from")
	solveCmd.Flags().Int64("target", 0, "the integer value the expression must equal")
	solveCmd.Flags().Int("max-depth", 0, "cap on digit count searched (0: use the configured per-domain limits)")
	solveCmd.Flags().BoolVar(&verbose, "verbose", false, "log one line per digit round searched")
	_ = solveCmd.MarkFlagRequired("n")
	_ = solveCmd.MarkFlagRequired("target")
}

func maxDigitOf(limits progressive.Limits) int {
	m := limits.Integral.MaxDigits
	if limits.Rational.MaxDigits > m {
		m = limits.Rational.MaxDigits
	}
	if limits.RationalQuadratic.MaxDigits > m {
		m = limits.RationalQuadratic.MaxDigits
	}
	return m
}

func printWitness(driver *progressive.Driver, target int64, domain progressive.Phase) {
	switch domain {
	case progressive.PhaseIntegral:
		if expr, _, ok := driver.LookupIntegral(target); ok {
			fmt.Println(renderExpr(expr))
		}
	case progressive.PhaseIntegralPhase2:
		if expr, _, ok := driver.LookupIntegralPhase2(target); ok {
			fmt.Println(renderExpr(expr))
		}
	case progressive.PhaseRational:
		if expr, _, ok := driver.LookupRational(target); ok {
			fmt.Println(renderExpr(expr))
		}
	case progressive.PhaseRationalQuadratic:
		if expr, _, ok := driver.LookupRationalQuadratic(target); ok {
			fmt.Println(renderExpr(expr))
		}
	}
}
