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
	"io/ioutil"

	"gopkg.in/yaml.v2"

	"github.com/getamis/tchisla/progressive"
	"github.com/getamis/tchisla/solver"
)

// domainLimits is one domain's section of a limits config file.
type domainLimits struct {
	MaxDigits         int   `yaml:"max_digits"`
	MaxFactorial      int64 `yaml:"max_factorial"`
	MaxQuadraticPower uint8 `yaml:"max_quadratic_power"`
}

func (d domainLimits) toSolverLimits() solver.Limits {
	return solver.Limits{
		MaxDigits:         d.MaxDigits,
		MaxFactorial:      d.MaxFactorial,
		MaxQuadraticPower: d.MaxQuadraticPower,
	}
}

// Config overrides progressive.DefaultLimits, one section per domain. Any
// domain section left at its zero value keeps the default for that domain
// (see applyConfig).
type Config struct {
	Integral          domainLimits `yaml:"integral"`
	Rational          domainLimits `yaml:"rational"`
	RationalQuadratic domainLimits `yaml:"rational_quadratic"`
}

func readConfigFile(filePath string) (*Config, error) {
	c := &Config{}
	yamlFile, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(yamlFile, c); err != nil {
		return nil, err
	}
	return c, nil
}

// applyConfig overlays cfg onto progressive.DefaultLimits, leaving a
// domain's bound at its default wherever the config left MaxDigits unset
// (zero), since zero is never a usable digit budget.
func applyConfig(cfg *Config) progressive.Limits {
	limits := progressive.DefaultLimits()
	if cfg == nil {
		return limits
	}
	if cfg.Integral.MaxDigits > 0 {
		limits.Integral = cfg.Integral.toSolverLimits()
	}
	if cfg.Rational.MaxDigits > 0 {
		limits.Rational = cfg.Rational.toSolverLimits()
	}
	if cfg.RationalQuadratic.MaxDigits > 0 {
		limits.RationalQuadratic = cfg.RationalQuadratic.toSolverLimits()
	}
	return limits
}
