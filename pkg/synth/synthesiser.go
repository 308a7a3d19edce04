// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package synth

import (
	"fmt"

	"github.com/consensys/go-cauer/pkg/cauer"
	"github.com/consensys/go-cauer/pkg/network"
	"github.com/consensys/go-cauer/pkg/util/poly"
	log "github.com/sirupsen/logrus"
)

// Direction identifies how the elements of a ladder were obtained.
type Direction uint8

const (
	// CauerI expands N/D, with even quotients as series elements and odd
	// quotients as shunt elements.
	CauerI Direction = iota
	// CauerII expands D/N, with even quotients as shunt elements and odd
	// quotients as series elements.
	CauerII
	// AroundInfinity is the single stage ladder with series element s and a
	// shunt element given by the remainder of N/D.
	AroundInfinity
)

func (d Direction) String() string {
	switch d {
	case CauerI:
		return "Cauer-I"
	case CauerII:
		return "Cauer-II"
	default:
		return "around-infinity"
	}
}

// Config determines how a synthesiser operates.
type Config struct {
	// Tokenisation mode and first stage normalisation.
	Network network.Config
	// SignNormalise enables sign normalisation of expansions.  This affects
	// only how quotients are reported, since elements are always checked and
	// assigned as computed.
	SignNormalise bool
	// FallbackOnStall treats a Cauer-I expansion which stalls (i.e. when N has
	// lower degree than D) as invalid, so that the Cauer-II assignment is
	// attempted.  By default, a stalled expansion yields no elements and the
	// resulting empty ladder is rejected.
	FallbackOnStall bool
	// Preflight enables realisability checks on the transfer function prior
	// to expansion.
	Preflight bool
}

// Result captures the outcome of synthesising a ladder network.
type Result struct {
	// Ladder is the tokenised network.
	Ladder network.Ladder
	// Direction identifies which assignment produced the ladder.
	Direction Direction
	// Series and shunt elements from which the ladder was tokenised.
	Z []poly.Polynomial
	Y []poly.Polynomial
	// Expansion from which the elements were drawn.  For an around-infinity
	// ladder, this is the Cauer-I expansion.  Its reported quotients may differ
	// in sign from the elements when sign normalisation is enabled.
	Expansion *cauer.Expansion
}

// Synthesiser constructs Cauer ladder networks from transfer functions.  A
// synthesiser holds no state beyond its configuration, and can be used
// concurrently.
type Synthesiser struct {
	config Config
}

// NewSynthesiser constructs a synthesiser with a given configuration.
func NewSynthesiser(config Config) *Synthesiser {
	return &Synthesiser{config}
}

// Config returns the configuration of this synthesiser.
func (p *Synthesiser) Config() Config {
	return p.config
}

// Synthesise constructs a ladder network realising H(s) = num/den.  This fails
// with cauer.ErrDomain if den is zero, with network.ErrInvalidNetwork if no
// realisable ladder is found and (when preflight is enabled) with
// ErrNotRealisable if H(s) is rejected before expansion.
func (p *Synthesiser) Synthesise(num, den poly.Polynomial) (*Result, error) {
	if p.config.Preflight {
		if err := Preflight(num, den); err != nil {
			return nil, err
		}
	}
	//
	result, err := p.assign(num, den)
	if err != nil {
		return nil, err
	} else if !network.AllRealisable(result.Z, result.Y) {
		return nil, fmt.Errorf("%w: %s ladder for (%s)/(%s) is not realisable", network.ErrInvalidNetwork,
			result.Direction, num, den)
	}
	//
	if result.Ladder, err = network.Tokenise(p.config.Network, result.Z, result.Y); err != nil {
		return nil, err
	}
	//
	log.Debugf("synthesised (%s)/(%s) as %s ladder %v", num, den, result.Direction, result.Ladder)
	//
	return result, nil
}

// Assign series and shunt elements for H(s) = num/den, without tokenising
// them.  The Cauer-I assignment is used if it is valid, otherwise the Cauer-II
// assignment is used if that is valid.  Finally, the around-infinity case
// overrides both whenever the first division of num by den leaves a constant
// quotient and a nonzero remainder.
func (p *Synthesiser) assign(num, den poly.Polynomial) (*Result, error) {
	var options []cauer.Option
	//
	if p.config.SignNormalise {
		options = append(options, cauer.WithSignNormalisation())
	}
	//
	expansion, err := cauer.Expand(num, den, options...)
	if err != nil {
		return nil, err
	}
	//
	z, y := Split(expansion.Computed())
	result := &Result{Direction: CauerI, Z: z, Y: y, Expansion: expansion}
	//
	if !p.valid(expansion, z, y) {
		log.Debugf("Cauer-I expansion %s of (%s)/(%s) is not realisable", expansion, num, den)
		//
		if alt := p.reciprocal(num, den, options); alt != nil {
			result = alt
		}
	}
	//
	if q, r, _ := num.DivMod(den); !r.IsZero() && q.Degree() == 0 {
		log.Debugf("using around-infinity ladder for (%s)/(%s) in place of %s ladder", num, den, result.Direction)
		//
		result = &Result{
			Direction: AroundInfinity,
			Z:         []poly.Polynomial{poly.S()},
			Y:         []poly.Polynomial{r},
			Expansion: expansion,
		}
	}
	//
	return result, nil
}

// Attempt the Cauer-II assignment by expanding den/num.  This returns nil if
// the reciprocal cannot be expanded, or its assignment is not valid.
func (p *Synthesiser) reciprocal(num, den poly.Polynomial, options []cauer.Option) *Result {
	expansion, err := cauer.Expand(den, num, options...)
	if err != nil {
		log.Debugf("Cauer-II expansion of (%s)/(%s) failed: %v", den, num, err)
		return nil
	}
	//
	y, z := Split(expansion.Computed())
	//
	if !p.valid(expansion, z, y) {
		log.Debugf("Cauer-II expansion %s of (%s)/(%s) is not realisable", expansion, den, num)
		return nil
	}
	//
	return &Result{Direction: CauerII, Z: z, Y: y, Expansion: expansion}
}

// An assignment is valid when every element is realisable.  When falling back
// on a stall, the expansion must additionally account for the whole ratio.
func (p *Synthesiser) valid(expansion *cauer.Expansion, z []poly.Polynomial, y []poly.Polynomial) bool {
	if p.config.FallbackOnStall && !expansion.Exact() {
		return false
	}
	//
	return network.AllRealisable(z, y)
}

// Split a sequence of quotients by the parity of their position.  Quotients
// in even positions are returned first and those in odd positions second.
func Split(quotients []poly.Polynomial) ([]poly.Polynomial, []poly.Polynomial) {
	var even, odd []poly.Polynomial
	//
	for i, q := range quotients {
		if i%2 == 0 {
			even = append(even, q)
		} else {
			odd = append(odd, q)
		}
	}
	//
	return even, odd
}
