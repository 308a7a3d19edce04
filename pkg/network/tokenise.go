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
package network

import (
	"fmt"

	"github.com/consensys/go-cauer/pkg/util/poly"
)

// Config determines how elements are mapped into tokens.
type Config struct {
	// Mode determines which tokens are permitted.
	Mode Mode
	// NormaliseFirstStage enables the first stage rewrite (general mode only).
	// See NormaliseFirstStage() for details.
	NormaliseFirstStage bool
}

// IsRealisable checks whether a given element can be realised from
// non-negative resistors combined with inductors (or conductances combined
// with capacitors).  That is, it has degree at most one and no negative
// coefficients.  The zero polynomial is considered realisable.
func IsRealisable(p poly.Polynomial) bool {
	if p.Degree() > 1 {
		return false
	}
	//
	for i, n := uint(0), p.Len(); i < n; i++ {
		if p.Coeff(i).Sign() < 0 {
			return false
		}
	}
	//
	return true
}

// AllRealisable checks whether every element in the given sequences is
// realisable.
func AllRealisable(sequences ...[]poly.Polynomial) bool {
	for _, seq := range sequences {
		for _, p := range seq {
			if !IsRealisable(p) {
				return false
			}
		}
	}
	//
	return true
}

// Tokenise maps a sequence of series elements and a sequence of shunt elements
// into a ladder of tokens.  A zero element is only permitted in the final
// position of either sequence, where it becomes the token "1/s".  In strict
// mode, all other elements must be either 1 or s.  This fails with
// ErrInvalidNetwork if an element is not permitted, or if there are no
// elements at all.
func Tokenise(cfg Config, z []poly.Polynomial, y []poly.Polynomial) (Ladder, error) {
	var (
		ladder Ladder
		err    error
	)
	//
	if ladder.Z, err = tokeniseAll(cfg.Mode, Series, z); err != nil {
		return Ladder{}, err
	} else if ladder.Y, err = tokeniseAll(cfg.Mode, Shunt, y); err != nil {
		return Ladder{}, err
	} else if ladder.Empty() {
		return Ladder{}, fmt.Errorf("%w: terminals are shorted", ErrInvalidNetwork)
	}
	//
	if cfg.Mode == General && cfg.NormaliseFirstStage {
		ladder = NormaliseFirstStage(ladder, y)
	}
	//
	return ladder, nil
}

func tokeniseAll(mode Mode, role Role, elements []poly.Polynomial) ([]Token, error) {
	if len(elements) == 0 {
		return nil, nil
	}
	//
	tokens := make([]Token, len(elements))
	//
	for i, p := range elements {
		last := i == len(elements)-1
		//
		switch {
		case p.IsZero() && last:
			tokens[i] = InverseS
		case p.IsZero():
			return nil, fmt.Errorf("%w: zero %s element at position %d", ErrInvalidNetwork, role, i)
		case mode == General:
			tokens[i] = Token(p.String())
		case p.Equal(unit):
			tokens[i] = Unit
		case p.Equal(poly.S()):
			tokens[i] = S
		default:
			return nil, fmt.Errorf("%w: %s element %s not permitted in strict mode", ErrInvalidNetwork, role, p)
		}
	}
	//
	return tokens, nil
}

var unit = poly.FromInt64s(1)

// NormaliseFirstStage rewrites the first stage of a ladder whose first series
// element is s and whose first shunt element is a*s+b, for some a>0.  In this
// case, the series elements become ["1", "s/a", ...] and the shunt elements
// become ["s/a", ...].  This extracts a unit series branch for presentation
// purposes.  The shunt polynomials from which the ladder was tokenised are
// required to determine a.
func NormaliseFirstStage(ladder Ladder, y []poly.Polynomial) Ladder {
	if len(ladder.Z) == 0 || len(y) == 0 || ladder.Z[0] != S || y[0].Degree() != 1 {
		return ladder
	}
	//
	a := y[0].Coeff(1)
	if a.Sign() <= 0 {
		return ladder
	}
	//
	scaled := Token("s/" + poly.FormatCoefficient(a))
	//
	z := append([]Token{Unit, scaled}, ladder.Z[1:]...)
	ys := append([]Token{scaled}, ladder.Y[1:]...)
	//
	return Ladder{z, ys}
}
