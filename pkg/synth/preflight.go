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
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/go-cauer/pkg/util/poly"
)

// ErrNotRealisable signals that a transfer function was rejected before
// expansion, since it cannot be the driving-point impedance of a passive
// network.
var ErrNotRealisable = errors.New("synth: not realisable as passive network")

// Preflight performs some simple necessary conditions for num/den to be the
// driving-point impedance of a passive network.  After negating both (if
// necessary) so that den has a positive leading coefficient, it checks that:
// (i) neither polynomial is zero; (ii) their degrees differ by at most one;
// (iii) no coefficient is negative; (iv) den has no roots in the right half
// plane, allowing at most a single root at the origin.  The latter uses the
// Routh-Hurwitz criterion, and is conservative in that some denominators with
// roots on the imaginary axis are rejected.
func Preflight(num, den poly.Polynomial) error {
	if num.IsZero() {
		return fmt.Errorf("%w: numerator is zero", ErrNotRealisable)
	} else if den.IsZero() {
		return fmt.Errorf("%w: denominator is zero", ErrNotRealisable)
	} else if den.Leading().Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	//
	if gap := num.Degree() - den.Degree(); gap > 1 || gap < -1 {
		return fmt.Errorf("%w: degrees of (%s)/(%s) differ by more than one", ErrNotRealisable, num, den)
	} else if hasNegative(num) || hasNegative(den) {
		return fmt.Errorf("%w: negative coefficients in (%s)/(%s)", ErrNotRealisable, num, den)
	} else if !IsStable(den) {
		return fmt.Errorf("%w: denominator %s has roots in the right half plane", ErrNotRealisable, den)
	}
	//
	return nil
}

func hasNegative(p poly.Polynomial) bool {
	for i, n := uint(0), p.Len(); i < n; i++ {
		if p.Coeff(i).Sign() < 0 {
			return true
		}
	}
	//
	return false
}

// IsStable checks whether a polynomial with positive leading coefficient has
// no roots in the right half plane, permitting at most one root at the origin.
// Roots on the imaginary axis are accepted when the Routh array reveals them
// through a row of zeros.
func IsStable(p poly.Polynomial) bool {
	coeffs := p.Coefficients()
	// Strip a single root at the origin
	if len(coeffs) > 1 && coeffs[0].Sign() == 0 {
		coeffs = coeffs[1:]
	}
	//
	return hurwitz(coeffs)
}

// Apply the Routh-Hurwitz criterion to a polynomial with coefficients given in
// ascending order of power.  When an entire row vanishes, it is replaced by the
// derivative of the auxiliary polynomial formed from the row above.  A zero in
// the first column of an otherwise nonzero row is treated as a failure.
func hurwitz(ascending []*big.Rat) bool {
	var (
		n    = len(ascending) - 1
		cols = n/2 + 1
		rows = make([][]*big.Rat, n+1)
	)
	//
	if n < 0 {
		return false
	}
	// First two rows take alternating coefficients from the highest power.
	for r := 0; r <= min(n, 1); r++ {
		rows[r] = zeroRow(cols)
		//
		for c := 0; r+2*c <= n; c++ {
			rows[r][c].Set(ascending[n-r-2*c])
		}
	}
	//
	for r := 2; r <= n; r++ {
		if isZeroRow(rows[r-1]) {
			rows[r-1] = auxiliaryDerivative(rows[r-2], n-(r-2))
		}
		//
		if rows[r-1][0].Sign() == 0 {
			return false
		}
		//
		rows[r] = zeroRow(cols)
		//
		for c := 0; c+1 < cols; c++ {
			var lhs, rhs big.Rat
			//
			lhs.Mul(rows[r-1][0], rows[r-2][c+1])
			rhs.Mul(rows[r-2][0], rows[r-1][c+1])
			rows[r][c].Sub(&lhs, &rhs)
			rows[r][c].Quo(rows[r][c], rows[r-1][0])
		}
	}
	// Stable if first column all positive
	for _, row := range rows {
		if row[0].Sign() <= 0 {
			return false
		}
	}
	//
	return true
}

// Construct the row of coefficients for the derivative of the auxiliary
// polynomial given by a row of the Routh array, where the first entry of that
// row multiplies s^degree and subsequent entries decrease the power by two.
func auxiliaryDerivative(row []*big.Rat, degree int) []*big.Rat {
	nrow := zeroRow(len(row))
	//
	for c, ith := range row {
		if power := degree - 2*c; power > 0 {
			nrow[c].Mul(ith, big.NewRat(int64(power), 1))
		}
	}
	//
	return nrow
}

func zeroRow(n int) []*big.Rat {
	row := make([]*big.Rat, n)
	//
	for i := range row {
		row[i] = new(big.Rat)
	}
	//
	return row
}

func isZeroRow(row []*big.Rat) bool {
	for _, c := range row {
		if c.Sign() != 0 {
			return false
		}
	}
	//
	return true
}
