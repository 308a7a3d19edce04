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
package poly

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned when attempting to divide by the zero
// polynomial.
var ErrDivisionByZero = errors.New("poly: division by zero polynomial")

// Polynomial is a univariate polynomial in s with exact rational coefficients,
// held in ascending order of power (i.e. the coefficient at index i multiplies
// s^i).  A polynomial is always kept in canonical form, meaning it has no
// trailing zero coefficients.  Thus, the zero polynomial has no coefficients
// at all.  Polynomials are values: no operation modifies its operands and the
// zero value of this type is the zero polynomial.
type Polynomial struct {
	coeffs []*big.Rat
}

// New constructs a polynomial from coefficients given in ascending order of
// power.  The coefficients are copied, hence the caller remains free to modify
// them afterwards.
func New(coeffs ...*big.Rat) Polynomial {
	ncoeffs := make([]*big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		if c == nil {
			ncoeffs[i] = new(big.Rat)
		} else {
			ncoeffs[i] = new(big.Rat).Set(c)
		}
	}
	//
	return canonical(ncoeffs)
}

// FromInt64s constructs a polynomial from integer coefficients given in
// ascending order of power.
func FromInt64s(coeffs ...int64) Polynomial {
	ncoeffs := make([]*big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i] = big.NewRat(c, 1)
	}
	//
	return canonical(ncoeffs)
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// Monomial constructs the polynomial c*s^k.  If c is zero, then the zero
// polynomial is returned.
func Monomial(c *big.Rat, k uint) Polynomial {
	if c.Sign() == 0 {
		return Polynomial{}
	}
	//
	coeffs := zeros(k + 1)
	coeffs[k] = new(big.Rat).Set(c)
	//
	return Polynomial{coeffs}
}

// S returns the monomial s.
func S() Polynomial {
	return FromInt64s(0, 1)
}

// Degree returns the degree of this polynomial, which is -1 for the zero
// polynomial.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Len returns the number of coefficients in this polynomial, which is always
// one more than its degree.
func (p Polynomial) Len() uint {
	return uint(len(p.coeffs))
}

// IsZero checks whether or not this is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeff returns (a copy of) the coefficient of s^i.  Coefficients beyond the
// degree of this polynomial are zero.
func (p Polynomial) Coeff(i uint) *big.Rat {
	if i >= uint(len(p.coeffs)) {
		return new(big.Rat)
	}
	//
	return new(big.Rat).Set(p.coeffs[i])
}

// Leading returns (a copy of) the leading coefficient of this polynomial, or
// zero for the zero polynomial.
func (p Polynomial) Leading() *big.Rat {
	if len(p.coeffs) == 0 {
		return new(big.Rat)
	}
	//
	return new(big.Rat).Set(p.coeffs[len(p.coeffs)-1])
}

// Coefficients returns a copy of the coefficients of this polynomial in
// ascending order of power.
func (p Polynomial) Coefficients() []*big.Rat {
	coeffs := make([]*big.Rat, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Rat).Set(c)
	}
	//
	return coeffs
}

// IsInteger checks whether every coefficient of this polynomial is integral.
func (p Polynomial) IsInteger() bool {
	for _, c := range p.coeffs {
		if !c.IsInt() {
			return false
		}
	}
	//
	return true
}

// Equal checks whether two polynomials are identical.  Since both are in
// canonical form, this amounts to a pointwise comparison.
func (p Polynomial) Equal(other Polynomial) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	//
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(other.coeffs[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// Neg returns the negation of this polynomial.
func (p Polynomial) Neg() Polynomial {
	coeffs := make([]*big.Rat, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		coeffs[i] = new(big.Rat).Neg(c)
	}
	//
	return Polynomial{coeffs}
}

// Scale multiplies every coefficient of this polynomial by a constant.
func (p Polynomial) Scale(c *big.Rat) Polynomial {
	coeffs := make([]*big.Rat, len(p.coeffs))
	//
	for i, ith := range p.coeffs {
		coeffs[i] = new(big.Rat).Mul(ith, c)
	}
	//
	return canonical(coeffs)
}

// Add returns the sum of this polynomial and another.
func (p Polynomial) Add(other Polynomial) Polynomial {
	coeffs := zeros(uint(max(len(p.coeffs), len(other.coeffs))))
	//
	for i := range coeffs {
		coeffs[i].Add(p.at(i), other.at(i))
	}
	//
	return canonical(coeffs)
}

// Sub returns the result of subtracting another polynomial from this
// polynomial.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	coeffs := zeros(uint(max(len(p.coeffs), len(other.coeffs))))
	//
	for i := range coeffs {
		coeffs[i].Sub(p.at(i), other.at(i))
	}
	//
	return canonical(coeffs)
}

// Mul returns the product of this polynomial and another.  The product has
// degree deg(p)+deg(q), unless either operand is zero in which case the result
// is zero.
func (p Polynomial) Mul(other Polynomial) Polynomial {
	if p.IsZero() || other.IsZero() {
		return Polynomial{}
	}
	//
	var (
		coeffs = zeros(uint(len(p.coeffs) + len(other.coeffs) - 1))
		tmp    big.Rat
	)
	//
	for i, ith := range p.coeffs {
		for j, jth := range other.coeffs {
			tmp.Mul(ith, jth)
			coeffs[i+j].Add(coeffs[i+j], &tmp)
		}
	}
	//
	return canonical(coeffs)
}

// DivMod performs polynomial long division of this polynomial (the dividend)
// by a given divisor, returning the quotient and remainder.  These satisfy
// p = q*d + r where either r is zero or deg(r) < deg(d).  Division by the zero
// polynomial fails with ErrDivisionByZero.
func (p Polynomial) DivMod(divisor Polynomial) (Polynomial, Polynomial, error) {
	if divisor.IsZero() {
		return Polynomial{}, Polynomial{}, ErrDivisionByZero
	} else if p.Degree() < divisor.Degree() {
		return Polynomial{}, p, nil
	}
	//
	var (
		d    = divisor.Degree()
		lead = divisor.coeffs[d]
		quot = zeros(uint(p.Degree() - d + 1))
		rem  = p.Coefficients()
		tmp  big.Rat
	)
	// Since arithmetic is exact, the leading coefficient of the remainder is
	// eliminated on every iteration.
	for len(rem) > 0 && len(rem)-1 >= d {
		var (
			n = len(rem) - 1
			k = n - d
		)
		//
		quot[k].Quo(rem[n], lead)
		//
		for i, ith := range divisor.coeffs {
			tmp.Mul(quot[k], ith)
			rem[k+i].Sub(rem[k+i], &tmp)
		}
		//
		rem = trim(rem)
	}
	//
	return canonical(quot), Polynomial{rem}, nil
}

// Eval evaluates this polynomial at a given point using Horner's rule.
func (p Polynomial) Eval(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, p.coeffs[i])
	}
	//
	return acc
}

// Get the coefficient at a given index without copying, or zero if the index
// is beyond the degree of this polynomial.
func (p Polynomial) at(i int) *big.Rat {
	if i < len(p.coeffs) {
		return p.coeffs[i]
	}
	//
	return &zero
}

var zero big.Rat

// Construct an array of n distinct zero coefficients.
func zeros(n uint) []*big.Rat {
	coeffs := make([]*big.Rat, n)
	//
	for i := range coeffs {
		coeffs[i] = new(big.Rat)
	}
	//
	return coeffs
}

// Construct a polynomial which takes ownership of the given coefficients,
// after removing trailing zeros.
func canonical(coeffs []*big.Rat) Polynomial {
	return Polynomial{trim(coeffs)}
}

// Remove any trailing zero coefficients.
func trim(coeffs []*big.Rat) []*big.Rat {
	n := len(coeffs)
	//
	for n > 0 && coeffs[n-1].Sign() == 0 {
		n--
	}
	//
	if n == 0 {
		return nil
	}
	//
	return coeffs[:n]
}
