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
package cauer

import (
	"fmt"
	"strings"

	"github.com/consensys/go-cauer/pkg/util/poly"
	log "github.com/sirupsen/logrus"
)

// ErrDomain is returned when an expansion is requested for a zero
// denominator.  It wraps poly.ErrDivisionByZero.
var ErrDomain = fmt.Errorf("cauer: domain error: %w", poly.ErrDivisionByZero)

// Option configures an expansion.
type Option func(*config)

type config struct {
	normaliseSigns bool
}

// WithSignNormalisation keeps the leading coefficient of every quotient (and of
// every subsequent divisor) positive.  Whenever a quotient has a negative
// leading coefficient, the quotient, divisor and remainder are negated
// together.  Likewise, whenever the remainder has a negative leading
// coefficient, it is negated together with the divisor.  Since each flip
// negates the next numerator and denominator together, later quotients are
// unaffected and only the reported sign of a flipped quotient changes.  The
// quotients as computed remain available through Computed().
func WithSignNormalisation() Option {
	return func(c *config) {
		c.normaliseSigns = true
	}
}

// Expansion is the sequence of quotients obtained by applying the polynomial
// Euclidean algorithm to a ratio N/D.  That is, N/D = q0 + 1/(q1 + 1/(q2 +
// ...)).  An expansion is immutable once constructed.
type Expansion struct {
	// Quotients as reported, after any sign normalisation.
	quotients []poly.Polynomial
	// Quotients as computed by division.  These form the continued fraction
	// of N/D.
	computed []poly.Polynomial
	// Numerator and denominator of the ratio left over when expansion
	// finished.  The denominator is zero when the expansion is exact.
	tailNum, tailDen poly.Polynomial
}

// Expand computes the continued fraction expansion of num/den.  At each step,
// the current numerator is divided by the current denominator.  The quotient
// is recorded, the denominator becomes the next numerator and the remainder
// becomes the next denominator.  This stops when the denominator reaches zero
// (the expansion is exact) or when a quotient is zero (the expansion stalls,
// since no further progress can be made).  Since the degree of the remainder
// strictly decreases, there are at most deg(den)+1 steps.  An expansion of a
// zero denominator fails with ErrDomain.
func Expand(num, den poly.Polynomial, options ...Option) (*Expansion, error) {
	var (
		cfg       config
		quotients []poly.Polynomial
		computed  []poly.Polynomial
	)
	//
	for _, opt := range options {
		opt(&cfg)
	}
	//
	if den.IsZero() {
		return nil, fmt.Errorf("%w (expanding %s)", ErrDomain, num)
	}
	//
	for !den.IsZero() {
		q, r, err := num.DivMod(den)
		// Should be unreachable since den is nonzero
		if err != nil {
			return nil, err
		} else if q.IsZero() {
			break
		}
		//
		log.Debugf("stage %d: (%s)/(%s) gives quotient %s, remainder %s", len(computed), num, den, q, r)
		//
		computed = append(computed, q)
		//
		if cfg.normaliseSigns {
			q, den, r = normaliseSigns(q, den, r)
		}
		//
		quotients = append(quotients, q)
		num, den = den, r
	}
	//
	return &Expansion{quotients, computed, num, den}, nil
}

func normaliseSigns(q, den, r poly.Polynomial) (poly.Polynomial, poly.Polynomial, poly.Polynomial) {
	if q.Leading().Sign() < 0 {
		q, den, r = q.Neg(), den.Neg(), r.Neg()
	}
	//
	if r.Leading().Sign() < 0 {
		den, r = den.Neg(), r.Neg()
	}
	//
	return q, den, r
}

// Len returns the number of quotients (i.e. ladder stages) in this expansion.
func (p *Expansion) Len() uint {
	return uint(len(p.quotients))
}

// Quotient returns the ith quotient of this expansion.
func (p *Expansion) Quotient(i uint) poly.Polynomial {
	return p.quotients[i]
}

// Quotients returns a copy of the quotient sequence.
func (p *Expansion) Quotients() []poly.Polynomial {
	quotients := make([]poly.Polynomial, len(p.quotients))
	copy(quotients, p.quotients)
	//
	return quotients
}

// Computed returns a copy of the quotient sequence as computed by division,
// prior to any sign normalisation.  Without sign normalisation, this is
// identical to Quotients().
func (p *Expansion) Computed() []poly.Polynomial {
	computed := make([]poly.Polynomial, len(p.computed))
	copy(computed, p.computed)
	//
	return computed
}

// Exact indicates whether the expansion terminated with a zero remainder, as
// opposed to stalling on a zero quotient.
func (p *Expansion) Exact() bool {
	return p.tailDen.IsZero()
}

// Tail returns the ratio which remained unexpanded when a stalled expansion
// finished.  For an exact expansion, the denominator is zero.
func (p *Expansion) Tail() (poly.Polynomial, poly.Polynomial) {
	return p.tailNum, p.tailDen
}

// Rational reconstructs a ratio equivalent to the one which was expanded, by
// folding the quotients back together from the innermost stage outwards.
// Thus, for an expansion of N/D, this returns N' and D' where N*D' == N'*D.
// Observe that, since the tail of a stalled expansion is retained, this holds
// for stalled expansions as well.  The computed quotients are used, hence it
// also holds under sign normalisation.
func (p *Expansion) Rational() (poly.Polynomial, poly.Polynomial) {
	return fold(p.computed, p.tailNum, p.tailDen)
}

// Fold combines a sequence of quotients q0, q1, .., qn into the ratio q0 + 1/(q1
// + 1/(.. + 1/qn)), returning its numerator and denominator.  This is the
// inverse of Expand for any sequence whose quotients (other than the first) are
// nonzero and non-constant.  An empty sequence gives 1/0.
func Fold(quotients []poly.Polynomial) (poly.Polynomial, poly.Polynomial) {
	return fold(quotients, poly.FromInt64s(1), poly.Zero())
}

func fold(quotients []poly.Polynomial, num, den poly.Polynomial) (poly.Polynomial, poly.Polynomial) {
	// H_i = q_i + 1/H_{i+1}
	for i := len(quotients) - 1; i >= 0; i-- {
		num, den = quotients[i].Mul(num).Add(den), num
	}
	//
	return num, den
}

func (p *Expansion) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, q := range p.quotients {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(q.String())
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}
