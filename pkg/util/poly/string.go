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
	"math/big"
	"strconv"
	"strings"
)

var one = big.NewRat(1, 1)

// String renders this polynomial in conventional notation, highest power
// first.  For example, 3+4s+s^2 is rendered as "s^2+4s+3".  Zero coefficients
// are omitted, as are unit coefficients (except on the constant term).  The
// zero polynomial is rendered as "0".
func (p Polynomial) String() string {
	var buf strings.Builder
	//
	if p.IsZero() {
		return "0"
	}
	//
	for i := p.Degree(); i >= 0; i-- {
		var (
			ith = p.coeffs[i]
			abs big.Rat
		)
		//
		if ith.Sign() == 0 {
			continue
		} else if ith.Sign() < 0 {
			buf.WriteString("-")
		} else if buf.Len() > 0 {
			buf.WriteString("+")
		}
		//
		abs.Abs(ith)
		// Various cases to improve readability
		switch {
		case i == 0:
			buf.WriteString(FormatCoefficient(&abs))
		case abs.Cmp(one) != 0:
			buf.WriteString(FormatCoefficient(&abs))
			fallthrough
		default:
			buf.WriteString("s")
			//
			if i > 1 {
				buf.WriteString("^")
				buf.WriteString(strconv.Itoa(i))
			}
		}
	}
	//
	return buf.String()
}

// FormatCoefficient renders a single coefficient.  Integers are rendered
// exactly, whilst other values are rendered with six significant digits.
func FormatCoefficient(c *big.Rat) string {
	if c.IsInt() {
		return c.Num().String()
	}
	//
	f, _ := c.Float64()
	//
	return strconv.FormatFloat(f, 'g', 6, 64)
}
