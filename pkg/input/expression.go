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
package input

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-cauer/pkg/util/poly"
	"github.com/consensys/go-cauer/pkg/util/source"
)

// ParsePolynomial parses a polynomial given on the command line.  This is
// either a comma-separated list of coefficients in ascending powers of s (e.g.
// "3,4,1") or an expression in s (e.g. "s^2+4s+3").  A single number is
// treated as a constant polynomial.
func ParsePolynomial(name string, text string) (poly.Polynomial, error) {
	if strings.Contains(text, ",") {
		return parseCoefficients(text)
	}
	//
	p, errs := poly.Parse(source.NewSourceFile(name, text))
	if len(errs) > 0 {
		return poly.Polynomial{}, fmt.Errorf("%w: %s\n%s", ErrMalformed, errs[0].Error(), errs[0].Highlight())
	}
	//
	return p, nil
}

func parseCoefficients(text string) (poly.Polynomial, error) {
	var (
		items  = strings.Split(text, ",")
		coeffs = make([]*big.Rat, len(items))
		err    error
	)
	//
	for i, item := range items {
		if coeffs[i], err = ParseCoefficient(strings.TrimSpace(item)); err != nil {
			return poly.Polynomial{}, err
		}
	}
	//
	return poly.New(coeffs...), nil
}
