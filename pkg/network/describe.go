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
	"math/big"
	"strings"

	"github.com/consensys/go-cauer/pkg/util/poly"
)

// Kind identifies a type of passive element.
type Kind uint8

const (
	// Resistor with value in Ohms.
	Resistor Kind = iota
	// Inductor with value in Henries.
	Inductor
	// Capacitor with value in Farads.
	Capacitor
)

// Element is a single passive element with a given value.
type Element struct {
	Kind  Kind
	Value *big.Rat
}

func (e Element) String() string {
	value := poly.FormatCoefficient(e.Value)
	//
	switch e.Kind {
	case Resistor:
		return fmt.Sprintf("R=%sΩ", value)
	case Inductor:
		return fmt.Sprintf("L=%sH", value)
	default:
		return fmt.Sprintf("C=%sF", value)
	}
}

// Branch is the set of elements realising a single token.  Series branches
// connect their elements in series, whilst shunt branches connect them in
// parallel.
type Branch struct {
	Role     Role
	Elements []Element
}

func (b Branch) String() string {
	var (
		builder strings.Builder
		sep     = ", "
	)
	//
	if b.Role == Shunt {
		sep = " || "
	}
	//
	for i, e := range b.Elements {
		if i != 0 {
			builder.WriteString(sep)
		}
		//
		builder.WriteString(e.String())
	}
	//
	return builder.String()
}

// Describe determines the element values realising a given token in a given
// role.  A series token is an impedance, hence a*s+b is an inductor of a
// Henries in series with a resistor of b Ohms.  A shunt token is an admittance,
// hence a*s+b is a capacitor of a Farads in parallel with a resistor of 1/b
// Ohms.  The tokens "1/s" and "s/a" are also understood.
func Describe(token Token, role Role) (Branch, error) {
	var (
		text = strings.ReplaceAll(string(token), " ", "")
		one  = big.NewRat(1, 1)
	)
	//
	if text == string(InverseS) {
		if role == Series {
			return Branch{role, []Element{{Capacitor, one}}}, nil
		}
		//
		return Branch{role, []Element{{Inductor, one}}}, nil
	} else if divisor, ok := strings.CutPrefix(text, "s/"); ok {
		a, ok := new(big.Rat).SetString(divisor)
		if !ok || a.Sign() <= 0 {
			return Branch{}, fmt.Errorf("%w: cannot describe %s", ErrInvalidNetwork, token)
		}
		//
		value := new(big.Rat).Inv(a)
		//
		if role == Series {
			return Branch{role, []Element{{Inductor, value}}}, nil
		}
		//
		return Branch{role, []Element{{Capacitor, value}}}, nil
	}
	//
	p, errs := poly.ParseString(text)
	if len(errs) > 0 || p.IsZero() || !IsRealisable(p) {
		return Branch{}, fmt.Errorf("%w: cannot describe %s", ErrInvalidNetwork, token)
	}
	//
	return describeLinear(role, p.Coeff(1), p.Coeff(0)), nil
}

// DescribeAll describes every element of a ladder, series elements first.
func DescribeAll(ladder Ladder) ([]Branch, []Branch, error) {
	var (
		zs = make([]Branch, len(ladder.Z))
		ys = make([]Branch, len(ladder.Y))
		err error
	)
	//
	for i, t := range ladder.Z {
		if zs[i], err = Describe(t, Series); err != nil {
			return nil, nil, err
		}
	}
	//
	for i, t := range ladder.Y {
		if ys[i], err = Describe(t, Shunt); err != nil {
			return nil, nil, err
		}
	}
	//
	return zs, ys, nil
}

func describeLinear(role Role, a *big.Rat, b *big.Rat) Branch {
	var elements []Element
	//
	if role == Series {
		if a.Sign() > 0 {
			elements = append(elements, Element{Inductor, a})
		}
		//
		if b.Sign() > 0 {
			elements = append(elements, Element{Resistor, b})
		}
	} else {
		if a.Sign() > 0 {
			elements = append(elements, Element{Capacitor, a})
		}
		//
		if b.Sign() > 0 {
			elements = append(elements, Element{Resistor, new(big.Rat).Inv(b)})
		}
	}
	//
	return Branch{role, elements}
}
