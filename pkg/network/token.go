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
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNetwork signals that no ladder network can be constructed from a
// given set of elements.
var ErrInvalidNetwork = errors.New("network: invalid network")

// Token is the canonical symbol of a single ladder element.
type Token string

const (
	// Unit is a unit resistor (series) or unit conductance (shunt).
	Unit Token = "1"
	// S is a unit inductor (series) or unit capacitor (shunt).
	S Token = "s"
	// InverseS is the implied reciprocal term 1/s, used in place of a
	// trailing zero element.
	InverseS Token = "1/s"
)

// Role determines where in the ladder an element is placed.
type Role uint8

const (
	// Series elements lie on the main current path and are impedances (Z).
	Series Role = iota
	// Shunt elements lie across the signal path and are admittances (Y).
	Shunt
)

func (r Role) String() string {
	if r == Series {
		return "Z"
	}
	//
	return "Y"
}

// Mode determines which tokens are permitted.
type Mode uint8

const (
	// General mode renders any element as a general polynomial token, such as
	// "2s+3".
	General Mode = iota
	// Strict mode permits only the tokens "1", "s" and "1/s".
	Strict
)

// ParseMode converts the name of a mode into a mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "general":
		return General, nil
	case "strict":
		return Strict, nil
	default:
		return General, fmt.Errorf("unknown tokenisation mode \"%s\"", name)
	}
}

func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	//
	return "general"
}

// Ladder is a Cauer ladder network made up from a sequence of series elements
// (Z) and a sequence of shunt elements (Y).  Series and shunt elements
// alternate along the ladder, starting with the first series element.
type Ladder struct {
	Z []Token
	Y []Token
}

// Empty checks whether this ladder has no elements at all, which would imply
// its terminals are shorted.
func (p Ladder) Empty() bool {
	return len(p.Z) == 0 && len(p.Y) == 0
}

// Elements returns the elements of a given role.
func (p Ladder) Elements(role Role) []Token {
	if role == Series {
		return p.Z
	}
	//
	return p.Y
}

func (p Ladder) String() string {
	return fmt.Sprintf("Z = %s\nY = %s", Join(p.Z, ", ", "[", "]"), Join(p.Y, ", ", "[", "]"))
}

// Join tokens together with a given separator, surrounded by a given prefix
// and suffix.
func Join(tokens []Token, sep string, prefix string, suffix string) string {
	var builder strings.Builder
	//
	builder.WriteString(prefix)
	//
	for i, t := range tokens {
		if i != 0 {
			builder.WriteString(sep)
		}
		//
		builder.WriteString(string(t))
	}
	//
	builder.WriteString(suffix)
	//
	return builder.String()
}
