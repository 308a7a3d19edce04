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
	"math/rand"
	"testing"
)

func Test_PolyArith_Canonical_0(t *testing.T) {
	p := FromInt64s(0, 0, 0)
	//
	if !p.IsZero() || p.Degree() != -1 || p.Len() != 0 {
		t.Errorf("expected zero polynomial, got %s (degree %d)", p, p.Degree())
	}
}

func Test_PolyArith_Canonical_1(t *testing.T) {
	p := FromInt64s(1, 2, 0, 0)
	//
	if p.Degree() != 1 || p.Len() != 2 {
		t.Errorf("expected degree 1, got %d", p.Degree())
	}
}

func Test_PolyArith_Canonical_2(t *testing.T) {
	// Normalising an already canonical polynomial is a no-op
	for _, p := range []Polynomial{Zero(), FromInt64s(3), FromInt64s(3, 4, 1), FromInt64s(0, 0, 5)} {
		if q := New(p.Coefficients()...); !q.Equal(p) {
			t.Errorf("canonicalisation changed %s into %s", p, q)
		}
	}
}

func Test_PolyArith_Add_0(t *testing.T) {
	checkAdd(t, "s+1", "s^2+2", "s^2+s+3")
}

func Test_PolyArith_Add_1(t *testing.T) {
	checkAdd(t, "s^2+1", "-s^2", "1")
}

func Test_PolyArith_Add_2(t *testing.T) {
	checkAdd(t, "s", "-s", "0")
}

func Test_PolyArith_Sub_0(t *testing.T) {
	checkSub(t, "s^2+4s+3", "s^2+2s", "2s+3")
}

func Test_PolyArith_Sub_1(t *testing.T) {
	checkSub(t, "1", "s^3", "-s^3+1")
}

func Test_PolyArith_Mul_0(t *testing.T) {
	checkMul(t, "s+1", "s+3", "s^2+4s+3")
}

func Test_PolyArith_Mul_1(t *testing.T) {
	checkMul(t, "s^2+2", "0", "0")
}

func Test_PolyArith_Mul_2(t *testing.T) {
	checkMul(t, "1/2 s", "4", "2s")
}

func Test_PolyArith_DivMod_0(t *testing.T) {
	checkDivMod(t, "s^2+4s+3", "s^2+2s", "1", "2s+3")
}

func Test_PolyArith_DivMod_1(t *testing.T) {
	checkDivMod(t, "s^4+3s^2+1", "s^3+2s", "s", "s^2+1")
}

func Test_PolyArith_DivMod_2(t *testing.T) {
	// Dividend of lower degree gives zero quotient
	checkDivMod(t, "s+1", "s^2", "0", "s+1")
}

func Test_PolyArith_DivMod_3(t *testing.T) {
	checkDivMod(t, "s^3+2s", "s^2+1", "s", "s")
}

func Test_PolyArith_DivMod_4(t *testing.T) {
	checkDivMod(t, "s^2+1", "2s", "1/2 s", "1")
}

func Test_PolyArith_DivMod_5(t *testing.T) {
	checkDivMod(t, "0", "s+1", "0", "0")
}

func Test_PolyArith_DivMod_6(t *testing.T) {
	checkDivMod(t, "6s^2+5s+1", "3", "2s^2+5/3 s+1/3", "0")
}

func Test_PolyArith_DivMod_Zero(t *testing.T) {
	for _, n := range []string{"0", "1", "s^2+4s+3"} {
		if _, _, err := parse(n).DivMod(Zero()); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("expected division by zero for %s, got %v", n, err)
		}
	}
}

func Test_PolyArith_DivMod_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	//
	for i := 0; i < 500; i++ {
		n := randomPoly(rng, 6)
		d := randomPoly(rng, 4)
		//
		if d.IsZero() {
			continue
		}
		//
		q, r, err := n.DivMod(d)
		if err != nil {
			t.Fatalf("unexpected error dividing %s by %s: %v", n, d, err)
		} else if !q.Mul(d).Add(r).Equal(n) {
			t.Errorf("(%s)*(%s)+(%s) does not reconstruct %s", q, d, r, n)
		} else if !r.IsZero() && r.Degree() >= d.Degree() {
			t.Errorf("remainder %s not smaller than divisor %s", r, d)
		}
	}
}

func Test_PolyArith_Eval_0(t *testing.T) {
	p := parse("s^2+4s+3")
	//
	if v := p.Eval(big.NewRat(2, 1)); v.Cmp(big.NewRat(15, 1)) != 0 {
		t.Errorf("expected 15, got %s", v.RatString())
	}
	//
	if v := p.Eval(big.NewRat(-1, 2)); v.Cmp(big.NewRat(5, 4)) != 0 {
		t.Errorf("expected 5/4, got %s", v.RatString())
	}
}

func Test_PolyArith_Immutable(t *testing.T) {
	coeffs := []*big.Rat{big.NewRat(1, 1), big.NewRat(2, 1)}
	p := New(coeffs...)
	// Mutating inputs or outputs does not affect the polynomial
	coeffs[0].SetInt64(7)
	p.Coeff(1).SetInt64(9)
	p.Leading().SetInt64(9)
	//
	if !p.Equal(FromInt64s(1, 2)) {
		t.Errorf("polynomial was mutated: %s", p)
	}
	// Arithmetic does not affect operands
	q := FromInt64s(1, 1)
	_ = p.Add(q)
	_, _, _ = p.Mul(q).DivMod(q)
	//
	if !p.Equal(FromInt64s(1, 2)) || !q.Equal(FromInt64s(1, 1)) {
		t.Errorf("operands were mutated: %s, %s", p, q)
	}
}

// =========================================================================================

func checkAdd(t *testing.T, l, r, expected string) {
	if actual := parse(l).Add(parse(r)); !actual.Equal(parse(expected)) {
		t.Errorf("(%s)+(%s): expected %s, got %s", l, r, expected, actual)
	}
}

func checkSub(t *testing.T, l, r, expected string) {
	if actual := parse(l).Sub(parse(r)); !actual.Equal(parse(expected)) {
		t.Errorf("(%s)-(%s): expected %s, got %s", l, r, expected, actual)
	}
}

func checkMul(t *testing.T, l, r, expected string) {
	if actual := parse(l).Mul(parse(r)); !actual.Equal(parse(expected)) {
		t.Errorf("(%s)*(%s): expected %s, got %s", l, r, expected, actual)
	}
}

func checkDivMod(t *testing.T, n, d, quot, rem string) {
	q, r, err := parse(n).DivMod(parse(d))
	//
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	} else if !q.Equal(parse(quot)) {
		t.Errorf("(%s)/(%s): expected quotient %s, got %s", n, d, quot, q)
	} else if !r.Equal(parse(rem)) {
		t.Errorf("(%s)/(%s): expected remainder %s, got %s", n, d, rem, r)
	}
}

func randomPoly(rng *rand.Rand, maxDegree int) Polynomial {
	coeffs := make([]*big.Rat, rng.Intn(maxDegree+1)+1)
	//
	for i := range coeffs {
		coeffs[i] = big.NewRat(rng.Int63n(21)-10, rng.Int63n(4)+1)
	}
	//
	return New(coeffs...)
}

func parse(text string) Polynomial {
	p, errs := ParseString(text)
	if len(errs) > 0 {
		panic(errs[0].Error())
	}
	//
	return p
}
