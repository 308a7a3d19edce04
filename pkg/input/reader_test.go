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
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/consensys/go-cauer/pkg/util/poly"
)

func Test_Reader_0(t *testing.T) {
	checkRecords(t, "1 1 1\n0 1", "s+1", "s")
}

func Test_Reader_1(t *testing.T) {
	checkRecords(t, "2\n3 4 1\n2\n0 2 1\n", "s^2+4s+3", "s^2+2s")
}

func Test_Reader_2(t *testing.T) {
	checkRecords(t, "0 1.5\n 1 1/2\t-0.25\n", "3/2", "-1/4 s+1/2")
}

func Test_Reader_3(t *testing.T) {
	checkRecords(t, "1 1 1\n0 1\n\n0 1\n1 1 1", "s+1", "s", "1", "s+1")
}

func Test_Reader_4(t *testing.T) {
	// Zero leading coefficients are trimmed
	checkRecords(t, "2 1 0 0\n1 0 0", "1", "0")
}

func Test_Reader_5(t *testing.T) {
	checkRecords(t, "")
	checkRecords(t, "  \n\t ")
}

func Test_Reader_Malformed_0(t *testing.T) {
	// Missing denominator
	checkMalformed(t, "1 1 1")
}

func Test_Reader_Malformed_1(t *testing.T) {
	// Too few coefficients
	checkMalformed(t, "2 1 1\n0 1")
	checkMalformed(t, "1 1 1\n1 0")
	checkMalformed(t, "1\n1\n0 1")
}

func Test_Reader_Malformed_2(t *testing.T) {
	checkMalformed(t, "1 1 x\n0 1")
	checkMalformed(t, "x 1 1\n0 1")
	checkMalformed(t, "-1 1\n0 1")
	checkMalformed(t, "1.5 1 1\n0 1")
	checkMalformed(t, "2000 1")
}

func Test_Reader_Malformed_3(t *testing.T) {
	// Good record followed by a bad one
	checkMalformed(t, "0 1\n0 1\n1 1")
}

func Test_Reader_Malformed_4(t *testing.T) {
	// Too many coefficients
	checkMalformed(t, "1 1 1 1\n0 1\n")
	checkMalformed(t, "1 1 1\n0 1 5")
	// Both polynomials on one line
	checkMalformed(t, "1 1 1 0 1")
}

func Test_Reader_Prompt(t *testing.T) {
	var prompts []string
	//
	reader := NewReader(strings.NewReader("1\n1 1\n0\n2\n")).WithPrompt(func(msg string) {
		prompts = append(prompts, msg)
	})
	//
	if _, err := reader.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if len(prompts) != 4 {
		t.Fatalf("expected 4 prompts, got %v", prompts)
	} else if prompts[1] != "Enter 2 numerator coefficients a0..a1 (ascending powers): " {
		t.Errorf("unexpected prompt %q", prompts[1])
	}
	//
	if _, err := reader.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected end of input, got %v", err)
	}
}

func Test_FormatRecord_0(t *testing.T) {
	record := Record{parse("s^2+4s+3"), parse("s^2+2s")}
	//
	if text := FormatRecord(record); text != "2 3 4 1\n2 0 2 1" {
		t.Errorf("unexpected record %q", text)
	}
}

func Test_FormatRecord_1(t *testing.T) {
	for _, c := range [][2]string{{"1/3 s-2", "0.5"}, {"0", "s^3"}, {"-s^4+1", "7"}} {
		record := Record{parse(c[0]), parse(c[1])}
		text := FormatRecord(record)
		//
		checkRecords(t, text, c[0], c[1])
	}
}

func Test_ParseCoefficient(t *testing.T) {
	for _, text := range []string{"1", "-2", "0.5", "1e-3", "3/4"} {
		if _, err := ParseCoefficient(text); err != nil {
			t.Errorf("unexpected error parsing %s: %v", text, err)
		}
	}
	//
	for _, text := range []string{"", "s", "1/0", "one", "1,2"} {
		if _, err := ParseCoefficient(text); !errors.Is(err, ErrMalformed) {
			t.Errorf("expected %q to be malformed", text)
		}
	}
}

func Test_ParsePolynomial_0(t *testing.T) {
	checkParsePolynomial(t, "s^2+4s+3", "s^2+4s+3")
	checkParsePolynomial(t, "3,4,1", "s^2+4s+3")
	checkParsePolynomial(t, "0, 2, 1", "s^2+2s")
	checkParsePolynomial(t, "5", "5")
	checkParsePolynomial(t, "1/2,0.25", "0.25s+0.5")
}

func Test_ParsePolynomial_1(t *testing.T) {
	for _, text := range []string{"", "s^", "3,,1", "1,s", "x+1"} {
		if _, err := ParsePolynomial("--num", text); !errors.Is(err, ErrMalformed) {
			t.Errorf("expected %q to be malformed, got %v", text, err)
		}
	}
}

// =========================================================================================

// Check records are read as given, where expected polynomials alternate
// numerator then denominator.
func checkRecords(t *testing.T, input string, expected ...string) {
	records, err := NewReader(strings.NewReader(input)).ReadAll()
	//
	if err != nil {
		t.Fatalf("unexpected error reading %q: %v", input, err)
	} else if 2*len(records) != len(expected) {
		t.Fatalf("reading %q: expected %d records, got %d", input, len(expected)/2, len(records))
	}
	//
	for i, r := range records {
		num, den := parse(expected[2*i]), parse(expected[2*i+1])
		//
		if !r.Num.Equal(num) || !r.Den.Equal(den) {
			t.Errorf("reading %q: expected (%s)/(%s), got (%s)/(%s)", input, num, den, r.Num, r.Den)
		}
	}
}

func checkMalformed(t *testing.T, input string) {
	if records, err := NewReader(strings.NewReader(input)).ReadAll(); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected %q to be malformed, got %v (%v)", input, records, err)
	}
}

func checkParsePolynomial(t *testing.T, text string, expected string) {
	p, err := ParsePolynomial("--num", text)
	//
	if err != nil {
		t.Errorf("unexpected error parsing %q: %v", text, err)
	} else if !p.Equal(parse(expected)) {
		t.Errorf("parsing %q: expected %s, got %s", text, expected, p)
	}
}

func parse(text string) poly.Polynomial {
	p, errs := poly.ParseString(text)
	if len(errs) > 0 {
		panic(errs[0].Error())
	}
	//
	return p
}
