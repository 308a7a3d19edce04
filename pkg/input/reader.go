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
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/consensys/go-cauer/pkg/util/poly"
)

// ErrMalformed indicates input which does not describe a pair of polynomials.
var ErrMalformed = errors.New("input: malformed")

// Record is a single transfer function N(s)/D(s) read from the input.
type Record struct {
	Num poly.Polynomial
	Den poly.Polynomial
}

// Reader reads records made up of two lines of the form "n c0 .. cn", giving
// first the numerator and then the denominator.  Here, n is the degree and the
// coefficients are given in ascending powers of s.  A line holding only the
// degree is followed by a line holding the coefficients, as happens when
// answering prompts interactively.  Blank lines are ignored.
type Reader struct {
	scanner *bufio.Scanner
	prompt  func(string)
	// Number of records read so far
	count uint
}

// NewReader constructs a reader for a given input stream.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	//
	return &Reader{scanner, nil, 0}
}

// WithPrompt registers a function to be called before each item of a record is
// read, such as for prompting an interactive user.
func (p *Reader) WithPrompt(prompt func(string)) *Reader {
	p.prompt = prompt
	return p
}

// Next reads the next record.  This returns io.EOF if the input is exhausted
// before a record begins, or an error wrapping ErrMalformed if the input ends
// part way through a record or contains an invalid line.
func (p *Reader) Next() (Record, error) {
	var (
		record Record
		err    error
	)
	//
	p.ask("Enter numerator degree: ")
	//
	fields, ok := p.line()
	if !ok {
		if err := p.scanner.Err(); err != nil {
			return record, err
		}
		//
		return record, io.EOF
	}
	//
	p.count++
	//
	if record.Num, err = p.polynomial("numerator", "a", fields); err != nil {
		return record, err
	}
	//
	p.ask("Enter denominator degree: ")
	//
	if fields, ok = p.line(); !ok {
		return record, p.malformed("missing denominator")
	} else if record.Den, err = p.polynomial("denominator", "b", fields); err != nil {
		return record, err
	}
	//
	return record, nil
}

// ReadAll reads records until the input is exhausted.
func (p *Reader) ReadAll() ([]Record, error) {
	var records []Record
	//
	for {
		record, err := p.Next()
		if errors.Is(err, io.EOF) {
			return records, nil
		} else if err != nil {
			return nil, err
		}
		//
		records = append(records, record)
	}
}

// Read the items of the next nonblank line, returning false when the input is
// exhausted.
func (p *Reader) line() ([]string, bool) {
	for p.scanner.Scan() {
		if fields := strings.Fields(p.scanner.Text()); len(fields) > 0 {
			return fields, true
		}
	}
	//
	return nil, false
}

// Read a polynomial from a line starting with its degree.  When the line holds
// nothing else, the coefficients are read from the following line.
func (p *Reader) polynomial(name string, letter string, fields []string) (poly.Polynomial, error) {
	n, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return poly.Polynomial{}, p.malformed("invalid %s degree %q", name, fields[0])
	} else if n > poly.MaxExponent {
		return poly.Polynomial{}, p.malformed("%s degree %d exceeds %d", name, n, poly.MaxExponent)
	}
	//
	items := fields[1:]
	//
	if len(items) == 0 {
		p.ask(fmt.Sprintf("Enter %d %s coefficients %s0..%s%d (ascending powers): ", n+1, name, letter, letter, n))
		//
		if items, _ = p.line(); len(items) == 0 {
			return poly.Polynomial{}, p.malformed("expected %d %s coefficients, found none", n+1, name)
		}
	}
	//
	if uint64(len(items)) != n+1 {
		return poly.Polynomial{}, p.malformed("expected %d %s coefficients, found %d", n+1, name, len(items))
	}
	//
	coeffs := make([]*big.Rat, n+1)
	//
	for i, item := range items {
		if coeffs[i], err = ParseCoefficient(item); err != nil {
			return poly.Polynomial{}, p.malformed("invalid %s coefficient %s%d %q", name, letter, i, item)
		}
	}
	//
	return poly.New(coeffs...), nil
}

func (p *Reader) ask(msg string) {
	if p.prompt != nil {
		p.prompt(msg)
	}
}

func (p *Reader) malformed(format string, args ...any) error {
	if err := p.scanner.Err(); err != nil {
		return fmt.Errorf("%w: record %d: %w", ErrMalformed, p.count, err)
	}
	//
	return fmt.Errorf("%w: record %d: %s", ErrMalformed, p.count, fmt.Sprintf(format, args...))
}

// ParseCoefficient parses a single coefficient given either as a decimal (e.g.
// "2", "-0.25" or "1e-3") or as a fraction (e.g. "1/3").
func ParseCoefficient(text string) (*big.Rat, error) {
	if c, ok := new(big.Rat).SetString(text); ok {
		return c, nil
	}
	//
	return nil, fmt.Errorf("%w: invalid number %q", ErrMalformed, text)
}

// FormatRecord renders a record as the two lines read by a Reader (without a
// final newline), such that reading it back gives the same polynomials.
func FormatRecord(record Record) string {
	var builder strings.Builder
	//
	for i, p := range []poly.Polynomial{record.Num, record.Den} {
		if i != 0 {
			builder.WriteString("\n")
		}
		// Zero is written as a constant
		degree := max(0, p.Degree())
		builder.WriteString(strconv.Itoa(degree))
		//
		for k := 0; k < degree+1; k++ {
			builder.WriteString(" ")
			builder.WriteString(p.Coeff(uint(k)).RatString())
		}
	}
	//
	return builder.String()
}
