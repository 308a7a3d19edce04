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
	"fmt"
	"math/big"
	"strconv"

	"github.com/consensys/go-cauer/pkg/util/source"
	"github.com/consensys/go-cauer/pkg/util/source/lex"
)

// MaxExponent is the largest power of s accepted by the parser.
const MaxExponent = 1024

// Token kinds
const (
	tEOF uint = iota
	tSpace
	tNumber
	tSymbol
	tPlus
	tMinus
	tStar
	tSlash
	tCaret
)

var digits = lex.Many(lex.Within('0', '9'))

// Scan a decimal number with optional fractional part and exponent, such as
// "12", "0.25", ".5" or "1e-3".
func number(items []rune) uint {
	n := digits(items)
	//
	if n < uint(len(items)) && items[n] == '.' {
		m := digits(items[n+1:])
		if n == 0 && m == 0 {
			return 0
		}
		//
		n += 1 + m
	}
	//
	if n == 0 {
		return 0
	} else if n < uint(len(items)) && (items[n] == 'e' || items[n] == 'E') {
		k := n + 1
		//
		if k < uint(len(items)) && (items[k] == '+' || items[k] == '-') {
			k++
		}
		//
		if m := digits(items[k:]); m > 0 {
			n = k + m
		}
	}
	//
	return n
}

var rules = []lex.LexRule[rune]{
	lex.Rule(lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'))), tSpace),
	lex.Rule(number, tNumber),
	lex.Rule(lex.Or(lex.Unit('s'), lex.Unit('S')), tSymbol),
	lex.Rule(lex.Unit('+'), tPlus),
	lex.Rule(lex.Unit('-'), tMinus),
	lex.Rule(lex.Unit('*'), tStar),
	lex.Rule(lex.Unit('/'), tSlash),
	lex.Rule(lex.Unit('^'), tCaret),
	lex.Rule(lex.Eof[rune](), tEOF),
}

// ParseString parses a polynomial in s from a given string, such as
// "s^2+4s+3", "2*s - 1/2" or "0.5s^3".
func ParseString(text string) (Polynomial, []source.SyntaxError) {
	return Parse(source.NewSourceFile("<input>", text))
}

// Parse a polynomial in s from a given source file, or produce one or more
// syntax errors.  Terms are sums and differences of monomials, where each
// monomial has an optional coefficient (possibly a fraction) and an optional
// power of s.
func Parse(srcfile *source.File) (Polynomial, []source.SyntaxError) {
	lexer := lex.NewLexer(srcfile.Contents(), rules...)
	tokens := lexer.Collect()
	// Check for unknown characters
	if lexer.Remaining() > 0 {
		start := len(srcfile.Contents()) - int(lexer.Remaining())
		err := srcfile.SyntaxError(source.NewSpan(start, start+1), "unknown text encountered")
		//
		return Polynomial{}, []source.SyntaxError{*err}
	}
	//
	p := parser{srcfile, removeWhitespace(tokens), 0}
	//
	return p.parse()
}

func removeWhitespace(tokens []lex.Token) []lex.Token {
	var ntokens []lex.Token
	//
	for _, t := range tokens {
		if t.Kind != tSpace {
			ntokens = append(ntokens, t)
		}
	}
	//
	return ntokens
}

type parser struct {
	srcfile *source.File
	tokens  []lex.Token
	index   int
}

func (p *parser) parse() (Polynomial, []source.SyntaxError) {
	var (
		result Polynomial
		first  = true
	)
	//
	if p.lookahead().Kind == tEOF {
		return result, p.syntaxErrors(p.lookahead(), "empty polynomial")
	}
	//
	for p.lookahead().Kind != tEOF {
		negate := false
		// Leading sign is optional for the first term only
		switch p.lookahead().Kind {
		case tMinus:
			negate = true
			p.index++
		case tPlus:
			p.index++
		default:
			if !first {
				return result, p.syntaxErrors(p.lookahead(), "expected + or -")
			}
		}
		//
		term, errs := p.parseTerm()
		if len(errs) > 0 {
			return result, errs
		} else if negate {
			term = term.Neg()
		}
		//
		result = result.Add(term)
		first = false
	}
	//
	return result, nil
}

func (p *parser) parseTerm() (Polynomial, []source.SyntaxError) {
	var (
		coeff    = big.NewRat(1, 1)
		hasCoeff = false
		degree   = uint(0)
		errs     []source.SyntaxError
	)
	//
	if p.lookahead().Kind == tNumber {
		if coeff, errs = p.parseCoefficient(); len(errs) > 0 {
			return Polynomial{}, errs
		}
		//
		hasCoeff = true
		// Explicit multiplication must be followed by s
		if p.lookahead().Kind == tStar {
			p.index++
			//
			if p.lookahead().Kind != tSymbol {
				return Polynomial{}, p.syntaxErrors(p.lookahead(), "expected s")
			}
		}
	}
	//
	if p.lookahead().Kind == tSymbol {
		p.index++
		degree = 1
		//
		if p.lookahead().Kind == tCaret {
			p.index++
			//
			if degree, errs = p.parseExponent(); len(errs) > 0 {
				return Polynomial{}, errs
			}
		}
	} else if !hasCoeff {
		return Polynomial{}, p.syntaxErrors(p.lookahead(), "expected coefficient or s")
	}
	//
	return Monomial(coeff, degree), nil
}

// Parse a coefficient, which is either a number or a fraction of two numbers.
func (p *parser) parseCoefficient() (*big.Rat, []source.SyntaxError) {
	numerator, errs := p.parseNumber()
	//
	if len(errs) > 0 || p.lookahead().Kind != tSlash {
		return numerator, errs
	}
	//
	p.index++
	//
	if p.lookahead().Kind == tSymbol {
		return nil, p.syntaxErrors(p.lookahead(), "not a polynomial")
	}
	//
	start := p.lookahead()
	//
	denominator, errs := p.parseNumber()
	if len(errs) > 0 {
		return nil, errs
	} else if denominator.Sign() == 0 {
		return nil, p.syntaxErrors(start, "division by zero")
	}
	//
	return numerator.Quo(numerator, denominator), nil
}

func (p *parser) parseNumber() (*big.Rat, []source.SyntaxError) {
	token := p.lookahead()
	//
	if token.Kind != tNumber {
		return nil, p.syntaxErrors(token, "expected number")
	}
	//
	p.index++
	//
	val, ok := new(big.Rat).SetString(p.srcfile.Text(token.Span))
	if !ok {
		return nil, p.syntaxErrors(token, "invalid number")
	}
	//
	return val, nil
}

func (p *parser) parseExponent() (uint, []source.SyntaxError) {
	token := p.lookahead()
	//
	if token.Kind != tNumber {
		return 0, p.syntaxErrors(token, "expected exponent")
	}
	//
	p.index++
	//
	n, err := strconv.ParseUint(p.srcfile.Text(token.Span), 10, 32)
	if err != nil {
		return 0, p.syntaxErrors(token, "invalid exponent")
	} else if n > MaxExponent {
		return 0, p.syntaxErrors(token, fmt.Sprintf("exponent exceeds %d", MaxExponent))
	}
	//
	return uint(n), nil
}

// Get the next token without consuming it.  The lexer always terminates the
// token stream with tEOF, hence this never runs off the end.
func (p *parser) lookahead() lex.Token {
	if p.index < len(p.tokens) {
		return p.tokens[p.index]
	}
	//
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	err := p.srcfile.SyntaxError(token.Span, msg)
	return []source.SyntaxError{*err}
}
