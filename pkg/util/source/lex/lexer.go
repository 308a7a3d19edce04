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
package lex

import "github.com/consensys/go-cauer/pkg/util/source"

// Token associates a kind with a given range of characters in the string being
// scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates the characters accepted by a scanner with a given kind.
type LexRule[T any] struct {
	scanner Scanner[T]
	kind    uint
}

// Rule constructs a new lexing rule which maps matching characters to a given
// kind.
func Rule[T any](scanner Scanner[T], kind uint) LexRule[T] {
	return LexRule[T]{scanner, kind}
}

// Lexer splits an input sequence into tokens by trying each rule in turn at the
// current position.  The first rule which accepts one or more items wins.
type Lexer[T any] struct {
	items []T
	index int
	rules []LexRule[T]
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, 0, rules}
}

// Remaining determines how many items from the original sequence were not
// matched by any rule.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Next attempts to match the next token.  This fails when no rule matches at
// the current position, or when the end-of-input has already been reported.
func (p *Lexer[T]) Next() (Token, bool) {
	if p.index > len(p.items) {
		return Token{}, false
	}
	//
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			end := min(len(p.items), p.index+int(n))
			token := Token{r.kind, source.NewSpan(p.index, end)}
			// Eof rules match without consuming anything
			if end == p.index {
				p.index++
			} else {
				p.index = end
			}
			//
			return token, true
		}
	}
	//
	return Token{}, false
}

// Collect matches all remaining tokens in one go.  Lexing stops at the first
// position where no rule applies, which can be detected with Remaining().
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for {
		token, ok := p.Next()
		if !ok {
			return tokens
		}
		//
		tokens = append(tokens, token)
	}
}
