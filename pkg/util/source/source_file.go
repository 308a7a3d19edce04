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
package source

import (
	"fmt"
	"strings"
)

// File represents a named piece of input text.  This is typically a polynomial
// given on the command line, or a single record read from an input file.
type File struct {
	// Name used when reporting errors (e.g. "numerator").
	filename string
	// Contents of this file.
	contents []rune
}

// NewSourceFile constructs a new source file from a given string.
func NewSourceFile(filename string, text string) *File {
	return &File{filename, []rune(text)}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the characters covered by a given span.
func (s *File) Text(span Span) string {
	end := min(span.end, len(s.contents))
	//
	return string(s.contents[span.start:end])
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	// Span of text being parsed where error arose.
	span Span
	// Error message being reported
	msg string
}

// SourceFile returns the underlying source file that this syntax error covers.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", p.srcfile.filename, p.span.Start(), p.span.End(), p.Message())
}

// Highlight renders the offending text with a line of carets underneath the
// span on which this error is reported.  Input text is assumed to fit on a
// single line.
func (p *SyntaxError) Highlight() string {
	var (
		builder strings.Builder
		width   = max(1, p.span.Length())
	)
	//
	builder.WriteString(string(p.srcfile.contents))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat(" ", p.span.Start()))
	builder.WriteString(strings.Repeat("^", width))
	//
	return builder.String()
}
