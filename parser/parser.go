/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package parser turns one table line into one validated segment, or
// into one line-scoped error. Line errors never stop a pass; the caller
// collects them and moves on to the next line.
package parser

import (
	"dirpx.dev/segtab/apis"
	"dirpx.dev/segtab/utils/text"
)

// Line diagnostics. The texts are part of the format's observable
// behavior and must stay stable.
const (
	MsgNoStart       = "No start argument"
	MsgNoSize        = "No size argument"
	MsgBadStart      = "Bad start argument"
	MsgBadSize       = "Bad size argument"
	MsgGap           = "Gap in table"
	MsgNoTarget      = "No target type"
	MsgUnknownTarget = "Target type unknown"
	MsgCtrFailed     = "constructor error"
	MsgAddFailed     = "Error adding target to table"
	MsgLineTooLong   = "Line too long"
)

// New returns a line parser resolving target types through reg and
// numerals through num.
func New(reg apis.Registry, num apis.Numeral) apis.LineParser {
	return &lineParser{reg: reg, num: num}
}

type lineParser struct {
	reg apis.Registry
	num apis.Numeral
}

// Ensure lineParser implements apis.LineParser.
var _ apis.LineParser = (*lineParser)(nil)

// ParseLine tokenizes line as `<start> <size> <target-type> <args...>`,
// validates it against the table built so far and, on success, appends
// the constructed segment to t. The first failing check wins; a failed
// line leaves t unchanged.
//
// The registry reference taken for the target type is released before
// ParseLine returns on every path. A context constructed for a line that
// later fails is rolled back through the target's destructor.
func (p *lineParser) ParseLine(t apis.Sink, num int, line string) *apis.LineError {
	fail := func(msg string) *apis.LineError {
		return &apis.LineError{Line: num, Msg: msg}
	}

	tok, rest := text.NextToken(line)
	if tok == "" {
		return fail(MsgNoStart)
	}
	start, err := p.num.ParseUint(tok)
	if err != nil {
		return fail(MsgBadStart)
	}

	tok, rest = text.NextToken(rest)
	if tok == "" {
		return fail(MsgNoSize)
	}
	size, err := p.num.ParseUint(tok)
	if err != nil {
		return fail(MsgBadSize)
	}

	// Compared against the last successfully inserted segment: a rejected
	// line does not shift the expected offset.
	if start != t.NextOffset() {
		return fail(MsgGap)
	}

	tok, rest = text.NextToken(rest)
	if tok == "" {
		return fail(MsgNoTarget)
	}

	tgt, ok := p.reg.Get(tok)
	if !ok {
		return fail(MsgUnknownTarget)
	}
	defer p.reg.Put(tgt)

	ctx, err := tgt.Ctr(t, start, size, rest)
	if err != nil {
		return fail(MsgCtrFailed)
	}

	if err := t.Add(start+size-1, tgt, ctx); err != nil {
		tgt.Dtr(t, ctx)
		return fail(MsgAddFailed)
	}
	return nil
}
