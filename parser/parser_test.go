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

package parser_test

import (
	"errors"
	"testing"

	"dirpx.dev/segtab/apis"
	"dirpx.dev/segtab/parser"
	"dirpx.dev/segtab/registry"
	"dirpx.dev/segtab/strategy"
	"dirpx.dev/segtab/table"
)

// fakeTarget records constructor/destructor traffic so tests can verify
// context lifetimes and argument passing.
type fakeTarget struct {
	name     string
	failCtr  bool
	ctrs     int
	dtrs     int
	lastArgs string
}

func (f *fakeTarget) Name() string { return f.name }

func (f *fakeTarget) Ctr(_ apis.Table, _, _ uint64, args string) (apis.Context, error) {
	f.lastArgs = args
	if f.failCtr {
		return nil, errors.New("rejected")
	}
	f.ctrs++
	return f.ctrs, nil
}

func (f *fakeTarget) Dtr(_ apis.Table, _ apis.Context) { f.dtrs++ }

func newParser(t *testing.T, tgts ...*fakeTarget) (apis.LineParser, apis.Registry) {
	t.Helper()
	reg := registry.New()
	for _, tgt := range tgts {
		if err := reg.Register(tgt); err != nil {
			t.Fatalf("Register(%s): %v", tgt.name, err)
		}
	}
	return parser.New(reg, strategy.Permissive()), reg
}

// checkBalanced asserts the principal resource-safety property: no
// registry use outlives ParseLine, whichever branch it took.
func checkBalanced(t *testing.T, reg apis.Registry, names ...string) {
	t.Helper()
	for _, n := range names {
		if uses := reg.Uses(n); uses != 0 {
			t.Fatalf("registry uses for %q = %d, want 0", n, uses)
		}
	}
}

func TestParseLine_Success(t *testing.T) {
	lin := &fakeTarget{name: "linear"}
	p, reg := newParser(t, lin)
	tbl := table.New()

	if le := p.ParseLine(tbl, 1, "0 100 linear /dev/x 0"); le != nil {
		t.Fatalf("ParseLine: unexpected error: %+v", le)
	}
	if tbl.Len() != 1 {
		t.Fatalf("Len = %d, want 1", tbl.Len())
	}
	seg := tbl.Segments()[0]
	if seg.Low() != 0 || seg.High() != 99 {
		t.Fatalf("segment = [%d,%d], want [0,99]", seg.Low(), seg.High())
	}
	if lin.lastArgs != "/dev/x 0" {
		t.Fatalf("constructor args = %q, want %q", lin.lastArgs, "/dev/x 0")
	}
	checkBalanced(t, reg, "linear")
}

func TestParseLine_FailureBranches(t *testing.T) {
	for _, tc := range []struct {
		name string
		line string
		msg  string
	}{
		{"missing start", "", parser.MsgNoStart},
		{"missing start blank", "  \t ", parser.MsgNoStart},
		{"missing size", "0", parser.MsgNoSize},
		{"gap", "5 100 linear /dev/x 0", parser.MsgGap},
		// Permissive numerals: "x" parses to 0, so the failure is the
		// missing target type, not the malformed numeral.
		{"missing target", "0 100", parser.MsgNoTarget},
		{"malformed start then missing target", "x 100", parser.MsgNoTarget},
		{"unknown target", "0 100 striped 2 64", parser.MsgUnknownTarget},
	} {
		lin := &fakeTarget{name: "linear"}
		p, reg := newParser(t, lin)
		tbl := table.New()

		le := p.ParseLine(tbl, 7, tc.line)
		if le == nil {
			t.Fatalf("%s: ParseLine(%q) succeeded, want %q", tc.name, tc.line, tc.msg)
		}
		if le.Msg != tc.msg || le.Line != 7 {
			t.Fatalf("%s: error = (%d,%q), want (7,%q)", tc.name, le.Line, le.Msg, tc.msg)
		}
		if tbl.Len() != 0 {
			t.Fatalf("%s: failed line mutated the table (%d segments)", tc.name, tbl.Len())
		}
		if lin.ctrs != lin.dtrs {
			t.Fatalf("%s: leaked contexts: ctrs=%d dtrs=%d", tc.name, lin.ctrs, lin.dtrs)
		}
		checkBalanced(t, reg, "linear")
	}
}

func TestParseLine_ConstructorFailure(t *testing.T) {
	lin := &fakeTarget{name: "linear", failCtr: true}
	p, reg := newParser(t, lin)
	tbl := table.New()

	le := p.ParseLine(tbl, 1, "0 100 linear /dev/x 0")
	if le == nil || le.Msg != parser.MsgCtrFailed {
		t.Fatalf("error = %+v, want %q", le, parser.MsgCtrFailed)
	}
	if tbl.Len() != 0 {
		t.Fatalf("table mutated on constructor failure")
	}
	if lin.dtrs != 0 {
		t.Fatalf("destructor ran for a context that was never constructed")
	}
	checkBalanced(t, reg, "linear")
}

func TestParseLine_AddFailureRollsBackContext(t *testing.T) {
	lin := &fakeTarget{name: "linear"}
	p, reg := newParser(t, lin)
	tbl := table.New()

	if le := p.ParseLine(tbl, 1, "0 100 linear /dev/x 0"); le != nil {
		t.Fatalf("line 1: %+v", le)
	}
	// A zero size passes the gap check but yields high < low, the
	// defensive add-conflict branch.
	le := p.ParseLine(tbl, 2, "100 0 linear /dev/y 0")
	if le == nil || le.Msg != parser.MsgAddFailed {
		t.Fatalf("error = %+v, want %q", le, parser.MsgAddFailed)
	}
	if tbl.Len() != 1 {
		t.Fatalf("failed line mutated the table: %d segments", tbl.Len())
	}
	if lin.ctrs != 2 || lin.dtrs != 1 {
		t.Fatalf("context not rolled back: ctrs=%d dtrs=%d", lin.ctrs, lin.dtrs)
	}
	checkBalanced(t, reg, "linear")
}

// TestParseLine_GapDoesNotShiftExpectedOffset: a rejected line leaves the
// required next offset at the last good segment, so every subsequent
// misaligned line keeps reading as a gap until a correct one arrives.
func TestParseLine_GapDoesNotShiftExpectedOffset(t *testing.T) {
	lin := &fakeTarget{name: "linear"}
	p, reg := newParser(t, lin)
	tbl := table.New()

	if le := p.ParseLine(tbl, 1, "0 100 linear /dev/x 0"); le != nil {
		t.Fatalf("line 1: %+v", le)
	}
	if le := p.ParseLine(tbl, 2, "50 50 linear /dev/y 0"); le == nil || le.Msg != parser.MsgGap {
		t.Fatalf("line 2: error = %+v, want %q", le, parser.MsgGap)
	}
	if le := p.ParseLine(tbl, 3, "150 50 linear /dev/y 0"); le == nil || le.Msg != parser.MsgGap {
		t.Fatalf("line 3: error = %+v, want %q", le, parser.MsgGap)
	}
	if le := p.ParseLine(tbl, 4, "100 50 linear /dev/y 0"); le != nil {
		t.Fatalf("line 4: unexpected error: %+v", le)
	}
	if tbl.Len() != 2 || tbl.NextOffset() != 150 {
		t.Fatalf("table = %d segments, next %d; want 2 segments, next 150", tbl.Len(), tbl.NextOffset())
	}
	checkBalanced(t, reg, "linear")
}

func TestParseLine_StrictNumerals(t *testing.T) {
	lin := &fakeTarget{name: "linear"}
	reg := registry.New()
	if err := reg.Register(lin); err != nil {
		t.Fatalf("Register: %v", err)
	}
	p := parser.New(reg, strategy.Strict())
	tbl := table.New()

	if le := p.ParseLine(tbl, 1, "x 100 linear /dev/x 0"); le == nil || le.Msg != parser.MsgBadStart {
		t.Fatalf("bad start: error = %+v, want %q", le, parser.MsgBadStart)
	}
	if le := p.ParseLine(tbl, 2, "0 1x0 linear /dev/x 0"); le == nil || le.Msg != parser.MsgBadSize {
		t.Fatalf("bad size: error = %+v, want %q", le, parser.MsgBadSize)
	}
	if tbl.Len() != 0 {
		t.Fatalf("strict failures mutated the table")
	}
	checkBalanced(t, reg, "linear")
}

func TestErrors_Collect(t *testing.T) {
	var errs parser.Errors
	errs.Collect(nil)
	errs.Add(3, parser.MsgGap)
	errs.Collect(&apis.LineError{Line: 4, Msg: parser.MsgNoTarget})

	if len(errs) != 2 {
		t.Fatalf("len = %d, want 2", len(errs))
	}
	if errs[0].Line != 3 || errs[0].Msg != parser.MsgGap {
		t.Fatalf("errs[0] = %+v", errs[0])
	}
	if errs[1].Line != 4 || errs[1].Msg != parser.MsgNoTarget {
		t.Fatalf("errs[1] = %+v", errs[1])
	}
}
