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

// Package table holds the compiled segment table: an ordered, gapless
// sequence of address ranges, each bound to a target type and the opaque
// context its constructor produced.
//
// A table starts in the building state and is mutated by exactly one
// parse pass. Complete freezes it; a complete table is immutable and may
// be shared. Sharing is reference counted: the active slot and every
// in-flight reader hold one reference each, and the last release destroys
// every segment context through its target's destructor.
package table

import (
	"errors"
	"sort"
	"sync/atomic"

	"dirpx.dev/segtab/apis"
)

var (
	// ErrCompleted is returned when mutating or re-completing a complete table.
	ErrCompleted = errors.New("segtab(table): table already complete")
	// ErrEmptyTable is returned by Complete for a table with no segments.
	// An empty table is never installed.
	ErrEmptyTable = errors.New("segtab(table): empty table")
	// ErrBadRange is returned by Add when the high bound precedes the
	// required low bound (a zero-sized segment).
	ErrBadRange = errors.New("segtab(table): segment high precedes next offset")
)

// Segment is one contiguous address range bound to a target type and its
// constructed context. Both bounds are inclusive.
type Segment struct {
	low, high uint64
	tgt       apis.Target
	ctx       apis.Context
}

// Low returns the first offset covered by the segment.
func (s Segment) Low() uint64 { return s.low }

// High returns the last offset covered by the segment.
func (s Segment) High() uint64 { return s.high }

// Target returns the target type backing the segment.
func (s Segment) Target() apis.Target { return s.tgt }

// Context returns the opaque per-segment context owned by the segment.
func (s Segment) Context() apis.Context { return s.ctx }

// Table is an ordered, gapless segment table.
type Table struct {
	refs     atomic.Int64
	complete bool
	segs     []Segment
}

// New returns an empty table in the building state, holding one reference
// owned by the caller.
func New() *Table {
	t := &Table{}
	t.refs.Store(1)
	return t
}

// NextOffset returns the offset the next segment must start at: 0 for an
// empty table, otherwise one past the last segment's high bound.
func (t *Table) NextOffset() uint64 {
	if n := len(t.segs); n > 0 {
		return t.segs[n-1].high + 1
	}
	return 0
}

// Len returns the number of segments.
func (t *Table) Len() int { return len(t.segs) }

// IsComplete reports whether Complete succeeded on this table.
func (t *Table) IsComplete() bool { return t.complete }

// Add appends a segment ending at high (inclusive). The low bound is the
// table's current NextOffset, which keeps the ascending, contiguous
// invariant true by construction. The segment takes ownership of ctx.
func (t *Table) Add(high uint64, tgt apis.Target, ctx apis.Context) error {
	if t.complete {
		return ErrCompleted
	}
	low := t.NextOffset()
	if high < low {
		return ErrBadRange
	}
	t.segs = append(t.segs, Segment{low: low, high: high, tgt: tgt, ctx: ctx})
	return nil
}

// Complete transitions the table from building to complete. It fails for
// an empty table: zero segments mean "no table", never a valid one.
func (t *Table) Complete() error {
	if t.complete {
		return ErrCompleted
	}
	if len(t.segs) == 0 {
		return ErrEmptyTable
	}
	t.complete = true
	return nil
}

// Get acquires an additional reference and returns t.
func (t *Table) Get() *Table {
	t.refs.Add(1)
	return t
}

// Put releases one reference. The last release destroys the table: every
// segment's context is handed back to its target's destructor, in order.
func (t *Table) Put() {
	if t.refs.Add(-1) != 0 {
		return
	}
	for i := range t.segs {
		s := &t.segs[i]
		s.tgt.Dtr(t, s.ctx)
	}
	t.segs = nil
}

// Segments returns a copy of the segment sequence.
func (t *Table) Segments() []Segment {
	return append([]Segment(nil), t.segs...)
}

// Find returns the segment containing off. It reports false for offsets
// past the last segment; trailing under-coverage is permitted, so this is
// an ordinary miss, not a corruption.
func (t *Table) Find(off uint64) (Segment, bool) {
	i := sort.Search(len(t.segs), func(i int) bool { return t.segs[i].high >= off })
	if i == len(t.segs) {
		return Segment{}, false
	}
	return t.segs[i], true
}

// Compile-time interface checks.
var (
	_ apis.Table = (*Table)(nil)
	_ apis.Sink  = (*Table)(nil)
)
